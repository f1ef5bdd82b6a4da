package dto

import (
	"time"

	"github.com/google/uuid"

	"carshare/internal/domains/booking/model"
	"carshare/internal/domains/booking/pricing"
	carModel "carshare/internal/domains/car/model"
	"carshare/shared"
	"carshare/shared/constant"
	gDto "carshare/shared/dto"
	gModel "carshare/shared/model"
	"carshare/shared/timezone"
)

type QuoteRequest struct {
	CarID     string `json:"car_id"     validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
}

func (q *QuoteRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, q.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, q.EndDate)

	return start, end, err
}

type QuoteResponse struct {
	CarID       string `json:"car_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DailyRate   int64  `json:"daily_rate"`
	TotalDays   int64  `json:"total_days"`
	Subtotal    int64  `json:"subtotal"`
	ServiceFee  int64  `json:"service_fee"`
	TotalAmount int64  `json:"total_amount"`
}

func (r *QuoteResponse) FromQuote(req QuoteRequest, dailyRate int64, quote pricing.Quote) {
	r.CarID = req.CarID
	r.StartDate = req.StartDate
	r.EndDate = req.EndDate
	r.DailyRate = dailyRate
	r.TotalDays = quote.TotalDays
	r.Subtotal = quote.Subtotal
	r.ServiceFee = quote.ServiceFee
	r.TotalAmount = quote.TotalAmount
}

type CreateBookingRequest struct {
	CarID          string `json:"car_id"          validate:"required,uuid"`
	StartDate      string `json:"start_date"      validate:"required,dateonly"`
	EndDate        string `json:"end_date"        validate:"required,dateonly"`
	PickupLocation string `json:"pickup_location" validate:"omitempty,max=255"`
}

// ToModel snapshots the car's pricing terms onto a new booking. The quote
// breakdown is copied verbatim so later rate changes on the car never touch
// this booking.
func (c *CreateBookingRequest) ToModel(renterID string, car carModel.Car, quote pricing.Quote) (model.Booking, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if car.IsInstantBook {
		status = model.StatusConfirmed
	}

	return model.Booking{
		ID:              uuid.NewString(),
		CarID:           c.CarID,
		RenterID:        renterID,
		StartDate:       startDate,
		EndDate:         endDate,
		DailyRate:       car.DailyRate,
		TotalDays:       quote.TotalDays,
		Subtotal:        quote.Subtotal,
		ServiceFee:      quote.ServiceFee,
		TotalAmount:     quote.TotalAmount,
		SecurityDeposit: car.SecurityDeposit,
		Status:          status,
		PaymentStatus:   model.PaymentPending,
		PickupLocation:  c.PickupLocation,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  renterID,
			ModifiedBy: renterID,
		},
	}, nil
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED ACTIVE COMPLETED CANCELLED DISPUTED"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=PENDING PROCESSING COMPLETED FAILED REFUNDED PARTIALLY_REFUNDED"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	CarID           string  `json:"car_id"`
	RenterID        string  `json:"renter_id"`
	OwnerID         string  `json:"owner_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DailyRate       int64   `json:"daily_rate"`
	TotalDays       int64   `json:"total_days"`
	Subtotal        int64   `json:"subtotal"`
	ServiceFee      int64   `json:"service_fee"`
	TotalAmount     int64   `json:"total_amount"`
	SecurityDeposit int64   `json:"security_deposit"`
	Status          string  `json:"status"`
	StatusReason    *string `json:"status_reason,omitempty"`
	PaymentStatus   string  `json:"payment_status"`
	PickupLocation  string  `json:"pickup_location,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CarID = booking.CarID
	r.RenterID = booking.RenterID
	r.OwnerID = booking.OwnerID
	r.StartDate = booking.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = booking.EndDate.Format(constant.DateOnlyFormat)
	r.DailyRate = booking.DailyRate
	r.TotalDays = booking.TotalDays
	r.Subtotal = booking.Subtotal
	r.ServiceFee = booking.ServiceFee
	r.TotalAmount = booking.TotalAmount
	r.SecurityDeposit = booking.SecurityDeposit
	r.Status = booking.Status.String()
	r.StatusReason = booking.StatusReason
	r.PaymentStatus = string(booking.PaymentStatus)
	r.PickupLocation = booking.PickupLocation
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// ConflictDetail is one occupied date range returned with a booking
// conflict response.
type ConflictDetail struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func ConflictDetailsFromModels(conflicts []model.Booking) []ConflictDetail {
	details := make([]ConflictDetail, len(conflicts))
	for i, c := range conflicts {
		details[i] = ConflictDetail{
			StartDate: c.StartDate.Format(constant.DateOnlyFormat),
			EndDate:   c.EndDate.Format(constant.DateOnlyFormat),
		}
	}

	return details
}
