package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/domains/booking/model"
	"carshare/internal/domains/booking/model/dto"
	"carshare/internal/domains/booking/pricing"
	carModel "carshare/internal/domains/car/model"
)

func testCar() carModel.Car {
	return carModel.Car{
		ID:              "0c1de2f1-9aa3-4f40-b4b1-3fd0a3c21f55",
		OwnerID:         "owner-1",
		Make:            "Toyota",
		Model:           "Yaris",
		Year:            2022,
		DailyRate:       120,
		SecurityDeposit: 5000,
		Active:          true,
	}
}

func TestCreateBookingRequestToModel(t *testing.T) {
	car := testCar()
	quote := pricing.Quote{TotalDays: 3, Subtotal: 360, ServiceFee: 54, TotalAmount: 414}

	req := dto.CreateBookingRequest{
		CarID:          car.ID,
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-04",
		PickupLocation: "airport",
	}

	booking, err := req.ToModel("renter-1", car, quote)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, car.ID, booking.CarID)
	assert.Equal(t, "renter-1", booking.RenterID)
	assert.Equal(t, car.DailyRate, booking.DailyRate)
	assert.Equal(t, quote.TotalDays, booking.TotalDays)
	assert.Equal(t, quote.Subtotal, booking.Subtotal)
	assert.Equal(t, quote.ServiceFee, booking.ServiceFee)
	assert.Equal(t, quote.TotalAmount, booking.TotalAmount)
	assert.Equal(t, car.SecurityDeposit, booking.SecurityDeposit)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, "airport", booking.PickupLocation)
	assert.Equal(t, "renter-1", booking.CreatedBy)
}

func TestCreateBookingRequestToModelInstantBook(t *testing.T) {
	car := testCar()
	car.IsInstantBook = true

	req := dto.CreateBookingRequest{
		CarID:     car.ID,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
	}

	booking, err := req.ToModel("renter-1", car, pricing.Quote{})
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, booking.Status)
}

func TestCreateBookingRequestToModelInvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		CarID:     testCar().ID,
		StartDate: "01-03-2026",
		EndDate:   "2026-03-04",
	}

	_, err := req.ToModel("renter-1", testCar(), pricing.Quote{})
	assert.Error(t, err)
}

func TestQuoteRequestParseDates(t *testing.T) {
	req := dto.QuoteRequest{
		CarID:     testCar().ID,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
	}

	start, end, err := req.ParseDates()
	require.NoError(t, err)
	assert.True(t, start.Before(end))
	assert.Equal(t, 72.0, end.Sub(start).Hours())
}

func TestQuoteResponseFromQuote(t *testing.T) {
	req := dto.QuoteRequest{
		CarID:     testCar().ID,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
	}
	quote := pricing.Quote{TotalDays: 3, Subtotal: 360, ServiceFee: 54, TotalAmount: 414}

	var res dto.QuoteResponse
	res.FromQuote(req, 120, quote)

	assert.Equal(t, req.CarID, res.CarID)
	assert.Equal(t, int64(120), res.DailyRate)
	assert.Equal(t, int64(414), res.TotalAmount)
}

func TestBookingResponseFromModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		CarID:     testCar().ID,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
	}

	booking, err := req.ToModel("renter-1", testCar(), pricing.Quote{TotalDays: 3, Subtotal: 360, ServiceFee: 54, TotalAmount: 414})
	require.NoError(t, err)

	booking.OwnerID = "owner-1"

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, "owner-1", res.OwnerID)
	assert.Equal(t, "2026-03-01", res.StartDate)
	assert.Equal(t, "2026-03-04", res.EndDate)
	assert.Equal(t, string(model.StatusPending), res.Status)
}
