package model

import (
	"time"

	"carshare/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCarID           = "car_id"
	FieldRenterID        = "renter_id"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldDailyRate       = "daily_rate"
	FieldTotalDays       = "total_days"
	FieldSubtotal        = "subtotal"
	FieldServiceFee      = "service_fee"
	FieldTotalAmount     = "total_amount"
	FieldSecurityDeposit = "security_deposit"
	FieldStatus          = "status"
	FieldStatusReason    = "status_reason"
	FieldPaymentStatus   = "payment_status"
	FieldPickupLocation  = "pickup_location"

	// Joined from the cars table for host-side listings.
	FieldOwnerID = "owner_id"
)

// Booking is a reservation of one car for a half-open date range
// [StartDate, EndDate). All monetary amounts are snapshotted from the car
// at creation time in minor currency units and never recomputed afterwards.
type Booking struct {
	ID              string        `db:"id"`
	CarID           string        `db:"car_id"`
	RenterID        string        `db:"renter_id"`
	StartDate       time.Time     `db:"start_date"`
	EndDate         time.Time     `db:"end_date"`
	DailyRate       int64         `db:"daily_rate"`
	TotalDays       int64         `db:"total_days"`
	Subtotal        int64         `db:"subtotal"`
	ServiceFee      int64         `db:"service_fee"`
	TotalAmount     int64         `db:"total_amount"`
	SecurityDeposit int64         `db:"security_deposit"`
	Status          Status        `db:"status"`
	StatusReason    *string       `db:"status_reason"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	PickupLocation  string        `db:"pickup_location"`
	OwnerID         string        `db:"owner_id" table:"cars"`
	model.Metadata
}

// GetJoinQuery joins the owning car so host-side filters and listings can
// select on cars.owner_id.
func (b Booking) GetJoinQuery() string {
	return "LEFT JOIN cars ON cars.id = bookings.car_id"
}

// Overlaps reports whether the booking's range intersects [start, end).
// Half-open intervals make back-to-back bookings non-conflicting.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && start.Before(b.EndDate)
}
