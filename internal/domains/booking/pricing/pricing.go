// Package pricing computes booking quotes. All amounts are integer minor
// units (cents); floats never enter the calculation so the same inputs
// always produce the same quote.
package pricing

import (
	"time"

	"carshare/shared/failure"
)

const hoursPerDay = 24

var (
	// ErrInvalidRange is returned when the return date is not after the
	// pickup date.
	ErrInvalidRange = failure.BadRequestFromString("return date must be after pickup date")

	// ErrInvalidRate is returned when the daily rate is zero or negative.
	ErrInvalidRate = failure.BadRequestFromString("daily rate must be positive")
)

// Quote is the price breakdown for a booking window. Once a booking is
// created the breakdown is copied onto it and never recomputed, so later
// rate changes leave existing bookings untouched.
type Quote struct {
	TotalDays   int64 `json:"totalDays"`
	Subtotal    int64 `json:"subtotal"`
	ServiceFee  int64 `json:"serviceFee"`
	TotalAmount int64 `json:"totalAmount"`
}

// Calculate prices the window [start, end). Partial days bill as whole days
// and the service fee is a percentage of the subtotal rounded half up.
func Calculate(dailyRate, feePercent int64, start, end time.Time) (Quote, error) {
	if dailyRate <= 0 {
		return Quote{}, ErrInvalidRate
	}

	if !end.After(start) {
		return Quote{}, ErrInvalidRange
	}

	days := totalDays(start, end)
	subtotal := dailyRate * days
	fee := serviceFee(subtotal, feePercent)

	return Quote{
		TotalDays:   days,
		Subtotal:    subtotal,
		ServiceFee:  fee,
		TotalAmount: subtotal + fee,
	}, nil
}

// totalDays is the duration in hours divided by 24, rounded up.
func totalDays(start, end time.Time) int64 {
	hours := int64(end.Sub(start) / time.Hour)
	if end.Sub(start)%time.Hour > 0 {
		hours++
	}

	days := hours / hoursPerDay
	if hours%hoursPerDay > 0 {
		days++
	}

	return days
}

// serviceFee rounds half up using integer arithmetic.
func serviceFee(subtotal, feePercent int64) int64 {
	return (subtotal*feePercent + 50) / 100
}
