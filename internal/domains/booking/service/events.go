package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"carshare/infras/kafka"
	"carshare/internal/domains/booking/model"
	"carshare/shared/timezone"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventPaymentStatusChanged = "booking.payment_status_changed"
)

// BookingEvent is the payload published to the booking topic. Consumers such
// as notification and payout workers key on Type.
type BookingEvent struct {
	Type          string `json:"type"`
	BookingID     string `json:"booking_id"`
	CarID         string `json:"car_id"`
	RenterID      string `json:"renter_id"`
	Status        string `json:"status"`
	StatusReason  string `json:"status_reason,omitempty"`
	PaymentStatus string `json:"payment_status"`
	OccurredAt    string `json:"occurred_at"`
}

// publishEvent emits the event without blocking the request. Delivery is
// best effort: the booking is already persisted, so a failed publish only
// logs.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	event := BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		CarID:         booking.CarID,
		RenterID:      booking.RenterID,
		Status:        booking.Status.String(),
		PaymentStatus: string(booking.PaymentStatus),
		OccurredAt:    timezone.Now().Format("2006-01-02T15:04:05Z07:00"),
	}

	if booking.StatusReason != nil {
		event.StatusReason = *booking.StatusReason
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
