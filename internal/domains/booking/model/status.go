package model

import (
	"fmt"
	"slices"
	"time"

	"carshare/shared/failure"
)

// Status is the booking lifecycle state. The set is closed: parse at the
// boundary and invalid states are unrepresentable past it.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusDisputed  Status = "DISPUTED"
)

// PaymentStatus is tracked independently of the booking lifecycle.
// Reconciliation between the two is owned by the payment collaborator,
// not this service.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "PENDING"
	PaymentProcessing        PaymentStatus = "PROCESSING"
	PaymentCompleted         PaymentStatus = "COMPLETED"
	PaymentFailed            PaymentStatus = "FAILED"
	PaymentRefunded          PaymentStatus = "REFUNDED"
	PaymentPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
)

// ActorRole identifies who is requesting a transition, resolved against the
// booking: the renter is the booking's renter, the host owns the car, and
// system callers arrive through the internal API key.
type ActorRole string

const (
	ActorRenter ActorRole = "renter"
	ActorHost   ActorRole = "host"
	ActorSystem ActorRole = "system"
)

// BlockingStatuses are the states that occupy the car's calendar. Terminal
// bookings never block new requests.
var BlockingStatuses = []Status{StatusPending, StatusConfirmed, StatusActive}

var paymentStatuses = []PaymentStatus{
	PaymentPending, PaymentProcessing, PaymentCompleted,
	PaymentFailed, PaymentRefunded, PaymentPartiallyRefunded,
}

type transitionRule struct {
	actors         []ActorRole
	requiresReason bool
	precondition   func(b *Booking, today time.Time) error
}

// transitions is the whole lifecycle. Anything absent here is rejected;
// there is no fallback to a "closest valid" state.
var transitions = map[Status]map[Status]transitionRule{
	StatusPending: {
		StatusConfirmed: {
			actors: []ActorRole{ActorHost},
		},
		StatusCancelled: {
			actors: []ActorRole{ActorHost, ActorRenter},
		},
		StatusDisputed: {
			actors:         []ActorRole{ActorHost, ActorRenter},
			requiresReason: true,
		},
	},
	StatusConfirmed: {
		StatusActive: {
			actors: []ActorRole{ActorHost, ActorSystem},
			precondition: func(b *Booking, today time.Time) error {
				if today.Before(b.StartDate) {
					return failure.Conflict("booking cannot become active before its pickup date")
				}

				return nil
			},
		},
		StatusCancelled: {
			actors: []ActorRole{ActorHost, ActorRenter},
			precondition: func(b *Booking, today time.Time) error {
				if !today.Before(b.StartDate) {
					return failure.Conflict("booking can no longer be cancelled once the pickup date is reached")
				}

				return nil
			},
		},
		StatusDisputed: {
			actors:         []ActorRole{ActorHost, ActorRenter},
			requiresReason: true,
		},
	},
	StatusActive: {
		StatusCompleted: {
			actors: []ActorRole{ActorHost, ActorSystem},
			precondition: func(b *Booking, today time.Time) error {
				if today.Before(b.EndDate) {
					return failure.Conflict("booking cannot complete before its return date")
				}

				return nil
			},
		},
		StatusDisputed: {
			actors:         []ActorRole{ActorHost, ActorRenter},
			requiresReason: true,
		},
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusDisputed:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := transitions[s]
	return exists
}

// IsTerminal returns true if no further transitions are possible.
func (s Status) IsTerminal() bool {
	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	return len(allowed) == 0
}

// Blocks reports whether a booking in this status occupies the calendar.
func (s Status) Blocks() bool {
	return slices.Contains(BlockingStatuses, s)
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, rejecting unknown values.
func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown booking status: %s", value)) //nolint:wrapcheck
	}

	return status, nil
}

// ParsePaymentStatus converts a string to a PaymentStatus, rejecting unknown values.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	status := PaymentStatus(value)
	if !slices.Contains(paymentStatuses, status) {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown payment status: %s", value)) //nolint:wrapcheck
	}

	return status, nil
}

// Transition validates and applies a status change in place. The rule set is
// checked in order: the pair must exist, the actor must be permitted, a
// dispute must carry a reason, and the date precondition must hold. today is
// the current calendar date in the application timezone.
func (b *Booking) Transition(to Status, actor ActorRole, reason string, today time.Time) error {
	rules, ok := transitions[b.Status]
	if !ok {
		return failure.Conflict(fmt.Sprintf("invalid transition from %s to %s", b.Status, to)) //nolint:wrapcheck
	}

	rule, ok := rules[to]
	if !ok {
		return failure.Conflict(fmt.Sprintf("invalid transition from %s to %s", b.Status, to)) //nolint:wrapcheck
	}

	if !slices.Contains(rule.actors, actor) {
		return failure.Forbidden(fmt.Sprintf("%s is not allowed to move a booking from %s to %s", actor, b.Status, to)) //nolint:wrapcheck
	}

	if rule.requiresReason && reason == "" {
		return failure.BadRequestFromString("a dispute reason is required") //nolint:wrapcheck
	}

	if rule.precondition != nil {
		if err := rule.precondition(b, today); err != nil {
			return err
		}
	}

	b.Status = to
	if reason != "" {
		b.StatusReason = &reason
	}

	return nil
}
