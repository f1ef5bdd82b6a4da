package model_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carshare/internal/domains/booking/model"
	"carshare/shared/failure"
)

var allStatuses = []model.Status{
	model.StatusPending,
	model.StatusConfirmed,
	model.StatusActive,
	model.StatusCompleted,
	model.StatusCancelled,
	model.StatusDisputed,
}

var allActors = []model.ActorRole{model.ActorRenter, model.ActorHost, model.ActorSystem}

// allowed is the lifecycle table: for each pair, the set of actors permitted
// to perform it (ignoring date preconditions and reasons). Everything absent
// must be rejected for every actor.
var allowed = map[model.Status]map[model.Status][]model.ActorRole{
	model.StatusPending: {
		model.StatusConfirmed: {model.ActorHost},
		model.StatusCancelled: {model.ActorHost, model.ActorRenter},
		model.StatusDisputed:  {model.ActorHost, model.ActorRenter},
	},
	model.StatusConfirmed: {
		model.StatusActive:    {model.ActorHost, model.ActorSystem},
		model.StatusCancelled: {model.ActorHost, model.ActorRenter},
		model.StatusDisputed:  {model.ActorHost, model.ActorRenter},
	},
	model.StatusActive: {
		model.StatusCompleted: {model.ActorHost, model.ActorSystem},
		model.StatusDisputed:  {model.ActorHost, model.ActorRenter},
	},
}

func testBooking(status model.Status) *model.Booking {
	return &model.Booking{
		ID:        "booking-1",
		CarID:     "car-1",
		RenterID:  "renter-1",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func isAllowed(from, to model.Status, actor model.ActorRole) bool {
	actors, ok := allowed[from][to]
	if !ok {
		return false
	}

	for _, a := range actors {
		if a == actor {
			return true
		}
	}

	return false
}

// Every (from, to, actor) triple outside the lifecycle table must fail, and
// every triple inside it must succeed when preconditions hold.
func TestTransitionTableCompleteness(t *testing.T) {
	// Dates that satisfy the listed preconditions: cancellation must happen
	// before pickup, activation and completion on or after their dates.
	datesFor := func(to model.Status) time.Time {
		switch to {
		case model.StatusCancelled:
			return time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		default:
			return time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		}
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			for _, actor := range allActors {
				booking := testBooking(from)
				err := booking.Transition(to, actor, "scratched bumper", datesFor(to))

				if isAllowed(from, to, actor) {
					assert.NoError(t, err, "%s -> %s by %s should be allowed", from, to, actor)
					assert.Equal(t, to, booking.Status)
				} else {
					assert.Error(t, err, "%s -> %s by %s should be rejected", from, to, actor)
					assert.Equal(t, from, booking.Status, "rejected transition must not mutate the booking")
				}
			}
		}
	}
}

func TestTransitionErrorNamesThePair(t *testing.T) {
	booking := testBooking(model.StatusCompleted)

	err := booking.Transition(model.StatusActive, model.ActorHost, "", time.Now())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "COMPLETED")
	assert.Contains(t, err.Error(), "ACTIVE")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestTransitionForbiddenForWrongActor(t *testing.T) {
	booking := testBooking(model.StatusPending)

	// Only the host may confirm a pending booking.
	err := booking.Transition(model.StatusConfirmed, model.ActorRenter, "", time.Now())

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	assert.Equal(t, model.StatusPending, booking.Status)
}

func TestActivationRequiresPickupDateReached(t *testing.T) {
	booking := testBooking(model.StatusConfirmed)
	beforePickup := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

	err := booking.Transition(model.StatusActive, model.ActorHost, "", beforePickup)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	onPickup := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, booking.Transition(model.StatusActive, model.ActorHost, "", onPickup))
}

func TestCancellationRejectedOnceTripStarted(t *testing.T) {
	booking := testBooking(model.StatusConfirmed)
	onPickup := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	err := booking.Transition(model.StatusCancelled, model.ActorRenter, "", onPickup)

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCompletionRequiresReturnDateReached(t *testing.T) {
	booking := testBooking(model.StatusActive)
	beforeReturn := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	err := booking.Transition(model.StatusCompleted, model.ActorSystem, "", beforeReturn)
	assert.Error(t, err)

	onReturn := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, booking.Transition(model.StatusCompleted, model.ActorSystem, "", onReturn))
}

func TestDisputeRequiresReason(t *testing.T) {
	booking := testBooking(model.StatusActive)

	err := booking.Transition(model.StatusDisputed, model.ActorRenter, "", time.Now())
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	err = booking.Transition(model.StatusDisputed, model.ActorRenter, "car returned damaged", time.Now())
	assert.NoError(t, err)
	assert.NotNil(t, booking.StatusReason)
	assert.Equal(t, "car returned damaged", *booking.StatusReason)
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.True(t, model.StatusDisputed.IsTerminal())

	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.False(t, model.StatusActive.IsTerminal())
}

func TestBlockingStatuses(t *testing.T) {
	assert.True(t, model.StatusPending.Blocks())
	assert.True(t, model.StatusConfirmed.Blocks())
	assert.True(t, model.StatusActive.Blocks())

	assert.False(t, model.StatusCompleted.Blocks())
	assert.False(t, model.StatusCancelled.Blocks())
	assert.False(t, model.StatusDisputed.Blocks())
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus("CONFIRMED")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, status)

	_, err = model.ParseStatus("confirmed")
	assert.Error(t, err)

	_, err = model.ParseStatus("SHIPPED")
	assert.Error(t, err)
}

func TestParsePaymentStatus(t *testing.T) {
	status, err := model.ParsePaymentStatus("PARTIALLY_REFUNDED")
	assert.NoError(t, err)
	assert.Equal(t, model.PaymentPartiallyRefunded, status)

	_, err = model.ParsePaymentStatus("EVENTUALLY")
	assert.Error(t, err)
}

func TestOverlapsHalfOpen(t *testing.T) {
	booking := testBooking(model.StatusConfirmed)

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "identical range", start: day(1), end: day(4), want: true},
		{name: "contained range", start: day(2), end: day(3), want: true},
		{name: "overlaps head", start: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), end: day(2), want: true},
		{name: "overlaps tail", start: day(3), end: day(6), want: true},
		{name: "checkout day equals next checkin", start: day(4), end: day(7), want: false},
		{name: "ends on checkin day", start: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), end: day(1), want: false},
		{name: "entirely after", start: day(10), end: day(12), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}
