package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/domains/booking/model"
	"carshare/internal/domains/booking/repository"
)

func storedBooking(carID string, status model.Status, startDay, endDay int) model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		CarID:     carID,
		RenterID:  uuid.NewString(),
		StartDate: time.Date(2026, 4, startDay, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, endDay, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestMemoryStoreCreateIfAvailable(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	first := storedBooking("car-1", model.StatusConfirmed, 1, 5)

	conflicts, err := store.CreateIfAvailable(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	overlapping := storedBooking("car-1", model.StatusPending, 3, 7)

	conflicts, err = store.CreateIfAvailable(ctx, overlapping)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, first.ID, conflicts[0].ID)

	stored, err := store.GetByID(ctx, overlapping.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ID, "rejected booking must not be stored")
}

func TestMemoryStoreBackToBackBookings(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := store.CreateIfAvailable(ctx, storedBooking("car-1", model.StatusConfirmed, 1, 5))
	require.NoError(t, err)

	// End date is exclusive, so a booking starting on the previous one's
	// return day does not conflict.
	conflicts, err := store.CreateIfAvailable(ctx, storedBooking("car-1", model.StatusPending, 5, 8))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestMemoryStoreTerminalBookingsDoNotBlock(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := store.CreateIfAvailable(ctx, storedBooking("car-1", model.StatusCancelled, 1, 5))
	require.NoError(t, err)

	conflicts, err := store.CreateIfAvailable(ctx, storedBooking("car-1", model.StatusPending, 2, 4))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestMemoryStoreOtherCarDoesNotConflict(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := store.CreateIfAvailable(ctx, storedBooking("car-1", model.StatusConfirmed, 1, 5))
	require.NoError(t, err)

	conflicts, err := store.CreateIfAvailable(ctx, storedBooking("car-2", model.StatusPending, 2, 4))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

// Two overlapping requests racing for the same car: exactly one must win no
// matter how the goroutines interleave.
func TestMemoryStoreConcurrentOverlappingRequests(t *testing.T) {
	ctx := context.Background()

	for range 50 {
		store := repository.NewMemoryStore()

		var wg sync.WaitGroup

		results := make([]int, 2)

		for i := range 2 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				conflicts, err := store.CreateIfAvailable(ctx, storedBooking("car-1", model.StatusPending, 10, 14))
				assert.NoError(t, err)

				results[i] = len(conflicts)
			}()
		}

		wg.Wait()

		winners := 0

		for _, conflictCount := range results {
			if conflictCount == 0 {
				winners++
			}
		}

		assert.Equal(t, 1, winners, "exactly one of two overlapping requests must succeed")
	}
}

func TestMemoryStoreApplyTransition(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	booking := storedBooking("car-1", model.StatusPending, 1, 5)

	_, err := store.CreateIfAvailable(ctx, booking)
	require.NoError(t, err)

	updated, err := store.ApplyTransition(ctx, booking.ID, func(b *model.Booking) error {
		return b.Transition(model.StatusConfirmed, model.ActorHost, "", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)

	stored, err := store.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, stored.Status)
}

func TestMemoryStoreApplyTransitionNotFound(t *testing.T) {
	store := repository.NewMemoryStore()

	_, err := store.ApplyTransition(context.Background(), uuid.NewString(), func(b *model.Booking) error {
		return nil
	})

	assert.Error(t, err)
}

func TestMemoryStoreFailedMutationNotPersisted(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	booking := storedBooking("car-1", model.StatusPending, 1, 5)

	_, err := store.CreateIfAvailable(ctx, booking)
	require.NoError(t, err)

	// COMPLETED is unreachable from PENDING, so the stored booking must
	// keep its status.
	_, err = store.ApplyTransition(ctx, booking.ID, func(b *model.Booking) error {
		return b.Transition(model.StatusCompleted, model.ActorHost, "", time.Now())
	})
	require.Error(t, err)

	stored, err := store.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}
