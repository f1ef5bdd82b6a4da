package repository

import (
	"context"
	"sync"
	"time"

	"carshare/internal/domains/booking/model"
	"carshare/shared/failure"
)

// MemoryStore holds bookings in process memory behind a single mutex, giving
// the same exactly-one-winner guarantee for overlapping requests that the
// SQL store gets from row locks. It backs tests and local development
// without a database.
type MemoryStore struct {
	mu       sync.Mutex
	bookings map[string]model.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: map[string]model.Booking{},
	}
}

// CreateIfAvailable stores the booking unless a blocking booking of the same
// car overlaps its date range. A non-empty return with nil error lists the
// occupying bookings, mirroring the SQL store.
func (s *MemoryStore) CreateIfAvailable(_ context.Context, booking model.Booking) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflicts := s.findConflictsLocked(booking.CarID, booking.StartDate, booking.EndDate)
	if len(conflicts) > 0 {
		return conflicts, nil
	}

	s.bookings[booking.ID] = booking

	return nil, nil
}

// FindConflicts lists the blocking bookings of a car that overlap [start, end).
func (s *MemoryStore) FindConflicts(_ context.Context, carID string, start, end time.Time) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findConflictsLocked(carID, start, end), nil
}

// ApplyTransition applies mutate to the stored booking under the store lock
// and persists the result when mutate succeeds.
func (s *MemoryStore) ApplyTransition(_ context.Context, id string, mutate func(b *model.Booking) error) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return model.Booking{}, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err := mutate(&booking); err != nil {
		return model.Booking{}, err
	}

	s.bookings[id] = booking

	return booking, nil
}

// GetByID returns the stored booking, or a zero booking when absent.
func (s *MemoryStore) GetByID(_ context.Context, id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookings[id], nil
}

func (s *MemoryStore) findConflictsLocked(carID string, start, end time.Time) []model.Booking {
	conflicts := []model.Booking{}

	for _, b := range s.bookings {
		if b.CarID == carID && b.Status.Blocks() && b.Overlaps(start, end) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}
