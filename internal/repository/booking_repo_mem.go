package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Domenick1991/railbooking/internal/domain"
)

type MemBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

func NewMemBookingRepository() *MemBookingRepository {
	return &MemBookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *MemBookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.BookingID] = *b
	return nil
}

func (r *MemBookingRepository) GetByID(_ context.Context, bookingID string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *MemBookingRepository) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			results = append(results, b)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].BookingDate.After(results[j].BookingDate)
	})
	return results, nil
}

var _ BookingRepository = (*MemBookingRepository)(nil)
