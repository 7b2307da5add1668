package repository

import (
	"context"

	"github.com/Domenick1991/railbooking/internal/domain"
)

// TrainRepository holds the catalog and the per-class seat inventory.
// Reserve is the single serialization point for concurrent bookings:
// implementations must check and decrement atomically so the sum of
// successful reservations never exceeds the starting availability.
type TrainRepository interface {
	Search(ctx context.Context, routeQuery string) ([]domain.Train, error)
	GetByID(ctx context.Context, trainID string) (*domain.Train, error)
	Reserve(ctx context.Context, trainID, className string, seats int) error
	Release(ctx context.Context, trainID, className string, seats int) error
	Seed(ctx context.Context, trains []domain.Train) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	// ListByUser returns bookings ordered by booking date, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	// GetByLogin matches username or email, case-insensitively.
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, email, phone string) error
	// AppendBooking atomically appends a booking id to the user's list.
	AppendBooking(ctx context.Context, userID, bookingID string) error
	Count(ctx context.Context) (int, error)
}
