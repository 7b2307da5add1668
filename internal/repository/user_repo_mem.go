package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/Domenick1991/railbooking/internal/domain"
)

type MemUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewMemUserRepository() *MemUserRepository {
	return &MemUserRepository{users: make(map[string]*domain.User)}
}

func (r *MemUserRepository) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrUserExists
		}
	}
	c := copyUser(u)
	r.users[u.UserID] = &c
	return nil
}

func (r *MemUserRepository) GetByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := copyUser(u)
	return &c, nil
}

func (r *MemUserRepository) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	login = strings.TrimSpace(login)
	for _, u := range r.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			c := copyUser(u)
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemUserRepository) UpdateProfile(_ context.Context, userID, fullName, email, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if email != "" {
		for id, other := range r.users {
			if id != userID && strings.EqualFold(other.Email, email) {
				return domain.ErrUserExists
			}
		}
		u.Email = email
	}
	if fullName != "" {
		u.FullName = fullName
	}
	if phone != "" {
		u.Phone = phone
	}
	return nil
}

func (r *MemUserRepository) AppendBooking(_ context.Context, userID, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !slices.Contains(u.BookingIDs, bookingID) {
		u.BookingIDs = append(u.BookingIDs, bookingID)
	}
	return nil
}

func (r *MemUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func copyUser(u *domain.User) domain.User {
	c := *u
	c.BookingIDs = slices.Clone(u.BookingIDs)
	return c
}

var _ UserRepository = (*MemUserRepository)(nil)
