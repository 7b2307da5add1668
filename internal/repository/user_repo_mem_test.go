package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newUser(id, username, email string) *domain.User {
	return &domain.User{
		UserID:     id,
		Username:   username,
		Email:      email,
		FullName:   "Test User",
		BookingIDs: []string{},
	}
}

func TestMemUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemUserRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newUser("u1", "asha", "asha@example.com")))

	byID, err := repo.GetByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "asha", byID.Username)

	byName, err := repo.GetByLogin(ctx, "ASHA")
	assert.NoError(t, err)
	assert.Equal(t, "u1", byName.UserID)

	byEmail, err := repo.GetByLogin(ctx, "asha@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "u1", byEmail.UserID)

	_, err = repo.GetByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	repo := NewMemUserRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newUser("u1", "asha", "asha@example.com")))

	err := repo.Create(ctx, newUser("u2", "Asha", "other@example.com"))
	assert.ErrorIs(t, err, domain.ErrUserExists)

	err = repo.Create(ctx, newUser("u3", "vikram", "ASHA@example.com"))
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestMemUserRepository_AppendBooking(t *testing.T) {
	repo := NewMemUserRepository()
	ctx := context.Background()
	assert.NoError(t, repo.Create(ctx, newUser("u1", "asha", "asha@example.com")))

	assert.NoError(t, repo.AppendBooking(ctx, "u1", "10001"))
	assert.NoError(t, repo.AppendBooking(ctx, "u1", "10002"))
	// повторное добавление не дублирует
	assert.NoError(t, repo.AppendBooking(ctx, "u1", "10001"))

	u, err := repo.GetByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"10001", "10002"}, u.BookingIDs)

	assert.ErrorIs(t, repo.AppendBooking(ctx, "missing", "10001"), domain.ErrUserNotFound)
}

func TestMemUserRepository_UpdateProfile(t *testing.T) {
	repo := NewMemUserRepository()
	ctx := context.Background()
	assert.NoError(t, repo.Create(ctx, newUser("u1", "asha", "asha@example.com")))
	assert.NoError(t, repo.Create(ctx, newUser("u2", "vikram", "vikram@example.com")))

	assert.NoError(t, repo.UpdateProfile(ctx, "u1", "Asha Rao", "asha.rao@example.com", "+911234567890"))

	u, err := repo.GetByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", u.FullName)
	assert.Equal(t, "asha.rao@example.com", u.Email)
	assert.Equal(t, "+911234567890", u.Phone)

	// empty fields keep current values
	assert.NoError(t, repo.UpdateProfile(ctx, "u1", "", "", ""))
	u, err = repo.GetByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", u.FullName)

	err = repo.UpdateProfile(ctx, "u1", "", "vikram@example.com", "")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestMemUserRepository_Count(t *testing.T) {
	repo := NewMemUserRepository()
	ctx := context.Background()

	n, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, repo.Create(ctx, newUser("u1", "asha", "asha@example.com")))
	n, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
