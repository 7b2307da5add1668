package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users
		(user_id, username, username_lower, email, email_lower, password_hash, full_name, phone, created_at, booking_ids, is_admin)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		u.UserID, u.Username, strings.ToLower(u.Username), u.Email, strings.ToLower(u.Email),
		u.PasswordHash, u.FullName, u.Phone, u.CreatedAt, u.BookingIDs, u.IsAdmin)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUserExists
		}
		return err
	}
	return nil
}

const userColumns = `user_id, username, email, password_hash, full_name, phone, created_at, booking_ids, is_admin`

func (r *PGUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id=$1`, userID)
	return scanUser(row)
}

func (r *PGUserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username_lower=$1 OR email_lower=$1`, login)
	return scanUser(row)
}

func (r *PGUserRepository) UpdateProfile(ctx context.Context, userID, fullName, email, phone string) error {
	if email != "" {
		existing, err := r.GetByLogin(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		if existing != nil && existing.UserID != userID {
			return domain.ErrUserExists
		}
	}

	cmd, err := r.db.Exec(ctx, `UPDATE users SET
		full_name = CASE WHEN $2 <> '' THEN $2 ELSE full_name END,
		email = CASE WHEN $3 <> '' THEN $3 ELSE email END,
		email_lower = CASE WHEN $3 <> '' THEN lower($3) ELSE email_lower END,
		phone = CASE WHEN $4 <> '' THEN $4 ELSE phone END
		WHERE user_id = $1`, userID, fullName, email, phone)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PGUserRepository) AppendBooking(ctx context.Context, userID, bookingID string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET booking_ids = array_append(booking_ids, $2)
		WHERE user_id = $1 AND NOT ($2 = ANY(booking_ids))`, userID, bookingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		// Either the id is already present or the user is gone; only
		// the latter is an error.
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id=$1)`, userID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrUserNotFound
		}
	}
	return nil
}

func (r *PGUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone,
		&u.CreatedAt, &u.BookingIDs, &u.IsAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
