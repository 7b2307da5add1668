package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate ensures the required tables exist. In production a proper
// migration tool should own this.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trains (
			train_id       text PRIMARY KEY,
			route          text NOT NULL,
			departure_time text NOT NULL,
			name           text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS train_classes (
			train_id     text NOT NULL REFERENCES trains(train_id),
			class_name   text NOT NULL,
			availability int  NOT NULL CHECK (availability >= 0),
			fare         bigint NOT NULL,
			PRIMARY KEY (train_id, class_name)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id        text PRIMARY KEY,
			pnr               text NOT NULL UNIQUE,
			train_id          text NOT NULL,
			train_name        text NOT NULL DEFAULT '',
			route             text NOT NULL,
			departure_time    text NOT NULL,
			seats             int  NOT NULL,
			class_name        text NOT NULL,
			fare_per_seat     bigint NOT NULL,
			total_fare        bigint NOT NULL,
			journey_date      text NOT NULL,
			passenger_name    text NOT NULL,
			passengers        jsonb NOT NULL,
			berth_allocations jsonb NOT NULL,
			berth_preference  text NOT NULL,
			booking_date      timestamptz NOT NULL,
			status            text NOT NULL,
			user_id           text NOT NULL,
			payment           jsonb
		)`,
		`CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id, booking_date DESC)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id        text PRIMARY KEY,
			username       text NOT NULL,
			username_lower text NOT NULL UNIQUE,
			email          text NOT NULL,
			email_lower    text NOT NULL UNIQUE,
			password_hash  text NOT NULL,
			full_name      text NOT NULL,
			phone          text NOT NULL DEFAULT '',
			created_at     timestamptz NOT NULL,
			booking_ids    text[] NOT NULL DEFAULT '{}',
			is_admin       boolean NOT NULL DEFAULT false
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
