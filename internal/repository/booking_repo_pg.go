package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	passengers, err := json.Marshal(b.Passengers)
	if err != nil {
		return fmt.Errorf("marshal passengers: %w", err)
	}
	berths, err := json.Marshal(b.BerthAllocations)
	if err != nil {
		return fmt.Errorf("marshal berth allocations: %w", err)
	}
	payment, err := json.Marshal(b.Payment)
	if err != nil {
		return fmt.Errorf("marshal payment: %w", err)
	}

	_, err = r.db.Exec(ctx, `INSERT INTO bookings
		(booking_id, pnr, train_id, train_name, route, departure_time, seats, class_name, fare_per_seat, total_fare,
		 journey_date, passenger_name, passengers, berth_allocations, berth_preference, booking_date, status, user_id, payment)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		b.BookingID, b.PNR, b.TrainID, b.TrainName, b.Route, b.Time, b.Seats, b.Class, b.FarePerSeat, b.TotalFare,
		b.JourneyDate, b.PassengerName, passengers, berths, b.BerthPreference, b.BookingDate, b.Status, b.UserID, payment)
	return err
}

const bookingColumns = `booking_id, pnr, train_id, train_name, route, departure_time, seats, class_name, fare_per_seat, total_fare,
	journey_date, passenger_name, passengers, berth_allocations, berth_preference, booking_date, status, user_id, payment`

func (r *PGBookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_id=$1`, bookingID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY booking_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b                           domain.Booking
		passengers, berths, payment []byte
	)
	if err := row.Scan(&b.BookingID, &b.PNR, &b.TrainID, &b.TrainName, &b.Route, &b.Time, &b.Seats, &b.Class,
		&b.FarePerSeat, &b.TotalFare, &b.JourneyDate, &b.PassengerName, &passengers, &berths,
		&b.BerthPreference, &b.BookingDate, &b.Status, &b.UserID, &payment); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
		return nil, fmt.Errorf("unmarshal passengers: %w", err)
	}
	if err := json.Unmarshal(berths, &b.BerthAllocations); err != nil {
		return nil, fmt.Errorf("unmarshal berth allocations: %w", err)
	}
	if len(payment) > 0 {
		if err := json.Unmarshal(payment, &b.Payment); err != nil {
			return nil, fmt.Errorf("unmarshal payment: %w", err)
		}
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
