package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGTrainRepository struct {
	db *pgxpool.Pool
}

func NewTrainRepository(db *pgxpool.Pool) TrainRepository {
	return &PGTrainRepository{db: db}
}

func (r *PGTrainRepository) Search(ctx context.Context, routeQuery string) ([]domain.Train, error) {
	rows, err := r.db.Query(ctx, `SELECT t.train_id, t.route, t.departure_time, t.name, c.class_name, c.availability, c.fare
		FROM trains t JOIN train_classes c ON c.train_id = t.train_id
		WHERE t.route ILIKE '%' || $1 || '%'
		ORDER BY t.train_id, c.class_name`, routeQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrains(rows)
}

func (r *PGTrainRepository) GetByID(ctx context.Context, trainID string) (*domain.Train, error) {
	rows, err := r.db.Query(ctx, `SELECT t.train_id, t.route, t.departure_time, t.name, c.class_name, c.availability, c.fare
		FROM trains t JOIN train_classes c ON c.train_id = t.train_id
		WHERE t.train_id = $1
		ORDER BY c.class_name`, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trains, err := scanTrains(rows)
	if err != nil {
		return nil, err
	}
	if len(trains) == 0 {
		return nil, domain.ErrTrainNotFound
	}
	return &trains[0], nil
}

// Reserve is a conditional decrement: the availability check and the
// update happen in one statement so concurrent reservations cannot
// interleave between read and write.
func (r *PGTrainRepository) Reserve(ctx context.Context, trainID, className string, seats int) error {
	cmd, err := r.db.Exec(ctx, `UPDATE train_classes SET availability = availability - $3
		WHERE train_id = $1 AND class_name = $2 AND availability >= $3`, trainID, className, seats)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a sold-out class from a missing one.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM train_classes WHERE train_id=$1 AND class_name=$2)`, trainID, className).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrClassNotFound
	}
	return domain.ErrInsufficientAvailability
}

func (r *PGTrainRepository) Release(ctx context.Context, trainID, className string, seats int) error {
	cmd, err := r.db.Exec(ctx, `UPDATE train_classes SET availability = availability + $3
		WHERE train_id = $1 AND class_name = $2`, trainID, className, seats)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

func (r *PGTrainRepository) Seed(ctx context.Context, trains []domain.Train) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range trains {
		if _, err := tx.Exec(ctx, `INSERT INTO trains (train_id, route, departure_time, name)
			VALUES ($1, $2, $3, $4) ON CONFLICT (train_id) DO NOTHING`, t.TrainID, t.Route, t.Time, t.Name); err != nil {
			return fmt.Errorf("seed train %s: %w", t.TrainID, err)
		}
		for name, c := range t.Classes {
			if _, err := tx.Exec(ctx, `INSERT INTO train_classes (train_id, class_name, availability, fare)
				VALUES ($1, $2, $3, $4) ON CONFLICT (train_id, class_name) DO NOTHING`, t.TrainID, name, c.Availability, c.Fare); err != nil {
				return fmt.Errorf("seed class %s/%s: %w", t.TrainID, name, err)
			}
		}
	}
	return tx.Commit(ctx)
}

func scanTrains(rows pgx.Rows) ([]domain.Train, error) {
	trains := make([]domain.Train, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, route, depTime, name, className string
			availability                        int
			fare                                int64
		)
		if err := rows.Scan(&id, &route, &depTime, &name, &className, &availability, &fare); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			trains = append(trains, domain.Train{
				TrainID: id,
				Route:   route,
				Time:    depTime,
				Name:    name,
				Classes: make(map[string]domain.SeatClass),
			})
			i = len(trains) - 1
			index[id] = i
		}
		trains[i].Classes[className] = domain.SeatClass{Availability: availability, Fare: fare}
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trains, nil
		}
		return nil, err
	}
	return trains, nil
}

var _ TrainRepository = (*PGTrainRepository)(nil)
