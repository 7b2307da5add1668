package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Domenick1991/railbooking/internal/domain"
)

// MemTrainRepository is the in-process driver used in tests and mock
// mode. The mutex makes Reserve a compare-and-decrement with no window
// between check and write.
type MemTrainRepository struct {
	mu     sync.RWMutex
	trains map[string]*domain.Train
	order  []string
}

func NewMemTrainRepository() *MemTrainRepository {
	return &MemTrainRepository{trains: make(map[string]*domain.Train)}
}

func (r *MemTrainRepository) Search(_ context.Context, routeQuery string) ([]domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(routeQuery)
	results := make([]domain.Train, 0)
	for _, id := range r.order {
		t := r.trains[id]
		if query == "" || strings.Contains(strings.ToLower(t.Route), query) {
			results = append(results, copyTrain(t))
		}
	}
	return results, nil
}

func (r *MemTrainRepository) GetByID(_ context.Context, trainID string) (*domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trains[trainID]
	if !ok {
		return nil, domain.ErrTrainNotFound
	}
	c := copyTrain(t)
	return &c, nil
}

func (r *MemTrainRepository) Reserve(_ context.Context, trainID, className string, seats int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trains[trainID]
	if !ok {
		return domain.ErrTrainNotFound
	}
	c, ok := t.Classes[className]
	if !ok {
		return domain.ErrClassNotFound
	}
	if c.Availability < seats {
		return domain.ErrInsufficientAvailability
	}
	c.Availability -= seats
	t.Classes[className] = c
	return nil
}

func (r *MemTrainRepository) Release(_ context.Context, trainID, className string, seats int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trains[trainID]
	if !ok {
		return domain.ErrTrainNotFound
	}
	c, ok := t.Classes[className]
	if !ok {
		return domain.ErrClassNotFound
	}
	c.Availability += seats
	t.Classes[className] = c
	return nil
}

func (r *MemTrainRepository) Seed(_ context.Context, trains []domain.Train) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range trains {
		if _, ok := r.trains[t.TrainID]; ok {
			continue
		}
		c := copyTrain(&t)
		r.trains[t.TrainID] = &c
		r.order = append(r.order, t.TrainID)
	}
	return nil
}

func copyTrain(t *domain.Train) domain.Train {
	c := *t
	c.Classes = make(map[string]domain.SeatClass, len(t.Classes))
	for name, sc := range t.Classes {
		c.Classes[name] = sc
	}
	return c
}

var _ TrainRepository = (*MemTrainRepository)(nil)
