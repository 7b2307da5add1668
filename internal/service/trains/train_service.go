package trains

import (
	"context"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
)

type TrainUseCase interface {
	Search(ctx context.Context, routeQuery string) ([]domain.Train, error)
	GetByID(ctx context.Context, trainID string) (*domain.Train, error)
	SoldOut(ctx context.Context) ([]domain.Train, error)
}

// Cache is the catalog cache-aside backend. A nil cache disables
// caching entirely.
type Cache interface {
	GetTrains(ctx context.Context) ([]domain.Train, error)
	SetTrains(ctx context.Context, trains []domain.Train) error
	InvalidateTrains(ctx context.Context) error
}

type TrainService struct {
	repo  repository.TrainRepository
	cache Cache
}

func NewTrainService(repo repository.TrainRepository, cache Cache) *TrainService {
	return &TrainService{repo: repo, cache: cache}
}

// Search filters the catalog by route substring. Only the unfiltered
// listing is cached; availability changes invalidate it.
func (s *TrainService) Search(ctx context.Context, routeQuery string) ([]domain.Train, error) {
	if routeQuery == "" && s.cache != nil {
		if cached, err := s.cache.GetTrains(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trains, err := s.repo.Search(ctx, routeQuery)
	if err != nil {
		return nil, err
	}
	if routeQuery == "" && s.cache != nil {
		_ = s.cache.SetTrains(ctx, trains)
	}
	return trains, nil
}

func (s *TrainService) GetByID(ctx context.Context, trainID string) (*domain.Train, error) {
	return s.repo.GetByID(ctx, trainID)
}

// SoldOut lists trains with zero availability in every class, for the
// admin view.
func (s *TrainService) SoldOut(ctx context.Context) ([]domain.Train, error) {
	trains, err := s.Search(ctx, "")
	if err != nil {
		return nil, err
	}
	soldOut := make([]domain.Train, 0)
	for _, t := range trains {
		if t.SoldOut() {
			soldOut = append(soldOut, t)
		}
	}
	return soldOut, nil
}

var _ TrainUseCase = (*TrainService)(nil)
