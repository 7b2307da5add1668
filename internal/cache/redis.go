package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the train-catalog cache and the pending-booking
// drafts. Drafts are keyed by user id: one in-flight draft per user,
// consumed exactly once on confirmation.
type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
	draftTTL   time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL, draftTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
		draftTTL:   draftTTL,
	}
}

func (c *RedisCache) GetTrains(ctx context.Context) ([]domain.Train, error) {
	data, err := c.client.Get(ctx, catalogKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var trains []domain.Train
	if err := json.Unmarshal(data, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

func (c *RedisCache) SetTrains(ctx context.Context, trains []domain.Train) error {
	payload, err := json.Marshal(trains)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey(), payload, c.catalogTTL).Err()
}

// InvalidateTrains drops the catalog entry after a reservation
// changed availability.
func (c *RedisCache) InvalidateTrains(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey()).Err()
}

func (c *RedisCache) PutDraft(ctx context.Context, userID string, draft *domain.PendingBooking) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, draftKey(userID), payload, c.draftTTL).Err()
}

func (c *RedisCache) GetDraft(ctx context.Context, userID string) (*domain.PendingBooking, error) {
	data, err := c.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, err
	}

	var draft domain.PendingBooking
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *RedisCache) DeleteDraft(ctx context.Context, userID string) error {
	return c.client.Del(ctx, draftKey(userID)).Err()
}

func catalogKey() string {
	return "cache:trains"
}

func draftKey(userID string) string {
	return fmt.Sprintf("draft:user:%s", userID)
}
