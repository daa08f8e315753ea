package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps flight summaries so list queries do not have to walk the
// whole register on every request. Services treat it as optional and must
// work with a nil cache.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

// GetFlights returns the cached summaries, or nil on a miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightSummary, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightSummary
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightSummary) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the summary snapshot. Called after every booking
// or lifecycle transition.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightsKey() string {
	return "cache:flights"
}
