package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	ToursTTL time.Duration
}

// Client кеширует список туров. Кеш опционален: при недоступном Redis
// обработчики ходят напрямую в базу.
type Client struct {
	rdb      *redis.Client
	toursTTL time.Duration
}

const toursListKey = "tours:list"

func New(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		rdb:      rdb,
		toursTTL: cfg.ToursTTL,
	}, nil
}

// GetToursListRaw returns the cached tours list as raw JSON to skip
// an unmarshal/marshal round trip on the hot path.
func (c *Client) GetToursListRaw(ctx context.Context) ([]byte, error) {
	return c.rdb.Get(ctx, toursListKey).Bytes()
}

func (c *Client) SetToursList(ctx context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal tours list for cache", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, toursListKey, data, c.toursTTL).Err(); err != nil {
		slog.Error("Failed to store tours list in cache", "error", err)
	}
}

func (c *Client) InvalidateToursList(ctx context.Context) {
	if err := c.rdb.Del(ctx, toursListKey).Err(); err != nil {
		slog.Error("Failed to invalidate tours list cache", "error", err)
	}
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
