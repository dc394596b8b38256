package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"draw-tool-backend/internal/features/draw/models"
	"draw-tool-backend/internal/features/draw/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefixDraw = "draw:"

type Repository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRepository stores draws with the given TTL; zero keeps them forever.
func NewRepository(client redis.Cmdable, ttl time.Duration) repository.DrawRepository {
	return &Repository{client: client, ttl: ttl}
}

func drawKey(id string) string {
	return keyPrefixDraw + id
}

func (r *Repository) Save(ctx context.Context, draw *models.Draw) error {
	data, err := json.Marshal(draw)
	if err != nil {
		return fmt.Errorf("failed to marshal draw: %w", err)
	}
	if err := r.client.Set(ctx, drawKey(draw.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draw: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*models.Draw, error) {
	data, err := r.client.Get(ctx, drawKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw: %w", err)
	}

	var draw models.Draw
	if err := json.Unmarshal(data, &draw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draw: %w", err)
	}
	return &draw, nil
}
