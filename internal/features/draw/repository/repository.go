package repository

import (
	"context"

	"draw-tool-backend/internal/features/draw/models"
)

type DrawRepository interface {
	// Save stores the draw under its ID.
	Save(ctx context.Context, draw *models.Draw) error

	// Get returns nil, nil when no draw has the ID.
	Get(ctx context.Context, id string) (*models.Draw, error)
}
