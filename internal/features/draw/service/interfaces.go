package service

import (
	"context"

	"draw-tool-backend/internal/features/draw/models"
	"draw-tool-backend/internal/features/draw/models/dto"
)

type Service interface {
	Create(ctx context.Context, req *dto.CreateDrawRequest) (*models.Draw, error)
	Get(ctx context.Context, id string) (*models.Draw, error)
	Verify(ctx context.Context, id string) (*models.Verification, error)
	Preview(ctx context.Context, req *dto.PreviewRequest) (*dto.PreviewResponse, error)
}
