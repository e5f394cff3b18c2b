package repository

import (
	"context"

	"crew-poster/models"
)

// ClubPresetRepositoryInterface defines the contract for club preset repository operations
type ClubPresetRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.ClubPreset, error)
	List(ctx context.Context) ([]models.ClubPreset, error)
}
