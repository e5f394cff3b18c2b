package service

import (
	"context"

	"crew-poster/models"
)

// RenderServiceInterface defines the contract for crew poster rendering
type RenderServiceInterface interface {
	Render(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error)
	// RenderBatch renders every request independently. One failing entry never
	// stops the others; each result carries its own error.
	RenderBatch(ctx context.Context, reqs []models.RenderRequest) []models.BatchItemResult
}
