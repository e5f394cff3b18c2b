package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"crew-poster/models"
)

// RenderBatch renders the requests concurrently, at most batchConcurrency at
// a time. Results are in request order.
func (s *RenderService) RenderBatch(ctx context.Context, reqs []models.RenderRequest) []models.BatchItemResult {
	log.Printf("📦 Rendering batch of %d posters", len(reqs))

	results := make([]models.BatchItemResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			item := models.BatchItemResult{Index: i}
			result, err := s.Render(gctx, req)
			if err != nil {
				item.Error, item.ErrorKind = describe(err)
			} else {
				item.Result = result
			}
			results[i] = item
			// per-item errors are reported, never propagated
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	log.Printf("🎉 Batch completed: %d rendered, %d failed", len(reqs)-failed, failed)
	return results
}

// describe formats an error for per-item reporting
func describe(err error) (string, models.ErrorKind) {
	var rerr *models.RenderError
	if errors.As(err, &rerr) {
		return rerr.Error(), rerr.Kind
	}
	return fmt.Sprintf("render failed: %v", err), ""
}
