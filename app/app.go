package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"crew-poster/app/controller"
	"crew-poster/app/router"
	"crew-poster/db"
	"crew-poster/models"
	"crew-poster/repository"
	"crew-poster/service"
)

// Initialize wires services and controllers and returns the HTTP handler.
// The database and Google Drive are optional; without them club presets and
// preset emblems are unavailable.
func Initialize(ctx context.Context, cfg Config) (http.Handler, error) {
	var presetService *service.PresetService

	if cfg.DatabaseURL == "" {
		log.Printf("⚠️  No database configured, club presets disabled")
	} else {
		if err := db.InitDB(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		var driveService service.DriveServiceInterface
		if cfg.CredentialsPath == "" {
			log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, preset emblems disabled")
		} else {
			ds, err := service.NewDriveService(ctx, cfg.CredentialsPath)
			if err != nil {
				return nil, err
			}
			driveService = ds
		}

		presetService = service.NewPresetService(repository.NewClubPresetRepository(), driveService)
	}

	// A nil *PresetService must not become a non-nil interface
	var (
		presets service.PresetLookup
		lister  controller.PresetLister
	)
	if presetService != nil {
		presets = presetService
		lister = presetService
	}

	renderService := service.NewRenderService(presets, service.RenderConfig{
		MaxDimension:     cfg.MaxDimension,
		BatchConcurrency: cfg.BatchConcurrency,
	})
	defaults := models.Dimensions{Width: cfg.DefaultWidth, Height: cfg.DefaultHeight}

	controllers := &router.Controllers{
		Render:  controller.NewRenderController(renderService, defaults),
		Preview: controller.NewPreviewController(renderService.Render, presets, service.SystemClock{}, cfg.PreviewDebounce, cfg.PreviewIdleTTL, defaults),
		Catalog: controller.NewCatalogController(lister),
	}

	log.Printf("✓ Render service ready (max %dpx, batch concurrency %d)", cfg.MaxDimension, cfg.BatchConcurrency)
	return router.SetupRoutes(controllers), nil
}
