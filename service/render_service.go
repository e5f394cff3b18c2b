package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"crew-poster/canvas"
	"crew-poster/models"
	"crew-poster/roster"
	"crew-poster/templates"
)

// Default limits, overridable through RenderConfig
const (
	DefaultMaxDimension     = 8192
	DefaultBatchConcurrency = 4
)

// RenderConfig holds the render limits
type RenderConfig struct {
	MaxDimension     int
	BatchConcurrency int
}

// RenderService validates a render request, assigns seats, resolves colors
// and emblem, draws the poster and encodes it
// Implements RenderServiceInterface
type RenderService struct {
	presets          PresetLookup
	maxDimension     int
	batchConcurrency int

	// allocate creates the drawing surface; replaced in tests to observe allocation
	allocate func(width, height int) *canvas.Canvas
}

// Ensure RenderService implements RenderServiceInterface
var _ RenderServiceInterface = (*RenderService)(nil)

// NewRenderService creates a new RenderService. presets may be nil when no
// preset store is configured.
func NewRenderService(presets PresetLookup, cfg RenderConfig) *RenderService {
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = DefaultMaxDimension
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = DefaultBatchConcurrency
	}
	return &RenderService{
		presets:          presets,
		maxDimension:     cfg.MaxDimension,
		batchConcurrency: cfg.BatchConcurrency,
		allocate:         canvas.New,
	}
}

// Render produces the encoded poster for one request. Every structural error
// is reported before a surface is allocated; a failed render returns no image.
func (s *RenderService) Render(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error) {
	requestID := uuid.New().String()

	format, err := normalizeFormat(req.Format)
	if err != nil {
		return nil, err
	}
	if err := s.validateDimensions(req.Dimensions); err != nil {
		return nil, err
	}
	renderer, err := templates.Lookup(req.TemplateID)
	if err != nil {
		return nil, err
	}
	seats, err := roster.AssignCode(req.Crew.BoatClassCode, req.Crew.RowerNames, req.Crew.CoxName)
	if err != nil {
		return nil, err
	}
	colors, preset, err := resolveColors(ctx, s.presets, req)
	if err != nil {
		return nil, err
	}
	emblem, warnings := resolveEmblem(ctx, s.presets, req, preset)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	crew := models.Crew{
		ClubName:  strings.TrimSpace(req.Crew.ClubName),
		RaceName:  strings.TrimSpace(req.Crew.RaceName),
		BoatName:  strings.TrimSpace(req.Crew.BoatName),
		CoachName: strings.TrimSpace(req.Crew.CoachName),
	}
	if crew.ClubName == "" && preset != nil {
		crew.ClubName = preset.ClubName
	}
	cfg := models.TemplateConfig{
		TemplateID: renderer.ID(),
		Dimensions: req.Dimensions,
		Colors:     colors,
		Emblem:     emblem,
	}

	log.Printf("🎨 [%s] Rendering %s %s poster %dx%d", requestID, renderer.ID(), seats.Class.Code, req.Dimensions.Width, req.Dimensions.Height)

	surface := s.allocate(req.Dimensions.Width, req.Dimensions.Height)
	defer surface.Close()
	renderer.Render(surface, crew, seats, cfg)

	data, err := surface.Encode(format)
	if err != nil {
		log.Printf("❌ [%s] Failed to encode poster: %v", requestID, err)
		rerr := models.NewRenderError(models.KindSerializationFailure, "failed to encode poster")
		rerr.Err = err
		return nil, rerr
	}

	log.Printf("✓ [%s] Poster rendered: format=%s, output_size=%d bytes", requestID, format, len(data))
	return &models.RenderResult{
		RequestID: requestID,
		Data:      data,
		Format:    format,
		Width:     req.Dimensions.Width,
		Height:    req.Dimensions.Height,
		Warnings:  warnings,
	}, nil
}

func (s *RenderService) validateDimensions(d models.Dimensions) error {
	if d.Width <= 0 || d.Height <= 0 {
		return models.NewRenderError(models.KindInvalidDimensions, "dimensions must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.Width > s.maxDimension || d.Height > s.maxDimension {
		return models.NewRenderError(models.KindInvalidDimensions, "dimensions %dx%d exceed the %dpx limit", d.Width, d.Height, s.maxDimension)
	}
	return nil
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", models.FormatPNG:
		return models.FormatPNG, nil
	case models.FormatJPEG, "jpg":
		return models.FormatJPEG, nil
	default:
		return "", models.NewRenderError(models.KindInvalidFormat, "unsupported format %q", format)
	}
}
