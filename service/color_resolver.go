package service

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strings"

	"crew-poster/models"
	"crew-poster/utils"
)

// Colors used when neither the request nor a club preset names one
const (
	defaultPrimary   = "navy"
	defaultSecondary = "#C5A03F"
)

// PresetLookup resolves saved club presets and the emblems they reference
type PresetLookup interface {
	Preset(ctx context.Context, id string) (*models.ClubPreset, error)
	EmblemBytes(ctx context.Context, reference string) ([]byte, error)
}

// resolveColors picks each color from the request, then the club preset, then the default.
// The preset is returned so the emblem step can reuse it.
func resolveColors(ctx context.Context, presets PresetLookup, req models.RenderRequest) (models.ColorScheme, *models.ClubPreset, error) {
	var preset *models.ClubPreset
	if id := strings.TrimSpace(req.ClubPresetID); id != "" {
		if presets == nil {
			return models.ColorScheme{}, nil, models.NewRenderError(models.KindPresetNotFound, "club presets are not configured")
		}
		p, err := presets.Preset(ctx, id)
		if err != nil {
			return models.ColorScheme{}, nil, err
		}
		preset = p
	}

	primary, err := pickColor("primary", req.Colors.Primary, preset, func(p *models.ClubPreset) string { return p.PrimaryColor }, defaultPrimary)
	if err != nil {
		return models.ColorScheme{}, nil, err
	}
	secondary, err := pickColor("secondary", req.Colors.Secondary, preset, func(p *models.ClubPreset) string { return p.SecondaryColor }, defaultSecondary)
	if err != nil {
		return models.ColorScheme{}, nil, err
	}

	return models.ColorScheme{Primary: primary, Secondary: secondary}, preset, nil
}

func pickColor(role, explicit string, preset *models.ClubPreset, fromPreset func(*models.ClubPreset) string, fallback string) (color.RGBA, error) {
	value := strings.TrimSpace(explicit)
	if value == "" && preset != nil {
		value = strings.TrimSpace(fromPreset(preset))
	}
	if value == "" {
		value = fallback
	}

	c, err := utils.ParseColor(value)
	if err != nil {
		rerr := models.NewRenderError(models.KindInvalidColor, "invalid %s color %q", role, value)
		rerr.Err = err
		return color.RGBA{}, rerr
	}
	return c, nil
}

// resolveEmblem finds the emblem for a request: inline bytes first, then a
// preset reference, then the club preset's own emblem. Failures are returned
// as warnings and the poster is drawn without an emblem.
func resolveEmblem(ctx context.Context, presets PresetLookup, req models.RenderRequest, preset *models.ClubPreset) (*models.Emblem, []string) {
	var (
		data      []byte
		identity  string
		reference string
	)

	switch {
	case req.Emblem != nil && len(req.Emblem.Bytes) > 0:
		data = req.Emblem.Bytes
	case req.Emblem != nil && strings.TrimSpace(req.Emblem.PresetReference) != "":
		reference = strings.TrimSpace(req.Emblem.PresetReference)
	case preset != nil && preset.EmblemDriveFileID != "":
		reference = preset.ID
	default:
		return nil, nil
	}

	if reference != "" {
		if presets == nil {
			return nil, []string{emblemWarning(models.NewRenderError(models.KindEmblemInvalid, "club presets are not configured"))}
		}
		fetched, err := presets.EmblemBytes(ctx, reference)
		if err != nil {
			return nil, []string{emblemWarning(fmt.Errorf("failed to fetch emblem %q: %w", reference, err))}
		}
		data = fetched
		identity = "preset:" + reference
	}

	emblem, err := DecodeEmblem(data, identity)
	if err != nil {
		return nil, []string{emblemWarning(err)}
	}
	return emblem, nil
}

func emblemWarning(err error) string {
	log.Printf("⚠️  Emblem skipped: %v", err)
	return string(models.KindEmblemInvalid) + ": " + err.Error()
}
