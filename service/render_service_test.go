package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	"crew-poster/canvas"
	"crew-poster/models"
)

type fakePresets struct {
	mu          sync.Mutex
	presets     map[string]*models.ClubPreset
	emblem      []byte
	emblemCalls int
}

func (f *fakePresets) Preset(ctx context.Context, id string) (*models.ClubPreset, error) {
	p, ok := f.presets[id]
	if !ok {
		return nil, models.NewRenderError(models.KindPresetNotFound, "club preset %q not found", id)
	}
	return p, nil
}

func (f *fakePresets) EmblemBytes(ctx context.Context, reference string) ([]byte, error) {
	f.mu.Lock()
	f.emblemCalls++
	f.mu.Unlock()
	if _, err := f.Preset(ctx, reference); err != nil {
		return nil, err
	}
	return f.emblem, nil
}

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func eightRequest() models.RenderRequest {
	return models.RenderRequest{
		Crew: models.CrewInput{
			ClubName:      "Leander Club",
			RaceName:      "Henley Royal Regatta",
			BoatName:      "Spirit",
			BoatClassCode: "8+",
			RowerNames:    []string{"Amy", "Bo", "Cal", "Dee", "Eve", "Fay", "Gio", "Hal"},
			CoxName:       "Ivy",
			CoachName:     "Jurgen",
		},
		TemplateID: "heraldic",
		Dimensions: models.Dimensions{Width: 270, Height: 338},
		Colors:     models.ColorInput{Primary: "oxford blue", Secondary: "#C5A03F"},
	}
}

// countingService counts surface allocations
func countingService(presets PresetLookup) (*RenderService, *int) {
	s := NewRenderService(presets, RenderConfig{MaxDimension: 4096})
	allocations := 0
	s.allocate = func(w, h int) *canvas.Canvas {
		allocations++
		return canvas.New(w, h)
	}
	return s, &allocations
}

func TestRenderEncodesPoster(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"", "png"},
		{"png", "png"},
		{"JPEG", "jpeg"},
		{"jpg", "jpeg"},
	}
	s, allocations := countingService(nil)

	for _, tt := range tests {
		req := eightRequest()
		req.Format = tt.format
		result, err := s.Render(context.Background(), req)
		if err != nil {
			t.Fatalf("Render(format=%q) error: %v", tt.format, err)
		}
		cfg, got, err := image.DecodeConfig(bytes.NewReader(result.Data))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != tt.want || result.Format != tt.want {
			t.Errorf("format %q: encoded %s, reported %s, want %s", tt.format, got, result.Format, tt.want)
		}
		if cfg.Width != 270 || cfg.Height != 338 || result.Width != 270 || result.Height != 338 {
			t.Errorf("format %q: size %dx%d, want 270x338", tt.format, cfg.Width, cfg.Height)
		}
		if result.RequestID == "" {
			t.Errorf("format %q: missing request id", tt.format)
		}
	}
	if *allocations != len(tests) {
		t.Errorf("allocations = %d, want %d", *allocations, len(tests))
	}
}

func TestRenderRejectsBeforeAllocating(t *testing.T) {
	presets := &fakePresets{presets: map[string]*models.ClubPreset{}}
	tests := []struct {
		name   string
		mutate func(*models.RenderRequest)
		want   error
	}{
		{"unknown template", func(r *models.RenderRequest) { r.TemplateID = "retro" }, models.ErrUnknownTemplate},
		{"unknown boat class", func(r *models.RenderRequest) { r.Crew.BoatClassCode = "9+" }, models.ErrInvalidBoatClass},
		{"one rower short", func(r *models.RenderRequest) { r.Crew.RowerNames = r.Crew.RowerNames[:7] }, models.ErrRosterMismatch},
		{"one rower extra", func(r *models.RenderRequest) { r.Crew.RowerNames = append(r.Crew.RowerNames, "Zed") }, models.ErrRosterMismatch},
		{"missing cox", func(r *models.RenderRequest) { r.Crew.CoxName = " " }, models.ErrRosterMismatch},
		{"zero width", func(r *models.RenderRequest) { r.Dimensions.Width = 0 }, models.ErrInvalidDimensions},
		{"oversize", func(r *models.RenderRequest) { r.Dimensions.Height = 5000 }, models.ErrInvalidDimensions},
		{"bad format", func(r *models.RenderRequest) { r.Format = "gif" }, models.ErrInvalidFormat},
		{"bad color", func(r *models.RenderRequest) { r.Colors.Primary = "#12345" }, models.ErrInvalidColor},
		{"unknown preset", func(r *models.RenderRequest) { r.ClubPresetID = "nope" }, models.ErrPresetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, allocations := countingService(presets)
			req := eightRequest()
			tt.mutate(&req)

			result, err := s.Render(context.Background(), req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if result != nil {
				t.Errorf("got a result alongside the error")
			}
			if *allocations != 0 {
				t.Errorf("surface allocated %d times", *allocations)
			}
		})
	}
}

func TestRenderRosterMismatchCounts(t *testing.T) {
	s, _ := countingService(nil)
	req := eightRequest()
	req.Crew.RowerNames = req.Crew.RowerNames[:7]

	_, err := s.Render(context.Background(), req)
	var rerr *models.RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("error %v is not a RenderError", err)
	}
	if rerr.Expected != 8 || rerr.Actual != 7 {
		t.Errorf("expected/actual = %d/%d, want 8/7", rerr.Expected, rerr.Actual)
	}
}

func TestRenderBadEmblemIsWarning(t *testing.T) {
	s, _ := countingService(nil)
	req := eightRequest()
	req.Emblem = &models.EmblemInput{Bytes: []byte("definitely not an image")}

	result, err := s.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(result.Warnings) != 1 || !strings.HasPrefix(result.Warnings[0], string(models.KindEmblemInvalid)) {
		t.Errorf("warnings = %q, want one emblem warning", result.Warnings)
	}
}

func TestRenderWithPreset(t *testing.T) {
	presets := &fakePresets{
		presets: map[string]*models.ClubPreset{
			"leander": {ID: "leander", ClubName: "Leander Club", PrimaryColor: "#E4007C", SecondaryColor: "navy", EmblemDriveFileID: "drive-1"},
		},
		emblem: pngBytes(t, 32, 32, color.RGBA{R: 0xE4, B: 0x7C, A: 0xFF}),
	}
	s, _ := countingService(presets)

	req := eightRequest()
	req.Colors = models.ColorInput{}
	req.Crew.ClubName = ""
	req.ClubPresetID = "leander"

	result, err := s.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings %q", result.Warnings)
	}
	if presets.emblemCalls != 1 {
		t.Errorf("emblem fetched %d times, want 1", presets.emblemCalls)
	}
}

func TestResolveColorsExplicitWins(t *testing.T) {
	presets := &fakePresets{presets: map[string]*models.ClubPreset{
		"club": {ID: "club", PrimaryColor: "navy", SecondaryColor: "#FFFFFF"},
	}}
	req := eightRequest()
	req.ClubPresetID = "club"
	req.Colors = models.ColorInput{Primary: "#FF0000"}

	scheme, preset, err := resolveColors(context.Background(), presets, req)
	if err != nil {
		t.Fatal(err)
	}
	if preset == nil || preset.ID != "club" {
		t.Errorf("preset = %v, want club", preset)
	}
	if scheme.Primary != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("primary = %v, want explicit red", scheme.Primary)
	}
	if scheme.Secondary != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("secondary = %v, want preset white", scheme.Secondary)
	}
}

func TestDecodeEmblemShrinksLargeImages(t *testing.T) {
	data := pngBytes(t, 2048, 1024, color.RGBA{G: 0xFF, A: 0xFF})
	emblem, err := DecodeEmblem(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if b := emblem.Image.Bounds(); b.Dx() != 1024 || b.Dy() != 512 {
		t.Errorf("emblem size %dx%d, want 1024x512", b.Dx(), b.Dy())
	}
	if emblem.Identity != EmblemIdentity(data) {
		t.Errorf("identity = %s, want content hash", emblem.Identity)
	}

	if _, err := DecodeEmblem(nil, ""); !errors.Is(err, models.ErrEmblemInvalid) {
		t.Errorf("empty emblem error = %v, want ErrEmblemInvalid", err)
	}
}

func TestRenderBatchCollectsPerItemErrors(t *testing.T) {
	s, _ := countingService(nil)

	bad := eightRequest()
	bad.Crew.RowerNames = bad.Crew.RowerNames[:7]
	pair := eightRequest()
	pair.Crew.BoatClassCode = "2-"
	pair.Crew.RowerNames = []string{"Amy", "Bo"}
	pair.Crew.CoxName = ""
	pair.TemplateID = "style-c"

	results := s.RenderBatch(context.Background(), []models.RenderRequest{eightRequest(), bad, pair})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
	}
	if results[0].Result == nil || results[2].Result == nil {
		t.Errorf("valid entries did not render: %+v", results)
	}
	if results[1].Result != nil || results[1].ErrorKind != models.KindRosterMismatch {
		t.Errorf("bad entry = %+v, want roster mismatch", results[1])
	}
}
