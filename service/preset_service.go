package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"crew-poster/models"
	"crew-poster/repository"
)

// DefaultEmblemTTL is how long a downloaded preset emblem is reused before
// it is fetched from Drive again
const DefaultEmblemTTL = 15 * time.Minute

type cachedEmblem struct {
	data      []byte
	fetchedAt time.Time
}

// PresetService resolves club presets from the database and their emblems from Drive.
// Downloaded emblem bytes are kept in memory by Drive file id for emblemTTL.
// Implements PresetLookup
type PresetService struct {
	repository   repository.ClubPresetRepositoryInterface
	driveService DriveServiceInterface
	emblemTTL    time.Duration
	now          func() time.Time

	mu      sync.RWMutex
	emblems map[string]cachedEmblem
}

// Ensure PresetService implements PresetLookup
var _ PresetLookup = (*PresetService)(nil)

// NewPresetService creates a new PresetService. driveService may be nil, in
// which case preset emblems are unavailable.
func NewPresetService(repo repository.ClubPresetRepositoryInterface, driveService DriveServiceInterface) *PresetService {
	return &PresetService{
		repository:   repo,
		driveService: driveService,
		emblemTTL:    DefaultEmblemTTL,
		now:          time.Now,
		emblems:      make(map[string]cachedEmblem),
	}
}

// Preset returns the club preset with the given id
func (s *PresetService) Preset(ctx context.Context, id string) (*models.ClubPreset, error) {
	preset, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load club preset: %w", err)
	}
	if preset == nil {
		return nil, models.NewRenderError(models.KindPresetNotFound, "club preset %q not found", id)
	}
	return preset, nil
}

// List returns every stored club preset
func (s *PresetService) List(ctx context.Context) ([]models.ClubPreset, error) {
	return s.repository.List(ctx)
}

// EmblemBytes returns the emblem image of the preset named by reference
func (s *PresetService) EmblemBytes(ctx context.Context, reference string) ([]byte, error) {
	preset, err := s.Preset(ctx, reference)
	if err != nil {
		return nil, err
	}
	if preset.EmblemDriveFileID == "" {
		return nil, fmt.Errorf("club preset %q has no emblem", reference)
	}
	if s.driveService == nil {
		return nil, fmt.Errorf("google drive is not configured")
	}

	s.mu.RLock()
	cached, ok := s.emblems[preset.EmblemDriveFileID]
	s.mu.RUnlock()
	if ok && s.now().Sub(cached.fetchedAt) < s.emblemTTL {
		return cached.data, nil
	}

	data, err := s.driveService.DownloadImage(ctx, preset.EmblemDriveFileID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.emblems[preset.EmblemDriveFileID] = cachedEmblem{data: data, fetchedAt: s.now()}
	s.mu.Unlock()
	log.Printf("📦 Cached emblem for preset %s", reference)
	return data, nil
}
