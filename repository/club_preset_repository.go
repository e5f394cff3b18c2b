package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"crew-poster/db"
	"crew-poster/models"
)

// ClubPresetRepository handles database operations for club presets
// Implements ClubPresetRepositoryInterface
type ClubPresetRepository struct{}

// NewClubPresetRepository creates a new ClubPresetRepository
func NewClubPresetRepository() *ClubPresetRepository {
	return &ClubPresetRepository{}
}

// Ensure ClubPresetRepository implements ClubPresetRepositoryInterface
var _ ClubPresetRepositoryInterface = (*ClubPresetRepository)(nil)

// GetByID retrieves a club preset by its id. Returns nil, nil when no preset matches.
func (r *ClubPresetRepository) GetByID(ctx context.Context, id string) (*models.ClubPreset, error) {
	log.Printf("🔍 Fetching club preset: %s", id)

	query := `
		SELECT id, club_name,
		       primary_color,
		       secondary_color,
		       COALESCE(emblem_drive_file_id, '') as emblem_drive_file_id
		FROM club_presets
		WHERE id = $1
	`

	var preset models.ClubPreset
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&preset.ID,
		&preset.ClubName,
		&preset.PrimaryColor,
		&preset.SecondaryColor,
		&preset.EmblemDriveFileID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("⚠️  Club preset not found: %s", id)
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching club preset %s: %v", id, err)
		return nil, fmt.Errorf("failed to get club preset: %w", err)
	}

	return &preset, nil
}

// List retrieves every club preset ordered by club name
func (r *ClubPresetRepository) List(ctx context.Context) ([]models.ClubPreset, error) {
	query := `
		SELECT id, club_name,
		       primary_color,
		       secondary_color,
		       COALESCE(emblem_drive_file_id, '') as emblem_drive_file_id
		FROM club_presets
		ORDER BY club_name
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error listing club presets: %v", err)
		return nil, fmt.Errorf("failed to list club presets: %w", err)
	}
	defer rows.Close()

	presets := []models.ClubPreset{}
	for rows.Next() {
		var preset models.ClubPreset
		if err := rows.Scan(
			&preset.ID,
			&preset.ClubName,
			&preset.PrimaryColor,
			&preset.SecondaryColor,
			&preset.EmblemDriveFileID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan club preset: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate club presets: %w", err)
	}

	log.Printf("✓ Loaded %d club presets", len(presets))
	return presets, nil
}
