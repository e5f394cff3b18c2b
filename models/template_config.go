package models

import (
	"image"
	"image/color"
)

// Crew holds the crew metadata a template prints besides the seat assignment
type Crew struct {
	ClubName  string
	RaceName  string
	BoatName  string
	CoachName string
}

// ColorScheme is the normalized pair of club colors
type ColorScheme struct {
	Primary   color.RGBA
	Secondary color.RGBA
}

// Emblem is a decoded club emblem. Identity is a stable key for caching
// (content hash or preset reference).
type Emblem struct {
	Image    image.Image
	Identity string
}

// TemplateConfig is the per-request rendering configuration handed to a template
type TemplateConfig struct {
	TemplateID string
	Dimensions Dimensions
	Colors     ColorScheme
	Emblem     *Emblem
}

// HasEmblem reports whether an emblem should be composited
func (c TemplateConfig) HasEmblem() bool {
	return c.Emblem != nil && c.Emblem.Image != nil
}
