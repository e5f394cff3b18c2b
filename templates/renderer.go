// Package templates holds the visual styles a crew poster can be drawn in.
// Every style consumes the same seat assignment; they differ only in how it looks.
package templates

import (
	"strings"

	"seehuhn.de/go/geom/rect"

	"crew-poster/canvas"
	"crew-poster/models"
	"crew-poster/roster"
)

// Renderer draws a crew poster in one visual style onto a cleared surface.
// Implementations hold no state, so one value serves concurrent renders.
type Renderer interface {
	// ID is the templateId callers select the style with
	ID() string
	// Name is a human-readable style name
	Name() string
	// NameBudget is the number of characters a rower name may show before it is truncated
	NameBudget() int
	// EmblemRegion is the corner box the club emblem is composited into.
	// It depends only on the canvas size.
	EmblemRegion(width, height int) rect.Rect
	// Render draws the poster
	Render(surface *canvas.Canvas, crew models.Crew, seats roster.Assignment, cfg models.TemplateConfig)
}

var registry = map[string]Renderer{
	"heraldic": Heraldic{},
	"modern":   Modern{},
	"bold":     Bold{},
}

var order = []string{"heraldic", "modern", "bold"}

var aliases = map[string]string{
	"style-a": "heraldic",
	"style-b": "modern",
	"style-c": "bold",
}

// Lookup returns the renderer registered under id (or one of its style-x aliases)
func Lookup(id string) (Renderer, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	r, ok := registry[key]
	if !ok {
		return nil, models.NewRenderError(models.KindUnknownTemplate, "unknown template %q", id)
	}
	return r, nil
}

// All returns every registered renderer in a stable order
func All() []Renderer {
	out := make([]Renderer, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}
