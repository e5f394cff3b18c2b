package controller

import (
	"context"
	"log"
	"net/http"

	"crew-poster/models"
	"crew-poster/roster"
	"crew-poster/templates"
)

// PresetLister lists stored club presets
type PresetLister interface {
	List(ctx context.Context) ([]models.ClubPreset, error)
}

// CatalogController serves the read-only catalogs a poster editor needs:
// templates, boat classes and club presets
type CatalogController struct {
	presets PresetLister
}

// NewCatalogController creates a new CatalogController. presets may be nil
// when no database is configured.
func NewCatalogController(presets PresetLister) *CatalogController {
	return &CatalogController{
		presets: presets,
	}
}

// templateInfo describes one poster style
type templateInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameBudget int    `json:"nameBudget"`
}

// ListTemplates handles GET /templates
func (c *CatalogController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	all := templates.All()
	infos := make([]templateInfo, 0, len(all))
	for _, t := range all {
		infos = append(infos, templateInfo{ID: t.ID(), Name: t.Name(), NameBudget: t.NameBudget()})
	}
	writeJSON(w, http.StatusOK, infos)
}

// ListBoatClasses handles GET /boat-classes
func (c *CatalogController) ListBoatClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, roster.BoatClasses())
}

// ListClubPresets handles GET /club-presets
func (c *CatalogController) ListClubPresets(w http.ResponseWriter, r *http.Request) {
	if c.presets == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "club presets are not configured"})
		return
	}

	presets, err := c.presets.List(r.Context())
	if err != nil {
		log.Printf("❌ ListClubPresets: Error fetching presets: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch club presets"})
		return
	}

	writeJSON(w, http.StatusOK, presets)
}
