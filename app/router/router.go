package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crew-poster/app/controller"
)

type Controllers struct {
	Render  *controller.RenderController
	Preview *controller.PreviewController
	Catalog *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the HTTP handler
func SetupRoutes(controllers *Controllers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	// Catalogs
	r.Get("/templates", controllers.Catalog.ListTemplates)
	r.Get("/boat-classes", controllers.Catalog.ListBoatClasses)
	r.Get("/club-presets", controllers.Catalog.ListClubPresets)

	// Rendering; batches may take a while
	r.With(middleware.Timeout(30*time.Second)).Post("/render", controllers.Render.Render)
	r.With(middleware.Timeout(2*time.Minute)).Post("/render/batch", controllers.Render.RenderBatch)

	// Live preview
	r.Post("/preview", controllers.Preview.Preview)
	r.Delete("/preview", controllers.Preview.CancelPreview)

	return r
}
