package controller

import (
	"log"
	"net/http"

	"crew-poster/models"
	"crew-poster/service"
)

// maxBatchSize is the largest number of posters accepted in one batch request
const maxBatchSize = 50

// RenderController handles HTTP requests for poster rendering
type RenderController struct {
	renderService service.RenderServiceInterface
	defaults      models.Dimensions
}

// NewRenderController creates a new RenderController
func NewRenderController(renderService service.RenderServiceInterface, defaults models.Dimensions) *RenderController {
	return &RenderController{
		renderService: renderService,
		defaults:      defaults,
	}
}

// Render handles POST /render
// Responds with the encoded image; emblem problems are listed in X-Render-Warnings
func (c *RenderController) Render(w http.ResponseWriter, r *http.Request) {
	var req models.RenderRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Printf("❌ Render: Failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := c.renderService.Render(r.Context(), withDefaults(req, c.defaults))
	if err != nil {
		writeRenderError(w, "Render", err)
		return
	}

	writeImage(w, result)
}

// batchResponse is the body of POST /render/batch
type batchResponse struct {
	Results   []models.BatchItemResult `json:"results"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
}

// RenderBatch handles POST /render/batch
// Images come back base64-encoded in JSON; every entry reports its own error
func (c *RenderController) RenderBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRenderRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Printf("❌ RenderBatch: Failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if len(req.Requests) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "requests cannot be empty"})
		return
	}
	if len(req.Requests) > maxBatchSize {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "too many requests in one batch"})
		return
	}

	reqs := make([]models.RenderRequest, len(req.Requests))
	for i, item := range req.Requests {
		reqs[i] = withDefaults(item, c.defaults)
	}

	resp := batchResponse{Results: c.renderService.RenderBatch(r.Context(), reqs)}
	for _, item := range resp.Results {
		if item.Error == "" {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
