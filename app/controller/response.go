package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"crew-poster/models"
)

// maxRequestBody bounds a decoded request, emblem bytes included
const maxRequestBody = 16 << 20

// errorResponse is the JSON body of a failed request
type errorResponse struct {
	Error    string           `json:"error"`
	Kind     models.ErrorKind `json:"kind,omitempty"`
	Expected int              `json:"expected,omitempty"`
	Actual   int              `json:"actual,omitempty"`
}

// statusFor maps a render error kind to its HTTP status
func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindRosterMismatch:
		return http.StatusUnprocessableEntity
	case models.KindPresetNotFound:
		return http.StatusNotFound
	case models.KindSerializationFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// writeRenderError reports err with the status its kind maps to
func writeRenderError(w http.ResponseWriter, op string, err error) {
	var rerr *models.RenderError
	switch {
	case errors.As(err, &rerr):
		status := statusFor(rerr.Kind)
		log.Printf("❌ %s: %s (%d)", op, rerr.Error(), status)
		writeJSON(w, status, errorResponse{Error: rerr.Error(), Kind: rerr.Kind, Expected: rerr.Expected, Actual: rerr.Actual})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("⚠️  %s: %v", op, err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		log.Printf("❌ %s: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// writeImage sends an encoded poster with its metadata headers
func writeImage(w http.ResponseWriter, result *models.RenderResult) {
	w.Header().Set("Content-Type", result.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	if result.RequestID != "" {
		w.Header().Set("X-Request-ID", result.RequestID)
	}
	if len(result.Warnings) > 0 {
		w.Header().Set("X-Render-Warnings", strings.Join(result.Warnings, "; "))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		log.Printf("❌ Error writing image: %v", err)
	}
}

// decodeBody reads a JSON request body into v, rejecting unknown fields
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// withDefaults fills an omitted size with the configured default. Explicit
// non-positive sizes are left for the render service to reject.
func withDefaults(req models.RenderRequest, defaults models.Dimensions) models.RenderRequest {
	if req.Dimensions.Width == 0 && req.Dimensions.Height == 0 {
		req.Dimensions = defaults
	}
	return req
}
