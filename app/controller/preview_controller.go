package controller

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"crew-poster/models"
	"crew-poster/service"
)

// PreviewSessionHeader identifies the editing session a preview belongs to
const PreviewSessionHeader = "X-Preview-Session"

type previewSession struct {
	cache    *service.PreviewCache
	lastUsed time.Time
}

// PreviewController handles debounced live previews. Each editing session
// gets its own cache; sessions idle longer than idleTTL are dropped.
type PreviewController struct {
	render   service.RenderFunc
	presets  service.PresetLookup
	clock    service.Clock
	debounce time.Duration
	idleTTL  time.Duration
	defaults models.Dimensions
	now      func() time.Time

	sessions     map[string]*previewSession
	sessionMutex sync.RWMutex
}

// NewPreviewController creates a new PreviewController
// presets may be nil when club presets are not configured
func NewPreviewController(render service.RenderFunc, presets service.PresetLookup, clock service.Clock, debounce, idleTTL time.Duration, defaults models.Dimensions) *PreviewController {
	return &PreviewController{
		render:   render,
		presets:  presets,
		clock:    clock,
		debounce: debounce,
		idleTTL:  idleTTL,
		defaults: defaults,
		now:      time.Now,
		sessions: make(map[string]*previewSession),
	}
}

// Preview handles POST /preview
// Superseded requests get 204 No Content; X-Preview-Cache reports hit or miss
func (c *PreviewController) Preview(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.Header.Get(PreviewSessionHeader))
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: PreviewSessionHeader + " header is required"})
		return
	}

	var req models.RenderRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Printf("❌ Preview: Failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	cache := c.session(sessionID)
	outcome := cache.Schedule(r.Context(), withDefaults(req, c.defaults))

	select {
	case o := <-outcome:
		switch {
		case o.Superseded:
			w.WriteHeader(http.StatusNoContent)
		case o.Err != nil:
			writeRenderError(w, "Preview", o.Err)
		default:
			if o.Cached {
				w.Header().Set("X-Preview-Cache", "hit")
			} else {
				w.Header().Set("X-Preview-Cache", "miss")
			}
			w.Header().Set("X-Preview-Hash", o.Result.Hash)
			writeImage(w, o.Result)
		}
	case <-r.Context().Done():
		log.Printf("⚠️  Preview: client for session %s went away", sessionID)
	}
}

// CancelPreview handles DELETE /preview
// Drops the session's pending preview and forgets the session
func (c *PreviewController) CancelPreview(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.Header.Get(PreviewSessionHeader))
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: PreviewSessionHeader + " header is required"})
		return
	}

	c.sessionMutex.Lock()
	s, ok := c.sessions[sessionID]
	delete(c.sessions, sessionID)
	c.sessionMutex.Unlock()

	if ok {
		s.cache.CancelPending()
	}
	w.WriteHeader(http.StatusNoContent)
}

// session returns the cache for sessionID, creating it on first use, and
// prunes sessions that have been idle too long
func (c *PreviewController) session(id string) *service.PreviewCache {
	now := c.now()

	c.sessionMutex.Lock()
	defer c.sessionMutex.Unlock()

	for key, s := range c.sessions {
		if key != id && now.Sub(s.lastUsed) > c.idleTTL {
			s.cache.CancelPending()
			delete(c.sessions, key)
			log.Printf("🔄 Preview session %s expired", key)
		}
	}

	s, ok := c.sessions[id]
	if !ok {
		s = &previewSession{cache: service.NewPreviewCache(c.render, c.presets, c.clock, c.debounce)}
		c.sessions[id] = s
	}
	s.lastUsed = now
	return s.cache
}

// SessionCount returns the number of live preview sessions
func (c *PreviewController) SessionCount() int {
	c.sessionMutex.RLock()
	defer c.sessionMutex.RUnlock()
	return len(c.sessions)
}
