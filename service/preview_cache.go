package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"crew-poster/models"
)

// DefaultPreviewDebounce is the idle window before a scheduled preview renders
const DefaultPreviewDebounce = 400 * time.Millisecond

// RenderFunc renders one request
type RenderFunc func(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error)

// PreviewOutcome is delivered once for every Schedule call
type PreviewOutcome struct {
	Result *models.RenderResult
	// Cached is set when the result was the last committed render and the renderer was not invoked
	Cached bool
	// Superseded is set when a newer request replaced this one before it started
	Superseded bool
	Err        error
}

type pendingPreview struct {
	seq   uint64
	hash  string
	req   models.RenderRequest
	ctx   context.Context
	timer Timer
	done  chan PreviewOutcome
}

// inflightPreview is a render that has started. Requests for the same hash
// that arrive meanwhile wait on it instead of rendering again.
type inflightPreview struct {
	seq     uint64
	hash    string
	waiters []chan PreviewOutcome
}

// PreviewCache debounces interactive re-renders for one editing session and
// keeps the most recent result keyed by configuration hash.
//
// State is {lastHash, lastResult, pending, inflight}. Schedule replaces any
// pending request, CancelPending drops it, and a fired render commits its
// result unless a newer render has already committed.
type PreviewCache struct {
	render  RenderFunc
	presets PresetLookup
	clock   Clock
	window  time.Duration

	mu           sync.Mutex
	seq          uint64
	committedSeq uint64
	lastHash     string
	lastResult   *models.RenderResult
	pending      *pendingPreview
	inflight     *inflightPreview
}

// NewPreviewCache creates a PreviewCache. presets may be nil when club presets
// are not configured. A nil clock means the system clock; a non-positive
// window means DefaultPreviewDebounce.
func NewPreviewCache(render RenderFunc, presets PresetLookup, clock Clock, window time.Duration) *PreviewCache {
	if clock == nil {
		clock = SystemClock{}
	}
	if window <= 0 {
		window = DefaultPreviewDebounce
	}
	return &PreviewCache{
		render:  render,
		presets: presets,
		clock:   clock,
		window:  window,
	}
}

// Schedule queues req for rendering after the debounce window. The returned
// channel receives exactly one outcome. A request whose hash matches the last
// committed render is answered immediately from the cache, and one matching
// the render in progress waits for that render.
func (c *PreviewCache) Schedule(ctx context.Context, req models.RenderRequest) <-chan PreviewOutcome {
	done := make(chan PreviewOutcome, 1)

	hash, err := c.hash(ctx, req)
	if err != nil {
		done <- PreviewOutcome{Err: err}
		return done
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()

	if c.lastResult != nil && hash == c.lastHash {
		done <- PreviewOutcome{Result: c.lastResult, Cached: true}
		return done
	}
	if c.inflight != nil && hash == c.inflight.hash {
		c.inflight.waiters = append(c.inflight.waiters, done)
		return done
	}

	c.seq++
	p := &pendingPreview{seq: c.seq, hash: hash, req: req, ctx: ctx, done: done}
	p.timer = c.clock.AfterFunc(c.window, func() { c.fire(p) })
	c.pending = p
	return done
}

// CancelPending drops the scheduled request, if any. Its waiter receives a
// Superseded outcome. A render that has already started is not interrupted.
func (c *PreviewCache) CancelPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
}

func (c *PreviewCache) cancelPendingLocked() {
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.pending.done <- PreviewOutcome{Superseded: true}
	c.pending = nil
}

// Last returns the committed hash and result
func (c *PreviewCache) Last() (string, *models.RenderResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastHash, c.lastResult
}

func (c *PreviewCache) fire(p *pendingPreview) {
	c.mu.Lock()
	if c.pending != p {
		// cancelled after the timer had already started this callback
		c.mu.Unlock()
		return
	}
	c.pending = nil
	if err := p.ctx.Err(); err != nil {
		c.mu.Unlock()
		p.done <- PreviewOutcome{Err: err}
		return
	}
	run := &inflightPreview{seq: p.seq, hash: p.hash, waiters: []chan PreviewOutcome{p.done}}
	c.inflight = run
	c.mu.Unlock()

	result, err := c.render(p.ctx, p.req)
	if err != nil {
		log.Printf("❌ Preview render failed: %v", err)
		result = nil
	} else {
		result.Hash = p.hash
	}

	for _, waiter := range c.finish(run, result, err) {
		waiter <- PreviewOutcome{Result: result, Err: err}
	}
}

// finish retires run and commits its result unless a newer render already
// committed. It returns every waiter attached to run.
func (c *PreviewCache) finish(run *inflightPreview, result *models.RenderResult, err error) []chan PreviewOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight == run {
		c.inflight = nil
	}
	switch {
	case err != nil:
	case run.seq < c.committedSeq:
		log.Printf("⚠️  Discarding stale preview %s", shortHash(run.hash))
	default:
		c.committedSeq = run.seq
		c.lastHash = run.hash
		c.lastResult = result
	}
	return run.waiters
}

// previewKey is everything that influences the rendered pixels
type previewKey struct {
	Crew         models.CrewInput  `json:"crew"`
	TemplateID   string            `json:"templateId"`
	Dimensions   models.Dimensions `json:"dimensions"`
	Colors       models.ColorInput `json:"colors"`
	ClubPresetID string            `json:"clubPresetId"`
	Format       string            `json:"format"`
	Emblem       string            `json:"emblem"`
	Presets      []presetState     `json:"presets,omitempty"`
}

// presetState is the stored part of a club preset that reaches the pixels
type presetState struct {
	ID                string `json:"id"`
	PrimaryColor      string `json:"primaryColor"`
	SecondaryColor    string `json:"secondaryColor"`
	EmblemDriveFileID string `json:"emblemDriveFileId"`
	Missing           bool   `json:"missing,omitempty"`
}

// hash is PreviewHash plus the current state of every club preset the request
// names, so editing a preset changes the hash
func (c *PreviewCache) hash(ctx context.Context, req models.RenderRequest) (string, error) {
	if c.presets == nil {
		return PreviewHash(req)
	}
	var states []presetState
	for _, id := range referencedPresets(req) {
		state := presetState{ID: id}
		preset, err := c.presets.Preset(ctx, id)
		if err != nil || preset == nil {
			state.Missing = true
		} else {
			state.PrimaryColor = preset.PrimaryColor
			state.SecondaryColor = preset.SecondaryColor
			state.EmblemDriveFileID = preset.EmblemDriveFileID
		}
		states = append(states, state)
	}
	return previewHash(req, states)
}

// referencedPresets lists the preset ids a request names, without duplicates
func referencedPresets(req models.RenderRequest) []string {
	var ids []string
	if id := strings.TrimSpace(req.ClubPresetID); id != "" {
		ids = append(ids, id)
	}
	if req.Emblem != nil && len(req.Emblem.Bytes) == 0 {
		if ref := strings.TrimSpace(req.Emblem.PresetReference); ref != "" && (len(ids) == 0 || ids[0] != ref) {
			ids = append(ids, ref)
		}
	}
	return ids
}

// PreviewHash is the SHA-256 of the canonical JSON form of the request's
// render-relevant fields. Emblem bytes contribute only their identity.
func PreviewHash(req models.RenderRequest) (string, error) {
	return previewHash(req, nil)
}

func previewHash(req models.RenderRequest, presets []presetState) (string, error) {
	key := previewKey{
		Presets: presets,
		Crew:         req.Crew,
		TemplateID:   strings.ToLower(strings.TrimSpace(req.TemplateID)),
		Dimensions:   req.Dimensions,
		Colors:       req.Colors,
		ClubPresetID: req.ClubPresetID,
		Format:       strings.ToLower(strings.TrimSpace(req.Format)),
	}
	if req.Emblem != nil {
		switch {
		case len(req.Emblem.Bytes) > 0:
			key.Emblem = EmblemIdentity(req.Emblem.Bytes)
		case req.Emblem.PresetReference != "":
			key.Emblem = "preset:" + req.Emblem.PresetReference
		}
	}

	data, err := json.Marshal(key)
	if err != nil {
		rerr := models.NewRenderError(models.KindSerializationFailure, "failed to hash preview request")
		rerr.Err = err
		return "", rerr
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
