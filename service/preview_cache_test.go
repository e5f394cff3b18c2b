package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"crew-poster/models"
)

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// fakeClock fires timers only when advanced
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// countingRender records every request it renders
type countingRender struct {
	mu       sync.Mutex
	rendered []models.RenderRequest
}

func (r *countingRender) render(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rendered = append(r.rendered, req)
	return &models.RenderResult{Data: []byte(req.Crew.BoatName), Format: models.FormatPNG}, nil
}

func (r *countingRender) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rendered)
}

const window = 400 * time.Millisecond

func previewRequest(boat string) models.RenderRequest {
	req := eightRequest()
	req.Crew.BoatName = boat
	return req
}

func receive(t *testing.T, ch <-chan PreviewOutcome) PreviewOutcome {
	t.Helper()
	select {
	case o := <-ch:
		return o
	default:
		t.Fatalf("no outcome delivered")
		return PreviewOutcome{}
	}
}

func TestPreviewSameRequestTwiceRendersOnce(t *testing.T) {
	clock := &fakeClock{}
	r := &countingRender{}
	cache := NewPreviewCache(r.render, nil, clock, window)
	ctx := context.Background()

	first := cache.Schedule(ctx, previewRequest("Spirit"))
	clock.Advance(100 * time.Millisecond)
	second := cache.Schedule(ctx, previewRequest("Spirit"))

	if o := receive(t, first); !o.Superseded {
		t.Errorf("first outcome = %+v, want superseded", o)
	}

	clock.Advance(window)
	o := receive(t, second)
	if o.Err != nil || o.Result == nil || o.Cached {
		t.Fatalf("second outcome = %+v, want a fresh render", o)
	}
	if o.Result.Hash == "" {
		t.Errorf("result carries no hash")
	}

	third := cache.Schedule(ctx, previewRequest("Spirit"))
	if o := receive(t, third); !o.Cached || o.Result == nil {
		t.Errorf("third outcome = %+v, want cached", o)
	}

	if n := r.calls(); n != 1 {
		t.Errorf("renderer invoked %d times, want 1", n)
	}
}

func TestPreviewRendersOnlyLatestEdit(t *testing.T) {
	clock := &fakeClock{}
	r := &countingRender{}
	cache := NewPreviewCache(r.render, nil, clock, window)
	ctx := context.Background()

	var outcomes []<-chan PreviewOutcome
	for _, boat := range []string{"S", "Sp", "Spi", "Spirit"} {
		outcomes = append(outcomes, cache.Schedule(ctx, previewRequest(boat)))
		clock.Advance(50 * time.Millisecond)
	}
	clock.Advance(window)

	for i, ch := range outcomes[:3] {
		if o := receive(t, ch); !o.Superseded {
			t.Errorf("edit %d outcome = %+v, want superseded", i, o)
		}
	}
	if o := receive(t, outcomes[3]); o.Result == nil || string(o.Result.Data) != "Spirit" {
		t.Errorf("last edit outcome = %+v, want rendered Spirit", o)
	}
	if n := r.calls(); n != 1 {
		t.Errorf("renderer invoked %d times, want 1", n)
	}
}

func TestPreviewCancelPending(t *testing.T) {
	clock := &fakeClock{}
	r := &countingRender{}
	cache := NewPreviewCache(r.render, nil, clock, window)

	ch := cache.Schedule(context.Background(), previewRequest("Spirit"))
	cache.CancelPending()
	clock.Advance(time.Second)

	if o := receive(t, ch); !o.Superseded {
		t.Errorf("outcome = %+v, want superseded", o)
	}
	if n := r.calls(); n != 0 {
		t.Errorf("renderer invoked %d times after cancel", n)
	}
	if hash, result := cache.Last(); hash != "" || result != nil {
		t.Errorf("cancelled request committed %s", hash)
	}
}

func TestPreviewStaleRenderDoesNotOverwrite(t *testing.T) {
	clock := &fakeClock{}
	started := make(chan struct{})
	release := make(chan struct{})
	render := func(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error) {
		if req.Crew.BoatName == "slow" {
			close(started)
			<-release
		}
		return &models.RenderResult{Data: []byte(req.Crew.BoatName)}, nil
	}
	cache := NewPreviewCache(render, nil, clock, window)
	ctx := context.Background()

	slow := cache.Schedule(ctx, previewRequest("slow"))
	go clock.Advance(window)
	<-started

	fast := cache.Schedule(ctx, previewRequest("fast"))
	clock.Advance(window)
	if o := receive(t, fast); o.Result == nil {
		t.Fatalf("fast outcome = %+v", o)
	}

	close(release)
	o := <-slow
	if o.Result == nil || string(o.Result.Data) != "slow" {
		t.Errorf("slow outcome = %+v, want its own result", o)
	}

	want, _ := PreviewHash(previewRequest("fast"))
	if hash, result := cache.Last(); hash != want || string(result.Data) != "fast" {
		t.Errorf("committed %s (%q), want the fast render", hash, result.Data)
	}
}

func TestPreviewRenderErrorIsNotCommitted(t *testing.T) {
	clock := &fakeClock{}
	boom := errors.New("boom")
	cache := NewPreviewCache(func(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error) {
		return nil, boom
	}, nil, clock, window)

	ch := cache.Schedule(context.Background(), previewRequest("Spirit"))
	clock.Advance(window)

	if o := receive(t, ch); !errors.Is(o.Err, boom) {
		t.Errorf("outcome error = %v, want boom", o.Err)
	}
	if hash, _ := cache.Last(); hash != "" {
		t.Errorf("failed render committed %s", hash)
	}
}

func TestPreviewHash(t *testing.T) {
	base := previewRequest("Spirit")
	h, err := PreviewHash(base)
	if err != nil {
		t.Fatal(err)
	}

	same := previewRequest("Spirit")
	same.TemplateID = " Heraldic "
	if got, _ := PreviewHash(same); got != h {
		t.Errorf("template id casing changed the hash")
	}

	renamed := previewRequest("Spirit")
	renamed.Crew.RowerNames = append([]string(nil), renamed.Crew.RowerNames...)
	renamed.Crew.RowerNames[3] = "Dot"
	if got, _ := PreviewHash(renamed); got == h {
		t.Errorf("a different rower produced the same hash")
	}

	withEmblem := previewRequest("Spirit")
	withEmblem.Emblem = &models.EmblemInput{Bytes: []byte{1, 2, 3}}
	copyEmblem := previewRequest("Spirit")
	copyEmblem.Emblem = &models.EmblemInput{Bytes: []byte{1, 2, 3}}
	a, _ := PreviewHash(withEmblem)
	b, _ := PreviewHash(copyEmblem)
	if a != b || a == h {
		t.Errorf("emblem identity hashing: %s vs %s (base %s)", a, b, h)
	}
}

func TestPreviewWithRenderService(t *testing.T) {
	clock := &fakeClock{}
	s := NewRenderService(nil, RenderConfig{})
	cache := NewPreviewCache(s.Render, nil, clock, window)

	ch := cache.Schedule(context.Background(), eightRequest())
	clock.Advance(window)

	o := receive(t, ch)
	if o.Err != nil || o.Result == nil || len(o.Result.Data) == 0 {
		t.Fatalf("outcome = %+v", o)
	}
	want, _ := PreviewHash(eightRequest())
	if o.Result.Hash != want {
		t.Errorf("hash = %s, want %s", o.Result.Hash, want)
	}
}

func TestPreviewSameRequestDuringRenderJoinsIt(t *testing.T) {
	clock := &fakeClock{}
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	r := &countingRender{}
	render := func(ctx context.Context, req models.RenderRequest) (*models.RenderResult, error) {
		once.Do(func() { close(started) })
		<-release
		return r.render(ctx, req)
	}
	cache := NewPreviewCache(render, nil, clock, window)
	ctx := context.Background()

	first := cache.Schedule(ctx, previewRequest("Spirit"))
	fired := make(chan struct{})
	go func() {
		clock.Advance(window)
		close(fired)
	}()
	<-started

	second := cache.Schedule(ctx, previewRequest("Spirit"))
	clock.Advance(window)
	close(release)
	<-fired

	a, b := <-first, <-second
	if a.Result == nil || b.Result == nil {
		t.Fatalf("outcomes = %+v, %+v, want results", a, b)
	}
	if a.Result != b.Result {
		t.Errorf("the request arriving mid-render got a separate result")
	}
	if n := r.calls(); n != 1 {
		t.Errorf("renderer invoked %d times, want 1", n)
	}
	if hash, _ := cache.Last(); hash != a.Result.Hash {
		t.Errorf("committed %s, want %s", hash, a.Result.Hash)
	}
}

func TestPreviewPresetEditIsNotServedFromCache(t *testing.T) {
	clock := &fakeClock{}
	r := &countingRender{}
	presets := &fakePresets{presets: map[string]*models.ClubPreset{
		"leander": {ID: "leander", ClubName: "Leander Club", PrimaryColor: "#E8457B", SecondaryColor: "white"},
	}}
	cache := NewPreviewCache(r.render, presets, clock, window)
	ctx := context.Background()

	req := previewRequest("Spirit")
	req.ClubPresetID = "leander"

	first := cache.Schedule(ctx, req)
	clock.Advance(window)
	if o := receive(t, first); o.Result == nil || o.Cached {
		t.Fatalf("first outcome = %+v, want a fresh render", o)
	}
	if o := receive(t, cache.Schedule(ctx, req)); !o.Cached {
		t.Errorf("unchanged preset outcome = %+v, want cached", o)
	}

	presets.presets["leander"] = &models.ClubPreset{ID: "leander", ClubName: "Leander Club", PrimaryColor: "#00A651", SecondaryColor: "white"}
	edited := cache.Schedule(ctx, req)
	clock.Advance(window)
	if o := receive(t, edited); o.Result == nil || o.Cached {
		t.Errorf("edited preset outcome = %+v, want a fresh render", o)
	}

	presets.presets["leander"] = &models.ClubPreset{ID: "leander", ClubName: "Leander Club", PrimaryColor: "#00A651", SecondaryColor: "white", EmblemDriveFileID: "hippo"}
	emblem := cache.Schedule(ctx, req)
	clock.Advance(window)
	if o := receive(t, emblem); o.Result == nil || o.Cached {
		t.Errorf("new preset emblem outcome = %+v, want a fresh render", o)
	}

	if n := r.calls(); n != 3 {
		t.Errorf("renderer invoked %d times, want 3", n)
	}
}
