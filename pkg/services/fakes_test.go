package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type trackedCall struct {
	kind  string
	name  string
	value float64
	attrs map[string]any
}

type fakeTracker struct {
	mu    sync.Mutex
	calls []trackedCall
}

func (t *fakeTracker) TrackEvent(_ context.Context, name string, attrs map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, trackedCall{kind: "event", name: name, attrs: attrs})
}

func (t *fakeTracker) TrackConversion(_ context.Context, action string, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, trackedCall{kind: "conversion", name: action, value: value})
}

func (t *fakeTracker) TrackPageView(_ context.Context, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, trackedCall{kind: "pageview", name: path})
}

func (t *fakeTracker) Close() {}

func (t *fakeTracker) Calls() []trackedCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]trackedCall(nil), t.calls...)
}

type fakeOpener struct {
	links []string
}

func (o *fakeOpener) Open(link string) {
	o.links = append(o.links, link)
}

type fakeObservation struct {
	vp           *fakeViewport
	element      string
	cb           func(IntersectionEntry)
	disconnected bool
}

func (o *fakeObservation) Disconnect() {
	o.vp.mu.Lock()
	defer o.vp.mu.Unlock()
	o.disconnected = true
}

// fakeViewport records observers and lets tests push intersection entries.
type fakeViewport struct {
	mu           sync.Mutex
	observations []*fakeObservation
	lastOpts     ObserveOptions
}

func (v *fakeViewport) Observe(element string, opts ObserveOptions, cb func(IntersectionEntry)) Observation {
	v.mu.Lock()
	defer v.mu.Unlock()
	o := &fakeObservation{vp: v, element: element, cb: cb}
	v.observations = append(v.observations, o)
	v.lastOpts = opts
	return o
}

// Emit delivers entry to every live observer of element.
func (v *fakeViewport) Emit(element string, entry IntersectionEntry) {
	v.mu.Lock()
	var live []*fakeObservation
	for _, o := range v.observations {
		if o.element == element && !o.disconnected {
			live = append(live, o)
		}
	}
	v.mu.Unlock()

	for _, o := range live {
		o.cb(entry)
	}
}

func (v *fakeViewport) Live() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, o := range v.observations {
		if !o.disconnected {
			n++
		}
	}
	return n
}

func (v *fakeViewport) Attached() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.observations)
}
