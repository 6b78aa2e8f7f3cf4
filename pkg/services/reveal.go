package services

import (
	"sync"
	"time"

	"github.com/navarrastar/leadpage/pkg/clock"
)

// IntersectionEntry is one viewport report for an observed element.
type IntersectionEntry struct {
	IsIntersecting    bool
	IntersectionRatio float64
}

// ObserveOptions mirrors the observer settings a viewport understands.
type ObserveOptions struct {
	Threshold  float64
	RootMargin string
}

// Viewport attaches intersection observers to elements.
type Viewport interface {
	Observe(element string, opts ObserveOptions, cb func(IntersectionEntry)) Observation
}

// Observation detaches an observer.
type Observation interface {
	Disconnect()
}

// RevealOptions configures a Reveal.
type RevealOptions struct {
	Threshold  float64
	RootMargin string
	Delay      time.Duration
}

// DefaultRevealOptions returns threshold 0.1, root margin "0px" and no delay.
func DefaultRevealOptions() RevealOptions {
	return RevealOptions{Threshold: 0.1, RootMargin: "0px"}
}

// RevealOption adjusts RevealOptions.
type RevealOption func(*RevealOptions)

func WithThreshold(t float64) RevealOption {
	return func(o *RevealOptions) {
		switch {
		case t < 0:
			t = 0
		case t > 1:
			t = 1
		}
		o.Threshold = t
	}
}

func WithRootMargin(m string) RevealOption {
	return func(o *RevealOptions) { o.RootMargin = m }
}

func WithDelay(d time.Duration) RevealOption {
	return func(o *RevealOptions) {
		if d < 0 {
			d = 0
		}
		o.Delay = d
	}
}

// NewRevealOptions applies opts over the defaults.
func NewRevealOptions(opts ...RevealOption) RevealOptions {
	o := DefaultRevealOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// RevealState is the latch lifecycle.
type RevealState int

const (
	RevealIdle RevealState = iota
	RevealObserving
	RevealPending
	RevealLatched
	RevealDisposed
)

func (s RevealState) String() string {
	switch s {
	case RevealIdle:
		return "idle"
	case RevealObserving:
		return "observing"
	case RevealPending:
		return "pending"
	case RevealLatched:
		return "latched"
	case RevealDisposed:
		return "disposed"
	}
	return "unknown"
}

// Reveal is a one-shot visibility latch: it turns visible the first time its
// element crosses the threshold (after Delay) and never turns back.
type Reveal struct {
	viewport Viewport
	clock    clock.Clock
	opts     RevealOptions

	mu          sync.Mutex
	state       RevealState
	observation Observation
	pending     clock.Timer
	onVisible   func()
}

// NewReveal creates an unattached latch.
func NewReveal(viewport Viewport, clk clock.Clock, opts ...RevealOption) *Reveal {
	return &Reveal{
		viewport: viewport,
		clock:    clk,
		opts:     NewRevealOptions(opts...),
	}
}

// Options returns the effective options.
func (r *Reveal) Options() RevealOptions {
	return r.opts
}

// Mount starts observing element. onVisible, if not nil, runs once when the
// latch flips. Mounting twice is a no-op.
func (r *Reveal) Mount(element string, onVisible func()) {
	r.mu.Lock()
	if r.state != RevealIdle {
		r.mu.Unlock()
		return
	}
	r.state = RevealObserving
	r.onVisible = onVisible
	r.mu.Unlock()

	obs := r.viewport.Observe(element, ObserveOptions{
		Threshold:  r.opts.Threshold,
		RootMargin: r.opts.RootMargin,
	}, r.handle)

	r.mu.Lock()
	if r.state == RevealObserving || r.state == RevealPending {
		r.observation = obs
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	// Latched or disposed while Observe was still attaching.
	obs.Disconnect()
}

func (r *Reveal) handle(entry IntersectionEntry) {
	if !entry.IsIntersecting || entry.IntersectionRatio < r.opts.Threshold {
		return
	}

	r.mu.Lock()
	if r.state != RevealObserving {
		r.mu.Unlock()
		return
	}
	if r.opts.Delay > 0 {
		r.state = RevealPending
		r.pending = r.clock.AfterFunc(r.opts.Delay, r.latch)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.latch()
}

func (r *Reveal) latch() {
	r.mu.Lock()
	if r.state != RevealObserving && r.state != RevealPending {
		r.mu.Unlock()
		return
	}
	r.state = RevealLatched
	r.pending = nil
	obs := r.observation
	r.observation = nil
	onVisible := r.onVisible
	r.mu.Unlock()

	if obs != nil {
		obs.Disconnect()
	}
	if onVisible != nil {
		onVisible()
	}
}

// Dispose detaches the observer and cancels a pending latch.
func (r *Reveal) Dispose() {
	r.mu.Lock()
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
	obs := r.observation
	r.observation = nil
	if r.state != RevealLatched {
		r.state = RevealDisposed
	}
	r.mu.Unlock()

	if obs != nil {
		obs.Disconnect()
	}
}

// Visible reports whether the latch has flipped.
func (r *Reveal) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == RevealLatched
}

func (r *Reveal) State() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
