package services

import (
	"sync"
	"time"

	"github.com/navarrastar/leadpage/pkg/clock"
)

// DefaultCountdownWindow is the rolling offer deadline.
const DefaultCountdownWindow = 7 * 24 * time.Hour

const countdownInterval = time.Second

// Remaining is a countdown broken into display units.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Breakdown splits d into whole days, hours, minutes and seconds, truncating
// below the millisecond. Negative durations yield zero.
func Breakdown(d time.Duration) Remaining {
	ms := d.Milliseconds()
	if ms <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    int(ms / 86_400_000),
		Hours:   int(ms/3_600_000) % 24,
		Minutes: int(ms/60_000) % 60,
		Seconds: int(ms/1000) % 60,
	}
}

// Countdown tracks a deadline that renews itself by window whenever it
// expires.
type Countdown struct {
	clock  clock.Clock
	window time.Duration

	mu      sync.Mutex
	target  time.Time
	current Remaining
	timer   clock.Timer
	onTick  func(Remaining)
	running bool
}

// NewCountdown starts a deadline window from the clock's current time.
func NewCountdown(clk clock.Clock, window time.Duration) *Countdown {
	if window <= 0 {
		window = DefaultCountdownWindow
	}
	c := &Countdown{
		clock:  clk,
		window: window,
		target: clk.Now().Add(window),
	}
	c.current = Breakdown(window)
	return c
}

// Tick recomputes the remaining time against now. When the deadline has
// passed it moves to now+window and reports the full window.
func (c *Countdown) Tick(now time.Time) Remaining {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickLocked(now)
}

func (c *Countdown) tickLocked(now time.Time) Remaining {
	delta := c.target.Sub(now)
	if delta.Milliseconds() <= 0 {
		c.target = now.Add(c.window)
		delta = c.window
	}
	c.current = Breakdown(delta)
	return c.current
}

// Start computes the first value immediately and then once per second,
// passing each result to onTick. onTick may be nil.
func (c *Countdown) Start(onTick func(Remaining)) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.onTick = onTick
	r := c.tickLocked(c.clock.Now())
	c.timer = c.clock.AfterFunc(countdownInterval, c.step)
	c.mu.Unlock()

	if onTick != nil {
		onTick(r)
	}
}

// step runs one tick and schedules the next only after onTick returns, so
// callbacks never overlap.
func (c *Countdown) step() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	r := c.tickLocked(c.clock.Now())
	onTick := c.onTick
	c.mu.Unlock()

	if onTick != nil {
		onTick(r)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.timer = c.clock.AfterFunc(countdownInterval, c.step)
	}
}

// Stop cancels the repeating timer. Tick keeps working afterwards.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Target returns the current deadline.
func (c *Countdown) Target() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Current returns the value computed by the most recent tick.
func (c *Countdown) Current() Remaining {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
