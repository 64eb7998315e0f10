// Package animation provides the animation primitives widgets forward to the
// host engine: controllers, easing curves, tweens, and transition and spring
// parameter bundles.
//
// # Core Components
//
//   - [Controller]: drives a value from 0.0 to 1.0 over a duration with an
//     easing curve, reporting status transitions to listeners.
//   - [Tween]: maps the controller's 0-1 value onto any value range or type.
//   - [TransitionSpec]: a declarative enter/exit description (fade, slide,
//     zoom, flip) that widgets hand to the host compositor unchanged.
//   - [Spring]: physics parameters (stiffness, damping, mass) for
//     gesture-driven motion; the solver itself lives in the host engine.
//
// # Basic Usage
//
//	// In InitState
//	s.ctrl = animation.NewController(300 * time.Millisecond)
//	s.ctrl.Curve = animation.EaseInOut
//	s.ctrl.AddListener(func() { s.SetState(nil) })
//	s.ctrl.Forward()
//
//	// In Dispose
//	s.ctrl.Dispose()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [Controller]. Most code
// should use Controller directly rather than Ticker. Tickers are driven by
// the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
