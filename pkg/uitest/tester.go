package uitest

import (
	"errors"
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/animation"
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// Tester mounts widget trees in isolation and drives build frames with a
// fake animation clock. Construct with [NewTesterWithT] so global clock
// state is restored when the test ends.
type Tester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	clock      *FakeClock
	prevClock  animation.Clock
	theme      *theme.ThemeData
	dispatches []func()
}

// NewTester creates a tester with the default light theme.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		buildOwner: core.NewBuildOwner(),
		clock:      clk,
		theme:      theme.DefaultLightTheme(),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock. Must be
// called if not using NewTesterWithT.
func (t *Tester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	animation.SetClock(t.prevClock)
}

// SetTheme replaces the theme data. Must be called before PumpWidget.
func (t *Tester) SetTheme(td *theme.ThemeData) {
	t.theme = td
}

// Clock returns the fake clock for advancing animation time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// PumpWidget mounts (or remounts) a widget under the test theme and runs
// one frame.
func (t *Tester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}

	wrapped := theme.Theme{
		Data:        t.theme,
		ChildWidget: widget,
	}
	t.root = core.MountRoot(wrapped, t.buildOwner)
	return t.Pump()
}

// MustPumpWidget mounts a widget and fails the test on error.
func (t *Tester) MustPumpWidget(tb testing.TB, widget core.Widget) {
	tb.Helper()
	if err := t.PumpWidget(widget); err != nil {
		tb.Fatalf("PumpWidget: %v", err)
	}
}

// Pump runs a single frame cycle: dispatches, tickers, build.
func (t *Tester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	animation.StepTickers()
	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle runs frames until the framework is idle or the timeout is
// reached. Each frame advances the fake clock by 16ms.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

func (t *Tester) needsWork() bool {
	return t.buildOwner.NeedsWork() ||
		animation.HasActiveTickers() ||
		len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame. Pass it to widgets that
// take a dispatch function, such as ToastHost.
func (t *Tester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *Tester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
