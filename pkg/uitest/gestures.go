package uitest

import (
	"fmt"
	"testing"

	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/widgets"
)

// Tap simulates a tap on the first element the finder matches.
//
// The target may be the GestureDetector itself or any widget inside one;
// the nearest detector (at the match, below it, or above it) receives the
// tap. Detectors without an OnTap handler are treated as not found.
func (t *Tester) Tap(finder Finder) error {
	element := t.Find(finder).FirstOrNil()
	if element == nil {
		return fmt.Errorf("Tap: no element matches %s", finder.Description())
	}
	detector, ok := nearestGesture(element)
	if !ok || detector.OnTap == nil {
		return fmt.Errorf("Tap: no tappable GestureDetector near %s", finder.Description())
	}
	detector.OnTap()
	return t.Pump()
}

// MustTap taps and fails the test on error.
func (t *Tester) MustTap(tb testing.TB, finder Finder) {
	tb.Helper()
	if err := t.Tap(finder); err != nil {
		tb.Fatal(err)
	}
}

// HoverEnter simulates the pointer entering the first matched element's
// nearest GestureDetector.
func (t *Tester) HoverEnter(finder Finder) error {
	return t.hover(finder, true)
}

// HoverExit simulates the pointer leaving the first matched element's
// nearest GestureDetector.
func (t *Tester) HoverExit(finder Finder) error {
	return t.hover(finder, false)
}

func (t *Tester) hover(finder Finder, enter bool) error {
	element := t.Find(finder).FirstOrNil()
	if element == nil {
		return fmt.Errorf("Hover: no element matches %s", finder.Description())
	}
	detector, ok := nearestGesture(element)
	if !ok {
		return fmt.Errorf("Hover: no GestureDetector near %s", finder.Description())
	}
	if enter {
		if detector.OnHoverEnter != nil {
			detector.OnHoverEnter()
		}
	} else {
		if detector.OnHoverExit != nil {
			detector.OnHoverExit()
		}
	}
	return t.Pump()
}

// EnterText types into the first matched TextField.
func (t *Tester) EnterText(finder Finder, text string) error {
	state, err := fieldState(t, finder)
	if err != nil {
		return err
	}
	state.EnterText(text)
	return t.Pump()
}

// MustEnterText types and fails the test on error.
func (t *Tester) MustEnterText(tb testing.TB, finder Finder, text string) {
	tb.Helper()
	if err := t.EnterText(finder, text); err != nil {
		tb.Fatal(err)
	}
}

// SubmitText submits the first matched TextField, as if the user pressed
// enter.
func (t *Tester) SubmitText(finder Finder) error {
	state, err := fieldState(t, finder)
	if err != nil {
		return err
	}
	state.Submit()
	return t.Pump()
}

// textEntry is the editing surface a text field's state exposes to tests.
type textEntry interface {
	EnterText(text string)
	Submit()
}

func fieldState(t *Tester, finder Finder) (textEntry, error) {
	element := t.Find(finder).FirstOrNil()
	if element == nil {
		return nil, fmt.Errorf("EnterText: no element matches %s", finder.Description())
	}
	stateful, ok := element.(*core.StatefulElement)
	if !ok {
		return nil, fmt.Errorf("EnterText: %s is not a stateful element", finder.Description())
	}
	entry, ok := stateful.State().(textEntry)
	if !ok {
		return nil, fmt.Errorf("EnterText: %s does not accept text input", finder.Description())
	}
	return entry, nil
}

// nearestGesture finds the GestureDetector at the element, in its subtree,
// or among its ancestors, in that order.
func nearestGesture(element core.Element) (widgets.GestureDetector, bool) {
	if d, ok := element.Widget().(widgets.GestureDetector); ok {
		return d, true
	}

	var found widgets.GestureDetector
	var hit bool
	walkTree(element, func(e core.Element) bool {
		if d, ok := e.Widget().(widgets.GestureDetector); ok {
			found = d
			hit = true
			return false
		}
		return true
	})
	if hit {
		return found, true
	}

	ancestor := element.FindAncestor(func(e core.Element) bool {
		_, ok := e.Widget().(widgets.GestureDetector)
		return ok
	})
	if ancestor != nil {
		d, _ := ancestor.Widget().(widgets.GestureDetector)
		return d, true
	}
	return widgets.GestureDetector{}, false
}
