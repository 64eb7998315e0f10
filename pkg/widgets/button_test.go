package widgets_test

import (
	"testing"

	"github.com/go-mosaic/mosaic/pkg/uitest"
	"github.com/go-mosaic/mosaic/pkg/widgets"
)

func TestButtonTap(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	taps := 0
	tester.MustPumpWidget(t, widgets.ButtonOf("Save", func() { taps++ }))

	tester.MustTap(t, uitest.ByText("Save"))
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestButtonDisabledDoesNotFire(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	taps := 0
	tester.MustPumpWidget(t, widgets.ButtonOf("Save", func() { taps++ }).WithDisabled(true))

	if err := tester.Tap(uitest.ByText("Save")); err == nil {
		t.Error("expected tap on disabled button to fail")
	}
	if taps != 0 {
		t.Errorf("taps = %d, want 0", taps)
	}
}

func TestButtonLoadingShowsSpinner(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	taps := 0
	tester.MustPumpWidget(t, widgets.Button{Label: "Save", OnTap: func() { taps++ }, Loading: true})

	if !tester.Find(uitest.ByType[widgets.Spinner]()).Exists() {
		t.Error("loading button should render a spinner")
	}
	if err := tester.Tap(uitest.ByText("Save")); err == nil {
		t.Error("loading button should not be tappable")
	}
}

func TestCheckboxToggle(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var got *bool
	tester.MustPumpWidget(t, widgets.Checkbox{
		Value:     false,
		Label:     "Agree",
		OnChanged: func(v bool) { got = &v },
	})

	tester.MustTap(t, uitest.ByText("Agree"))
	if got == nil || !*got {
		t.Error("tapping an unchecked checkbox should report true")
	}

	// Controlled widget: a checked box reports false on the next tap.
	tester.MustPumpWidget(t, widgets.Checkbox{
		Value:     true,
		Label:     "Agree",
		OnChanged: func(v bool) { got = &v },
	})
	tester.MustTap(t, uitest.ByText("Agree"))
	if *got {
		t.Error("tapping a checked checkbox should report false")
	}
}

func TestCheckboxDisabled(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	fired := false
	tester.MustPumpWidget(t, widgets.Checkbox{
		Label:     "Agree",
		Disabled:  true,
		OnChanged: func(bool) { fired = true },
	})

	if err := tester.Tap(uitest.ByText("Agree")); err == nil {
		t.Error("expected tap on disabled checkbox to fail")
	}
	if fired {
		t.Error("disabled checkbox fired OnChanged")
	}
}

func TestTabBarSelection(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	selected := -1
	tester.MustPumpWidget(t, widgets.TabBar{
		Tabs:        []string{"Overview", "Settings"},
		ActiveIndex: 0,
		OnChanged:   func(i int) { selected = i },
	})

	tester.MustTap(t, uitest.ByText("Settings"))
	if selected != 1 {
		t.Errorf("selected = %d, want 1", selected)
	}
}

func TestTabBarActiveTabNotReselectable(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	fired := false
	tester.MustPumpWidget(t, widgets.TabBar{
		Tabs:        []string{"Overview", "Settings"},
		ActiveIndex: 0,
		OnChanged:   func(int) { fired = true },
	})

	if err := tester.Tap(uitest.ByText("Overview")); err == nil && fired {
		t.Error("tapping the active tab should not refire OnChanged")
	}
}

func TestBadgeRendersLabel(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.MustPumpWidget(t, widgets.Badge{Label: "Active"})

	if !tester.Find(uitest.ByText("Active")).Exists() {
		t.Error("badge should render its label")
	}
}

func TestTextFieldInput(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var typed, submitted string
	tester.MustPumpWidget(t, widgets.TextField{
		Placeholder: "Name",
		OnChanged:   func(v string) { typed = v },
		OnSubmit:    func(v string) { submitted = v },
	})

	field := uitest.ByType[widgets.TextField]()
	tester.MustEnterText(t, field, "hello")
	if typed != "hello" {
		t.Errorf("typed = %q, want hello", typed)
	}

	tester.MustPumpWidget(t, widgets.TextField{
		Value:     "hello",
		OnSubmit:  func(v string) { submitted = v },
		OnChanged: func(string) {},
	})
	if err := tester.SubmitText(field); err != nil {
		t.Fatal(err)
	}
	if submitted != "hello" {
		t.Errorf("submitted = %q, want hello", submitted)
	}
}

func TestTextFieldShowsError(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.MustPumpWidget(t, widgets.TextField{Value: "x", ErrorText: "Required"})

	if !tester.Find(uitest.ByText("Required")).Exists() {
		t.Error("error text should render")
	}
}

func TestModalClosedRendersNothing(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.MustPumpWidget(t, widgets.Modal{
		Open:        false,
		Title:       "Confirm",
		ChildWidget: widgets.Text{Content: "body"},
	})

	if tester.Find(uitest.ByText("Confirm")).Exists() {
		t.Error("closed modal should render nothing")
	}
}

func TestModalBarrierDismiss(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	closed := false
	modal := widgets.ModalOf("Confirm", widgets.Text{Content: "body"}, func() { closed = true })
	modal.Open = true
	tester.MustPumpWidget(t, modal)

	if !tester.Find(uitest.ByText("Confirm")).Exists() {
		t.Fatal("open modal should render its title")
	}
	tester.MustTap(t, uitest.ByType[widgets.GestureDetector]())
	if !closed {
		t.Error("tapping the barrier should invoke OnClose")
	}
}
