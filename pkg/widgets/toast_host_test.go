package widgets_test

import (
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/toast"
	"github.com/go-mosaic/mosaic/pkg/uitest"
	"github.com/go-mosaic/mosaic/pkg/widgets"
)

// inertScheduler never fires, keeping toasts alive for the test's duration.
func inertScheduler(time.Duration, func()) func() {
	return func() {}
}

func TestToastHostRendersToasts(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	queue := toast.NewQueueWithScheduler(inertScheduler)
	tester.MustPumpWidget(t, widgets.ToastHost{Queue: queue})

	queue.Add(toast.Spec{Title: "Saved", Message: "Changes stored"})
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}

	if !tester.Find(uitest.ByText("Saved")).Exists() {
		t.Error("toast title should render")
	}
	if !tester.Find(uitest.ByText("Changes stored")).Exists() {
		t.Error("toast message should render")
	}
}

func TestToastHostEmptyRendersNothing(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	queue := toast.NewQueueWithScheduler(inertScheduler)
	tester.MustPumpWidget(t, widgets.ToastHost{Queue: queue})

	if tester.Find(uitest.ByType[widgets.Box]()).Exists() {
		t.Error("empty host should render nothing")
	}
}

func TestToastHostCloseButton(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	queue := toast.NewQueueWithScheduler(inertScheduler)
	tester.MustPumpWidget(t, widgets.ToastHost{Queue: queue})

	closed := false
	queue.Add(toast.Spec{Message: "bye", OnClose: func() { closed = true }})
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}

	tester.MustTap(t, uitest.ByText("×"))
	if !closed {
		t.Error("close button should dismiss through the queue")
	}
	if queue.Len() != 0 {
		t.Errorf("queue Len = %d, want 0", queue.Len())
	}
	if tester.Find(uitest.ByText("bye")).Exists() {
		t.Error("dismissed toast should leave the tree")
	}
}

func TestToastHostGroupsByPosition(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	queue := toast.NewQueueWithScheduler(inertScheduler)
	tester.MustPumpWidget(t, widgets.ToastHost{Queue: queue})

	queue.Add(toast.Spec{Message: "top", Position: toast.PositionTopRight})
	queue.Add(toast.Spec{Message: "bottom", Position: toast.PositionBottomLeft})
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}

	// Two occupied positions produce two stacks under the root Stack.
	if got := tester.Find(uitest.ByType[widgets.Column]()).Count(); got < 2 {
		t.Errorf("found %d position stacks, want at least 2", got)
	}
	if !tester.Find(uitest.ByText("top")).Exists() || !tester.Find(uitest.ByText("bottom")).Exists() {
		t.Error("both toasts should render")
	}
}

func TestToastHostExpiryThroughDispatch(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	sched := make(chan func(), 1)
	queue := toast.NewQueueWithScheduler(func(d time.Duration, fn func()) func() {
		sched <- fn
		return func() {}
	})
	tester.MustPumpWidget(t, widgets.ToastHost{Queue: queue, Dispatch: tester.Dispatch})

	queue.Add(toast.Spec{Message: "fleeting", Duration: time.Second})
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(uitest.ByText("fleeting")).Exists() {
		t.Fatal("toast should render before expiry")
	}

	(<-sched)() // fire the expiry timer
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	if tester.Find(uitest.ByText("fleeting")).Exists() {
		t.Error("expired toast should leave the tree")
	}
}
