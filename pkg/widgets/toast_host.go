package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
	"github.com/go-mosaic/mosaic/pkg/toast"
)

// ToastHost renders every live toast from a queue, grouped into six corner
// and edge stacks. Mount one near the root of the tree:
//
//	queue := toast.NewQueue()
//	...
//	widgets.ToastHost{Queue: queue}
//
// The host subscribes to the queue on mount and rebuilds whenever toasts are
// added, updated, or expire.
type ToastHost struct {
	// Queue supplies the toasts. Required.
	Queue *toast.Queue

	// Dispatch, when set, is used to move queue notifications onto the UI
	// thread before rebuilding. Timer expiry fires on a runtime goroutine,
	// so hosts embedded in a real frame loop must set this.
	Dispatch func(fn func())
}

func (h ToastHost) CreateElement() core.Element {
	return core.NewStatefulElement(h, nil)
}

func (h ToastHost) Key() any {
	return nil
}

func (h ToastHost) CreateState() core.State {
	return &toastHostState{}
}

type toastHostState struct {
	core.StateBase
}

func (s *toastHostState) InitState() {
	host := s.Element().Widget().(ToastHost)
	if host.Queue == nil {
		return
	}
	host.Queue.OnChange = func() {
		notify := func() {
			if !s.IsDisposed() {
				s.SetState(func() {})
			}
		}
		if host.Dispatch != nil {
			host.Dispatch(notify)
			return
		}
		notify()
	}
	s.OnDispose(func() {
		host.Queue.OnChange = nil
	})
}

func (s *toastHostState) Build(ctx core.BuildContext) core.Widget {
	host := s.Element().Widget().(ToastHost)
	if host.Queue == nil {
		return nil
	}

	t := theme.ThemeOf(ctx)
	toastTheme := t.ToastThemeOf()

	buckets := host.Queue.ByPosition()
	var stacks []core.Widget
	for _, pos := range []toast.Position{
		toast.PositionTopLeft,
		toast.PositionTopCenter,
		toast.PositionTopRight,
		toast.PositionBottomLeft,
		toast.PositionBottomCenter,
		toast.PositionBottomRight,
	} {
		group := buckets[pos]
		if len(group) == 0 {
			continue
		}
		cards := make([]core.Widget, 0, len(group))
		for _, item := range group {
			cards = append(cards, s.toastCard(host.Queue, item, t, toastTheme))
		}
		stacks = append(stacks, Column{
			Spacing:         8,
			ChildrenWidgets: cards,
		})
	}

	if len(stacks) == 0 {
		return nil
	}
	return Stack{ChildrenWidgets: stacks}
}

func (s *toastHostState) toastCard(queue *toast.Queue, item toast.Toast, t *theme.ThemeData, toastTheme theme.ToastThemeData) core.Widget {
	style := toastTheme.VariantOf(item.Type)

	var lines []core.Widget
	if item.Title != "" {
		lines = append(lines, Text{
			Content: item.Title,
			Style: t.TextTheme.Label.Merge(graphics.TextStyle{
				Color:      style.Foreground,
				FontWeight: graphics.FontWeightSemiBold,
			}),
		})
	}
	if item.Message != "" {
		lines = append(lines, Text{
			Content: item.Message,
			Style:   t.TextTheme.Body.Merge(graphics.TextStyle{Color: style.Foreground}),
		})
	}

	id := item.ID
	return Box{
		Color:        style.Background,
		BorderColor:  style.Accent,
		BorderWidth:  1,
		BorderRadius: toastTheme.BorderRadius,
		Padding:      toastTheme.Padding,
		ChildWidget: Row{
			Spacing: 12,
			ChildrenWidgets: []core.Widget{
				Column{Spacing: 4, ChildrenWidgets: lines},
				GestureDetector{
					OnTap: func() { queue.Remove(id) },
					ChildWidget: Text{
						Content: "×",
						Style:   t.TextTheme.Label.Merge(graphics.TextStyle{Color: style.Foreground}),
					},
				},
			},
		},
	}
}
