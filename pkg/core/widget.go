package core

// Widget is an immutable description of part of the UI.
//
// Widgets are lightweight configuration objects that can be created frequently
// without performance concerns. The framework instantiates an Element for each
// widget placed in the tree.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element

	// Key identifies the widget for reconciliation. Widgets of the same type
	// with equal keys update in place; otherwise the old element is unmounted.
	// Return nil for no key.
	Key() any
}

// StatelessWidget builds its subtree purely from its own configuration.
type StatelessWidget interface {
	Widget

	// Build describes the subtree below this widget.
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state that outlives rebuilds.
type StatefulWidget interface {
	Widget

	// CreateState creates the mutable state for this widget.
	CreateState() State
}

// State holds mutable data for a StatefulWidget and builds its subtree.
//
// Embed [StateBase] to get default implementations of everything except Build.
type State interface {
	// SetElement stores the hosting element. Called by the framework on mount.
	SetElement(element *StatefulElement)

	// InitState is called once after the element is mounted.
	InitState()

	// Build describes the subtree below this widget.
	Build(ctx BuildContext) Widget

	// DidUpdateWidget is called when the widget configuration changes.
	DidUpdateWidget(oldWidget StatefulWidget)

	// Dispose releases resources. Called when the element is unmounted.
	Dispose()
}

// BuildContext is a handle to the location of a widget in the element tree.
// Elements implement it; Build methods receive their own element.
type BuildContext interface {
	// Widget returns the widget hosted at this location.
	Widget() Widget

	// FindAncestor walks up the tree and returns the first element matching
	// the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular location in the tree.
type Element interface {
	BuildContext

	// Mount attaches the element below parent and performs the first build.
	Mount(parent Element, slot any)

	// Update replaces the widget configuration and schedules a rebuild.
	Update(newWidget Widget)

	// Unmount removes the element and its subtree from the tree.
	Unmount()

	// RebuildIfNeeded rebuilds the subtree if the element is dirty.
	RebuildIfNeeded()

	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)

	// Depth is the distance from the root, used to order rebuilds.
	Depth() int

	// MarkNeedsBuild flags the element dirty and schedules it with the owner.
	MarkNeedsBuild()
}

// Listenable is anything that notifies registered listeners of changes.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(fn func()) func()
}

// Disposable is anything that must be released when its owner goes away.
type Disposable interface {
	Dispose()
}
