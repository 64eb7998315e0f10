package widgets

import (
	"fmt"

	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/table"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// DataTable renders rows through a [table.Pipeline]: global search, header
// click sorting, pagination, and optional row selection.
//
// The widget owns sort, filter, page, and selection state internally; the
// caller supplies the rows and the pipeline:
//
//	pipeline := table.NewPipeline(columns, keyOf, language.English)
//	widgets.DataTable[User]{Rows: users, Pipeline: pipeline, PageSize: 10}
type DataTable[T any] struct {
	// Rows is the unfiltered data set.
	Rows []T

	// Pipeline computes the visible view. Required.
	Pipeline *table.Pipeline[T]

	// PageSize is rows per page. Zero disables pagination.
	PageSize int

	// Searchable shows the global search field.
	Searchable bool

	// Selectable shows per-row checkboxes and the header select-all.
	Selectable bool

	// OnSelectionChanged receives the selected row keys after every change.
	OnSelectionChanged func(keys []string)

	// OnRowTap is called with the row the user tapped.
	OnRowTap func(row T)

	// EmptyMessage is shown when no rows survive filtering.
	// Defaults to "No results.".
	EmptyMessage string
}

func (d DataTable[T]) CreateElement() core.Element {
	return core.NewStatefulElement(d, nil)
}

func (d DataTable[T]) Key() any {
	return nil
}

func (d DataTable[T]) CreateState() core.State {
	return &dataTableState[T]{}
}

type dataTableState[T any] struct {
	core.StateBase

	sort      table.SortState
	filter    table.FilterState
	page      table.PageState
	selection *table.Selection
}

func (s *dataTableState[T]) widget() DataTable[T] {
	return s.Element().Widget().(DataTable[T])
}

func (s *dataTableState[T]) InitState() {
	s.page = table.PageState{Page: 1, PageSize: s.widget().PageSize}
	s.selection = table.NewSelection()
}

// DidUpdateWidget resets to the first page when the data set changes size, so
// a shrink never leaves the cursor past the end.
func (s *dataTableState[T]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(DataTable[T])
	current := s.widget()
	s.page.PageSize = current.PageSize
	if len(old.Rows) != len(current.Rows) {
		s.page.Page = 1
	}
}

// handleSort advances the tri-state cycle for a header click.
func (s *dataTableState[T]) handleSort(column string) {
	s.SetState(func() {
		s.sort = s.sort.Cycle(column)
	})
}

func (s *dataTableState[T]) handleSearch(term string) {
	s.SetState(func() {
		s.filter = s.filter.WithSearch(term)
		s.page.Page = 1
	})
}

// handlePageChange moves to the requested page. Requests outside the valid
// range are ignored rather than clamped, so a disabled prev/next tap is a
// no-op.
func (s *dataTableState[T]) handlePageChange(page, totalPages int) {
	if page < 1 || page > totalPages {
		return
	}
	s.SetState(func() {
		s.page.Page = page
	})
}

func (s *dataTableState[T]) toggleRow(key string) {
	s.SetState(func() {
		s.selection.Toggle(key)
	})
	s.notifySelection()
}

// toggleAll selects or clears the visible page only, never the whole
// filtered set.
func (s *dataTableState[T]) toggleAll(visibleKeys []string) {
	all := s.selection.AllSelected(visibleKeys)
	s.SetState(func() {
		s.selection.SetAll(visibleKeys, !all)
	})
	s.notifySelection()
}

func (s *dataTableState[T]) notifySelection() {
	if cb := s.widget().OnSelectionChanged; cb != nil {
		cb(s.selection.Keys())
	}
}

func (s *dataTableState[T]) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	if w.Pipeline == nil {
		return nil
	}

	t := theme.ThemeOf(ctx)
	tableTheme := t.TableThemeOf()

	view := w.Pipeline.Compute(w.Rows, s.sort, s.filter, s.page)
	totalPages := s.page.TotalPages(view.TotalFiltered)

	visibleKeys := make([]string, 0, len(view.VisibleRows))
	for _, row := range view.VisibleRows {
		visibleKeys = append(visibleKeys, w.Pipeline.KeyOf(row))
	}

	var sections []core.Widget
	if w.Searchable {
		sections = append(sections, TextField{
			Value:       s.filter.Search,
			Placeholder: "Search...",
			OnChanged:   s.handleSearch,
		})
	}

	sections = append(sections, s.headerRow(w, t, tableTheme, visibleKeys))

	if len(view.VisibleRows) == 0 {
		message := w.EmptyMessage
		if message == "" {
			message = "No results."
		}
		sections = append(sections, Box{
			Padding:     tableTheme.CellPadding,
			ChildWidget: Text{Content: message, Style: t.TextTheme.Body},
		})
	} else {
		for i, row := range view.VisibleRows {
			sections = append(sections, s.bodyRow(w, t, tableTheme, row, i))
		}
	}

	if w.Pipeline.Paginate && w.PageSize > 0 {
		sections = append(sections, s.pagination(view.Page, totalPages, t))
	}

	return Column{ChildrenWidgets: sections}
}

func (s *dataTableState[T]) headerRow(w DataTable[T], t *theme.ThemeData, tableTheme theme.TableThemeData, visibleKeys []string) core.Widget {
	headerStyle := t.TextTheme.Label.Merge(graphics.TextStyle{
		Color:      tableTheme.HeaderForeground,
		FontWeight: graphics.FontWeightSemiBold,
	})

	var cells []core.Widget
	if w.Selectable {
		cells = append(cells, Checkbox{
			Value:     len(visibleKeys) > 0 && s.selection.AllSelected(visibleKeys),
			OnChanged: func(bool) { s.toggleAll(visibleKeys) },
		})
	}
	for _, col := range w.Pipeline.Columns {
		label := col.Title
		if label == "" {
			label = col.Key
		}
		if s.sort.Column == col.Key {
			switch s.sort.Direction {
			case table.SortAsc:
				label += " ↑"
			case table.SortDesc:
				label += " ↓"
			}
		}
		cell := core.Widget(Text{Content: label, Style: headerStyle})
		if col.Sortable {
			key := col.Key
			cell = GestureDetector{
				OnTap:       func() { s.handleSort(key) },
				ChildWidget: cell,
			}
		}
		cells = append(cells, Box{Padding: tableTheme.CellPadding, Width: col.Width, ChildWidget: cell})
	}

	return Box{
		Color:       tableTheme.HeaderBackground,
		ChildWidget: Row{ChildrenWidgets: cells},
	}
}

func (s *dataTableState[T]) bodyRow(w DataTable[T], t *theme.ThemeData, tableTheme theme.TableThemeData, row T, index int) core.Widget {
	key := w.Pipeline.KeyOf(row)
	selected := s.selection.Has(key)

	background := tableTheme.RowBackground
	if index%2 == 1 {
		background = tableTheme.StripeBackground
	}
	if selected {
		background = tableTheme.SelectedBackground
	}

	var cells []core.Widget
	if w.Selectable {
		cells = append(cells, Checkbox{
			Value:     selected,
			OnChanged: func(bool) { s.toggleRow(key) },
		})
	}
	for _, col := range w.Pipeline.Columns {
		value := col.Cell(row)
		var cell core.Widget
		if value.IsElement() {
			cell = value.Element()
		} else {
			cell = Text{Content: value.Text(), Style: t.TextTheme.Body}
		}
		cells = append(cells, Box{Padding: tableTheme.CellPadding, Width: col.Width, ChildWidget: cell})
	}

	var rowTap func()
	if w.OnRowTap != nil {
		rowValue := row
		rowTap = func() { w.OnRowTap(rowValue) }
	}

	return GestureDetector{
		OnTap: rowTap,
		ChildWidget: Box{
			Color:       background,
			BorderColor: tableTheme.BorderColor,
			BorderWidth: 1,
			ChildWidget: Row{ChildrenWidgets: cells},
		},
	}
}

func (s *dataTableState[T]) pagination(page, totalPages int, t *theme.ThemeData) core.Widget {
	prev := ButtonOf("Previous", func() { s.handlePageChange(page-1, totalPages) }).
		WithVariant(theme.ButtonOutline).
		WithSize(theme.ButtonSizeSm).
		WithDisabled(page <= 1)
	next := ButtonOf("Next", func() { s.handlePageChange(page+1, totalPages) }).
		WithVariant(theme.ButtonOutline).
		WithSize(theme.ButtonSizeSm).
		WithDisabled(page >= totalPages)

	return Row{
		Spacing: 8,
		ChildrenWidgets: []core.Widget{
			prev,
			Text{
				Content: fmt.Sprintf("Page %d of %d", page, totalPages),
				Style:   t.TextTheme.Caption,
			},
			next,
		},
	}
}
