package table

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirection is one leg of the tri-state sort cycle.
type SortDirection int

const (
	// SortNone means the column is unsorted (insertion order).
	SortNone SortDirection = iota
	// SortAsc sorts ascending.
	SortAsc
	// SortDesc sorts descending.
	SortDesc
)

// String returns the direction name.
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// SortState is the active sort: at most one column at a time.
type SortState struct {
	// Column is the key of the sorted column, or "" for none.
	Column string
	// Direction of the sort. SortNone disables sorting regardless of Column.
	Direction SortDirection
}

// Cycle advances the sort state for a header click on the given column.
//
// Clicking the active column steps asc → desc → none. Clicking a different
// column restarts at asc.
func (s SortState) Cycle(column string) SortState {
	if s.Column != column {
		return SortState{Column: column, Direction: SortAsc}
	}
	switch s.Direction {
	case SortAsc:
		return SortState{Column: column, Direction: SortDesc}
	case SortDesc:
		return SortState{}
	default:
		return SortState{Column: column, Direction: SortAsc}
	}
}

// FilterState holds the global search term and the per-column filters.
// All matching is case-insensitive substring over stringified cell values.
type FilterState struct {
	// Search matches a row when any searchable column contains it.
	Search string

	// ColumnFilters are ANDed: a row must match every active entry.
	// Keys are column keys; empty values are ignored.
	ColumnFilters map[string]string
}

// WithSearch returns a copy of the state with the global search term replaced.
func (f FilterState) WithSearch(term string) FilterState {
	f.Search = term
	return f
}

// WithColumnFilter returns a copy of the state with one column filter set.
// An empty term removes the filter.
func (f FilterState) WithColumnFilter(column, term string) FilterState {
	filters := make(map[string]string, len(f.ColumnFilters)+1)
	for k, v := range f.ColumnFilters {
		filters[k] = v
	}
	if term == "" {
		delete(filters, column)
	} else {
		filters[column] = term
	}
	f.ColumnFilters = filters
	return f
}

// active reports whether any filtering is in effect.
func (f FilterState) active() bool {
	if strings.TrimSpace(f.Search) != "" {
		return true
	}
	for _, term := range f.ColumnFilters {
		if term != "" {
			return true
		}
	}
	return false
}

// PageState is the pagination cursor. Page is 1-based.
type PageState struct {
	Page     int
	PageSize int
}

// TotalPages returns the page count for a filtered row total.
// Always at least 1 so an empty table still has a current page.
func (p PageState) TotalPages(totalFiltered int) int {
	if p.PageSize <= 0 {
		return 1
	}
	pages := (totalFiltered + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp returns a copy with Page forced into [1, TotalPages].
func (p PageState) Clamp(totalFiltered int) PageState {
	total := p.TotalPages(totalFiltered)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > total {
		p.Page = total
	}
	return p
}

// View is the outcome of one pipeline pass.
type View[T any] struct {
	// VisibleRows is the filtered, sorted, paginated slice to render.
	VisibleRows []T

	// TotalFiltered is the post-filter, pre-pagination row count, used to
	// compute the page count.
	TotalFiltered int

	// Page is the clamped current page (1 when pagination is disabled).
	Page int
}

// Pipeline computes table views. Construct with [NewPipeline]; the zero value
// lacks a collator and key extractor.
type Pipeline[T any] struct {
	// Columns define value access, search participation, and sortability.
	Columns []Column[T]

	// KeyOf produces the stable unique row key used by selection.
	KeyOf func(row T) string

	// Paginate enables pagination. When false, Compute returns every
	// filtered row and ignores PageState.
	Paginate bool

	collator *collate.Collator
}

// NewPipeline creates a pipeline over the given columns with locale-aware
// sorting for the given language tag. Use language.Und for the untailored
// collation order.
func NewPipeline[T any](columns []Column[T], keyOf func(row T) string, lang language.Tag) *Pipeline[T] {
	return &Pipeline[T]{
		Columns:  columns,
		KeyOf:    keyOf,
		Paginate: true,
		collator: collate.New(lang),
	}
}

// Compute runs the filter → sort → paginate pipeline over rows.
//
// rows is never mutated; sorting happens on a copy. Page is clamped into
// range, so an out-of-bounds PageState degrades to the nearest valid page
// rather than an empty view.
func (p *Pipeline[T]) Compute(rows []T, sort SortState, filter FilterState, page PageState) View[T] {
	filtered := p.applyFilters(rows, filter)
	sorted := p.applySort(filtered, sort)

	if !p.Paginate || page.PageSize <= 0 {
		return View[T]{VisibleRows: sorted, TotalFiltered: len(sorted), Page: 1}
	}

	page = page.Clamp(len(sorted))
	start := (page.Page - 1) * page.PageSize
	end := start + page.PageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return View[T]{
		VisibleRows:   sorted[start:end],
		TotalFiltered: len(sorted),
		Page:          page.Page,
	}
}

func (p *Pipeline[T]) applyFilters(rows []T, filter FilterState) []T {
	if !filter.active() {
		return rows
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]T, 0, len(rows))

	for _, row := range rows {
		if search != "" && !p.matchesSearch(row, search) {
			continue
		}
		if !p.matchesColumnFilters(row, filter.ColumnFilters) {
			continue
		}
		result = append(result, row)
	}
	return result
}

// matchesSearch reports whether any searchable column contains the term.
func (p *Pipeline[T]) matchesSearch(row T, term string) bool {
	for _, col := range p.Columns {
		if !col.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(col.Cell(row).Text()), term) {
			return true
		}
	}
	return false
}

// matchesColumnFilters reports whether the row matches every active filter.
func (p *Pipeline[T]) matchesColumnFilters(row T, filters map[string]string) bool {
	for key, term := range filters {
		if term == "" {
			continue
		}
		col, ok := p.columnByKey(key)
		if !ok {
			// Filter on an unknown column matches nothing.
			return false
		}
		value := strings.ToLower(col.Cell(row).Text())
		if !strings.Contains(value, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

// applySort returns rows ordered by the active sort column. Comparison is
// over stringified cell values using the pipeline's collator; the sort is
// stable so equal values keep their filter order.
func (p *Pipeline[T]) applySort(rows []T, sort SortState) []T {
	if sort.Column == "" || sort.Direction == SortNone {
		return rows
	}
	col, ok := p.columnByKey(sort.Column)
	if !ok || !col.Sortable {
		return rows
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)

	slices.SortStableFunc(sorted, func(a, b T) int {
		cmp := p.collator.CompareString(col.Cell(a).Text(), col.Cell(b).Text())
		if sort.Direction == SortDesc {
			cmp = -cmp
		}
		return cmp
	})
	return sorted
}

func (p *Pipeline[T]) columnByKey(key string) (Column[T], bool) {
	for _, col := range p.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}
