// Package table implements the data pipeline behind the DataTable widget:
// filtering, sorting, pagination, row selection, and CSV/JSON export.
//
// The pipeline is pure. [Pipeline.Compute] derives a view from the current
// row slice and interaction state without mutating either; the hosting widget
// decides when to recompute and re-render.
package table

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-mosaic/mosaic/pkg/core"
)

// Align controls horizontal alignment of a column's cells. Presentation only;
// the pipeline ignores it.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one table column.
//
// Key must be unique within a table instance. Columns whose Key begins with
// "actions" are excluded from export (the convention for action-button
// columns).
type Column[T any] struct {
	// Key uniquely identifies the column and names the row field used when
	// no Accessor is set.
	Key string

	// Title is the header text. Export falls back to Key when empty.
	Title string

	// Accessor derives the cell value from a row. When nil, the pipeline
	// looks up the row field named Key.
	Accessor func(row T) CellValue

	// Sortable enables the header sort cycle for this column.
	Sortable bool

	// Searchable includes the column in global search matching.
	// ColumnOf enables it; clear it for columns that render widgets.
	Searchable bool

	// Width is a fixed column width in logical pixels. Presentation only.
	Width float64

	// Align is the cell alignment. Presentation only.
	Align Align
}

// ColumnOf creates a searchable column with the given key and header title.
//
// This is a convenience helper equivalent to:
//
//	Column[T]{Key: key, Title: title, Searchable: true}
func ColumnOf[T any](key, title string) Column[T] {
	return Column[T]{Key: key, Title: title, Searchable: true}
}

// WithAccessor returns a copy of the column with the given accessor.
func (c Column[T]) WithAccessor(accessor func(row T) CellValue) Column[T] {
	c.Accessor = accessor
	return c
}

// WithSortable returns a copy of the column with sorting enabled or disabled.
func (c Column[T]) WithSortable(sortable bool) Column[T] {
	c.Sortable = sortable
	return c
}

// WithSearchable returns a copy of the column with search matching enabled or disabled.
func (c Column[T]) WithSearchable(searchable bool) Column[T] {
	c.Searchable = searchable
	return c
}

// WithAlign returns a copy of the column with the given cell alignment.
func (c Column[T]) WithAlign(align Align) Column[T] {
	c.Align = align
	return c
}

// WithWidth returns a copy of the column with a fixed width.
func (c Column[T]) WithWidth(width float64) Column[T] {
	c.Width = width
	return c
}

type cellKind int

const (
	cellText cellKind = iota
	cellElement
)

// CellValue is the closed variant a cell can hold: plain text or a rendered
// widget. Widget-valued cells stringify to "" for search, sort, and export.
type CellValue struct {
	kind    cellKind
	text    string
	element core.Widget
}

// TextCell wraps a string value.
func TextCell(text string) CellValue {
	return CellValue{kind: cellText, text: text}
}

// TextCellf wraps a formatted string value.
func TextCellf(format string, args ...any) CellValue {
	return CellValue{kind: cellText, text: fmt.Sprintf(format, args...)}
}

// ElementCell wraps a widget, rendered in place of text.
func ElementCell(w core.Widget) CellValue {
	return CellValue{kind: cellElement, element: w}
}

// IsElement reports whether the cell holds a widget.
func (v CellValue) IsElement() bool {
	return v.kind == cellElement
}

// Element returns the wrapped widget, or nil for text cells.
func (v CellValue) Element() core.Widget {
	return v.element
}

// Text returns the cell's text form. Widget cells return "".
func (v CellValue) Text() string {
	if v.kind == cellElement {
		return ""
	}
	return v.text
}

// Cell resolves the column's value for a row: the accessor when present,
// otherwise a field lookup by column key.
func (c Column[T]) Cell(row T) CellValue {
	if c.Accessor != nil {
		return c.Accessor(row)
	}
	return TextCell(stringify(fieldLookup(row, c.Key)))
}

// fieldLookup reads a row field by name. Supports map rows keyed by string
// and struct rows (exported field matching the key, case-insensitively).
// Missing fields degrade to nil, never panic.
func fieldLookup(row any, key string) any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		entry := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !entry.IsValid() {
			return nil
		}
		return entry.Interface()

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if strings.EqualFold(field.Name, key) {
				return v.Field(i).Interface()
			}
		}
		return nil

	default:
		return nil
	}
}

// stringify renders an arbitrary value for matching and export.
// nil and widget values become "".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case CellValue:
		return v.Text()
	case core.Widget:
		return ""
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
