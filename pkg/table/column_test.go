package table_test

import (
	"testing"

	"github.com/go-mosaic/mosaic/pkg/table"
	"github.com/go-mosaic/mosaic/pkg/widgets"
)

func TestColumnOfDefaults(t *testing.T) {
	col := table.ColumnOf[user]("name", "Name")
	if !col.Searchable {
		t.Error("columns should be searchable unless opted out")
	}
	if col.Sortable {
		t.Error("columns should not be sortable unless opted in")
	}
}

func TestCellUsesAccessor(t *testing.T) {
	col := table.ColumnOf[user]("name", "Name").WithAccessor(func(u user) table.CellValue {
		return table.TextCellf("%s <%s>", u.Name, u.Email)
	})

	got := col.Cell(user{Name: "Alice", Email: "a@example.com"}).Text()
	if got != "Alice <a@example.com>" {
		t.Errorf("Cell = %q", got)
	}
}

func TestCellFieldLookupStruct(t *testing.T) {
	// Without an accessor the column key resolves a struct field,
	// case-insensitively.
	col := table.ColumnOf[user]("email", "Email")
	got := col.Cell(user{Email: "a@example.com"}).Text()
	if got != "a@example.com" {
		t.Errorf("struct lookup = %q", got)
	}
}

func TestCellFieldLookupMap(t *testing.T) {
	col := table.ColumnOf[map[string]any]("score", "Score")
	got := col.Cell(map[string]any{"score": 42}).Text()
	if got != "42" {
		t.Errorf("map lookup = %q, want 42", got)
	}
}

func TestCellFieldLookupMissing(t *testing.T) {
	col := table.ColumnOf[user]("nonexistent", "X")
	if got := col.Cell(user{Name: "Alice"}).Text(); got != "" {
		t.Errorf("missing field = %q, want empty", got)
	}
}

func TestElementCell(t *testing.T) {
	v := table.ElementCell(widgets.Text{Content: "button"})
	if !v.IsElement() {
		t.Fatal("expected element cell")
	}
	if v.Text() != "" {
		t.Errorf("element cell text = %q, want empty", v.Text())
	}
}
