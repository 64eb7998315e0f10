package table_test

import (
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/go-mosaic/mosaic/pkg/table"
	"github.com/go-mosaic/mosaic/pkg/widgets"
)

func exportPipeline() *table.Pipeline[user] {
	columns := []table.Column[user]{
		table.ColumnOf[user]("name", "Name"),
		table.ColumnOf[user]("email", "Email"),
		table.ColumnOf[user]("actions", "").WithAccessor(func(u user) table.CellValue {
			return table.ElementCell(widgets.Text{Content: "Delete"})
		}),
	}
	return table.NewPipeline(columns, func(u user) string { return u.ID }, language.Und)
}

func TestExportCSV(t *testing.T) {
	p := exportPipeline()
	rows := []user{
		{ID: "1", Name: "Alice", Email: "alice@example.com"},
		{ID: "2", Name: "Bob", Email: "bob@example.com"},
	}

	got := p.ExportCSV(rows)
	want := "Name,Email\nAlice,alice@example.com\nBob,bob@example.com\n"
	if got != want {
		t.Errorf("ExportCSV = %q, want %q", got, want)
	}
}

func TestExportCSVEmptyRows(t *testing.T) {
	p := exportPipeline()

	got := p.ExportCSV(nil)
	if got != "Name,Email\n" {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestExportExcludesActionColumns(t *testing.T) {
	p := exportPipeline()
	rows := []user{{ID: "1", Name: "Alice", Email: "a@example.com"}}

	if strings.Contains(p.ExportCSV(rows), "Delete") {
		t.Error("action column leaked into CSV export")
	}

	data, err := p.ExportJSON(rows)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if strings.Contains(string(data), "actions") {
		t.Error("action column leaked into JSON export")
	}
}

func TestExportJSON(t *testing.T) {
	p := exportPipeline()
	rows := []user{{ID: "1", Name: "Alice", Email: "alice@example.com"}}

	data, err := p.ExportJSON(rows)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var records []map[string]string
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0]["name"] != "Alice" || records[0]["email"] != "alice@example.com" {
		t.Errorf("record = %v", records[0])
	}
}

func TestExportJSONEmptyRows(t *testing.T) {
	p := exportPipeline()

	data, err := p.ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}

func TestHeaderFallsBackToKey(t *testing.T) {
	columns := []table.Column[user]{table.ColumnOf[user]("email", "")}
	p := table.NewPipeline(columns, func(u user) string { return u.ID }, language.Und)

	if got := p.ExportCSV(nil); got != "email\n" {
		t.Errorf("header = %q, want key fallback", got)
	}
}
