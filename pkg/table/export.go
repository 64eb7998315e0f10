package table

import (
	"encoding/json"
	"strings"
)

// actionsPrefix marks action-button columns, which never export.
const actionsPrefix = "actions"

// exportColumns returns the columns included in exports.
func (p *Pipeline[T]) exportColumns() []Column[T] {
	cols := make([]Column[T], 0, len(p.Columns))
	for _, col := range p.Columns {
		if strings.HasPrefix(col.Key, actionsPrefix) {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// ExportCSV serializes rows as CSV: a header line of column titles followed
// by one line per row. Widget-valued cells render as "".
//
// Fields are comma-joined without RFC 4180 quoting, so values containing
// commas or quotes will not round-trip. Callers needing strict CSV interop
// should quote values in their accessors.
func (p *Pipeline[T]) ExportCSV(rows []T) string {
	cols := p.exportColumns()

	var sb strings.Builder
	for i, col := range cols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(headerOf(col))
	}
	sb.WriteByte('\n')

	for _, row := range rows {
		for i, col := range cols {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(col.Cell(row).Text())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ExportJSON serializes rows as a pretty-printed (2-space indent) array of
// flat objects keyed by column key. An empty row set yields "[]".
func (p *Pipeline[T]) ExportJSON(rows []T) ([]byte, error) {
	cols := p.exportColumns()

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(cols))
		for _, col := range cols {
			record[col.Key] = col.Cell(row).Text()
		}
		records = append(records, record)
	}
	return json.MarshalIndent(records, "", "  ")
}

// headerOf returns the export header for a column: the title when present,
// the key otherwise.
func headerOf[T any](col Column[T]) string {
	if col.Title != "" {
		return col.Title
	}
	return col.Key
}
