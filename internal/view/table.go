package view

import (
	"github.com/ginjaninja78/greek-csv-viewer/internal/types"
)

// Table is the render model of the data table.
type Table struct {
	// Headers are the visible column names. Empty when the record set is
	// empty.
	Headers []string

	// Rows hold the visible cells of each filtered record, aligned with
	// the record's own column order minus the excluded column.
	Rows [][]string

	// NoResults is set when the filtered view is empty.
	NoResults bool

	// ColSpan is the width of the full-row status cell (no results, loading).
	ColSpan int
}

// BuildTable derives the table from the full record set and the filtered
// view. The header comes from the first record of the full set, not the
// filtered view, so it stays stable while filters change.
func BuildTable(records, filtered types.RecordSet, excluded string) Table {
	t := Table{
		Headers: []string{},
		Rows:    make([][]string, 0, len(filtered)),
	}

	if len(records) > 0 {
		t.Headers = visibleKeys(records[0], excluded)
	}

	for _, rec := range filtered {
		row := make([]string, 0, rec.Len())
		for _, f := range rec.Fields() {
			if f.Column == excluded {
				continue
			}
			row = append(row, f.Value)
		}
		t.Rows = append(t.Rows, row)
	}

	t.NoResults = len(filtered) == 0
	t.ColSpan = len(t.Headers)
	if t.ColSpan < 1 {
		t.ColSpan = 1
	}

	return t
}

func visibleKeys(rec types.Record, excluded string) []string {
	keys := []string{}
	for _, k := range rec.Keys() {
		if k != excluded {
			keys = append(keys, k)
		}
	}
	return keys
}
