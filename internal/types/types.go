// =============================================================================
// Greek CSV Viewer - Shared Types
// =============================================================================
//
// This package contains types shared by the parser and the view packages to
// avoid import cycles. Types defined here are used by:
//   - csvparser
//   - view
//
// =============================================================================

package types

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record represents a single parsed data row.
// It maps column name to cell value while remembering the natural column
// order of the header row, so key enumeration is deterministic.
type Record struct {
	// columns is the header row shared by every record of one parse pass.
	// It is never modified after parsing.
	columns []string

	// fields holds the cell values keyed by column name.
	fields map[string]string
}

// NewRecord builds a record from a header and a map of values.
// The header slice is shared, not copied; callers must not mutate it.
func NewRecord(columns []string, fields map[string]string) Record {
	return Record{columns: columns, fields: fields}
}

// Get returns the value of a column and whether the column exists.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.fields[column]
	return v, ok
}

// Value returns the value of a column, or "" when the column is absent.
func (r Record) Value(column string) string {
	return r.fields[column]
}

// Keys returns the column names in header order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.columns))
	copy(keys, r.columns)
	return keys
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.columns)
}

// Field is one column/value pair of a record.
type Field struct {
	Column string
	Value  string
}

// Fields returns the column/value pairs in header order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.columns))
	for i, c := range r.columns {
		out[i] = Field{Column: c, Value: r.fields[c]}
	}
	return out
}

// RecordSet is the ordered collection of records produced by one parse pass.
// Insertion order equals source file row order.
type RecordSet []Record
