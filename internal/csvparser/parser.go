// =============================================================================
// Greek CSV Viewer - CSV Parser Module
// =============================================================================
//
// This module converts decoded CSV text into an ordered sequence of records.
// The first row supplies the column names; every following row is aligned
// positionally with it and turned into a types.Record.
//
// PARSING RULES:
//   - Header names are used verbatim (no trimming, non-ASCII preserved)
//   - Entirely empty lines are skipped and produce no record
//   - Values are kept as-is: no trimming, no type coercion
//   - Standard CSV quoting applies (separators inside quotes are literal)
//
// LENIENCY POLICY:
//   The parser never rejects a row for its shape.
//   - Short rows are padded with empty values for the missing columns
//   - Fields beyond the header width are dropped and counted in ExtraFields
//   - Duplicate header names keep their first position; the last value wins
//   - Stray quotes inside unquoted fields are accepted (LazyQuotes)
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/greek-csv-viewer/internal/types"
)

// =============================================================================
// PARSE RESULT
// =============================================================================

// Result represents one parse pass over a CSV document.
type Result struct {
	// Headers contains the column names in header order, deduplicated.
	Headers []string

	// Records contains one record per non-empty data row.
	Records types.RecordSet

	// ExtraFields counts values dropped because their row was wider than
	// the header.
	ExtraFields int

	// PaddedRows counts rows that were shorter than the header.
	PaddedRows int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse parses decoded CSV text.
//
// Empty text yields an empty Result and no error. Text with only a header
// row yields the headers and zero records.
func Parse(text string) (*Result, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader parses CSV from any reader producing UTF-8 text.
//
// PARAMETERS:
//   - r: The decoded CSV stream.
//
// RETURNS:
//   - A pointer to the Result struct containing headers and records.
//   - An error if the underlying reader fails or the CSV is unreadable.
func ParseReader(r io.Reader) (*Result, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Headers: reader.Headers(),
		Records: types.RecordSet{},
	}

	for reader.Next() {
		result.Records = append(result.Records, reader.Record())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	result.ExtraFields = reader.ExtraFields()
	result.PaddedRows = reader.PaddedRows()

	return result, nil
}

// configureReader sets up encoding/csv for the leniency policy above.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Allow variable number of fields per row.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Values are taken as-is.
	reader.TrimLeadingSpace = false

	// Records are copied into maps, so the backing array may be reused.
	reader.ReuseRecord = true
}

// uniqueHeaders returns the header row with repeated names removed, keeping
// the first position of each name. The input strings are not altered.
func uniqueHeaders(row []string) []string {
	seen := make(map[string]bool, len(row))
	headers := make([]string, 0, len(row))

	for _, h := range row {
		if seen[h] {
			continue
		}
		seen[h] = true
		headers = append(headers, h)
	}

	return headers
}

// =============================================================================
// STREAMING READER
// =============================================================================

// Reader yields records one at a time.
//
// USAGE:
//   reader, err := NewReader(r)
//   if err != nil {
//       return err
//   }
//
//   for reader.Next() {
//       rec := reader.Record()
//       // Process the record...
//   }
//
//   if err := reader.Err(); err != nil {
//       return err
//   }
type Reader struct {
	reader      *csv.Reader
	rawHeaders  []string
	headers     []string
	current     types.Record
	rowNumber   int
	extraFields int
	paddedRows  int
	err         error
}

// NewReader reads the header row from r and returns a Reader positioned at
// the first data row. An empty stream is not an error: the Reader simply
// has no headers and no records.
func NewReader(r io.Reader) (*Reader, error) {
	reader := csv.NewReader(r)
	configureReader(reader)

	p := &Reader{reader: reader}

	if err := p.readHeaders(); err != nil {
		return nil, err
	}

	return p, nil
}

// readHeaders reads the header row.
func (p *Reader) readHeaders() error {
	row, err := p.reader.Read()
	if err == io.EOF {
		p.headers = []string{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}

	// ReuseRecord: the slice is overwritten on the next Read.
	p.rawHeaders = append([]string(nil), row...)
	p.headers = uniqueHeaders(p.rawHeaders)
	p.rowNumber++

	return nil
}

// Next advances to the next record. Returns false when there are no more
// rows or an error occurred.
func (p *Reader) Next() bool {
	if p.err != nil || len(p.headers) == 0 {
		return false
	}

	row, err := p.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			p.err = fmt.Errorf("error reading row %d: %w", parseErr.StartLine, err)
		} else {
			p.err = fmt.Errorf("error reading row %d: %w", p.rowNumber+1, err)
		}
		return false
	}

	p.rowNumber++

	switch {
	case len(row) > len(p.rawHeaders):
		p.extraFields += len(row) - len(p.rawHeaders)
	case len(row) < len(p.rawHeaders):
		p.paddedRows++
	}

	fields := make(map[string]string, len(p.headers))
	for _, h := range p.headers {
		fields[h] = ""
	}
	for i, h := range p.rawHeaders {
		if i < len(row) {
			fields[h] = row[i]
		}
	}

	p.current = types.NewRecord(p.headers, fields)
	return true
}

// Record returns the current record.
func (p *Reader) Record() types.Record {
	return p.current
}

// Headers returns the deduplicated header row.
func (p *Reader) Headers() []string {
	return p.headers
}

// ExtraFields returns the number of dropped overflow values.
func (p *Reader) ExtraFields() int {
	return p.extraFields
}

// PaddedRows returns the number of rows shorter than the header.
func (p *Reader) PaddedRows() int {
	return p.paddedRows
}

// Err returns any error that occurred during parsing.
func (p *Reader) Err() error {
	return p.err
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// ColumnValues returns the value of column for every record, in order.
// Records without the column contribute "".
func ColumnValues(records types.RecordSet, column string) []string {
	values := make([]string, len(records))
	for i, rec := range records {
		values[i] = rec.Value(column)
	}
	return values
}
