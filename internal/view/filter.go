// =============================================================================
// Greek CSV Viewer - View Module
// =============================================================================
//
// This package holds the view state of the viewer: the once-loaded record
// set, the three filter criteria and everything derived from them.
//
// DERIVED VALUES:
//   - Distinct years:  sorted, trimmed, non-empty values of the year column
//   - Filtered view:   records matching every non-empty criterion exactly
//   - Table:           header and cells with the excluded column removed
//
// All derivations are pure functions of (record set, criteria). They are
// recomputed on every render and never cached.
//
// =============================================================================

package view

import (
	"sort"
	"strings"

	"github.com/ginjaninja78/greek-csv-viewer/internal/config"
	"github.com/ginjaninja78/greek-csv-viewer/internal/csvparser"
	"github.com/ginjaninja78/greek-csv-viewer/internal/types"
)

// =============================================================================
// FILTER CRITERIA
// =============================================================================

// Criteria holds the current values of the three filter controls.
// The empty string means "no constraint".
type Criteria struct {
	Vat      string
	Supplier string
	Year     string
}

// SetVat replaces the tax identifier criterion. Any string is accepted.
func (c *Criteria) SetVat(text string) { c.Vat = text }

// SetSupplier replaces the supplier code criterion.
func (c *Criteria) SetSupplier(text string) { c.Supplier = text }

// SetYear replaces the year criterion.
func (c *Criteria) SetYear(text string) { c.Year = text }

// Columns names the columns the view reads. It mirrors config.Columns.
type Columns = config.Columns

// DefaultColumns returns the Greek column labels of the source dataset.
func DefaultColumns() Columns {
	return config.DefaultColumns()
}

// =============================================================================
// DERIVATIONS
// =============================================================================

// ComputeDistinctYears returns the sorted set of non-empty, trimmed values of
// yearColumn.
func ComputeDistinctYears(records types.RecordSet, yearColumn string) []string {
	seen := make(map[string]bool)
	years := []string{}

	for _, v := range csvparser.ColumnValues(records, yearColumn) {
		y := strings.TrimSpace(v)
		if y == "" || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}

	sort.Strings(years)
	return years
}

// ComputeFilteredView returns the records that satisfy every non-empty
// criterion. The source value is trimmed before comparison; the criterion
// is compared as typed. The input slice is never modified.
func ComputeFilteredView(records types.RecordSet, criteria Criteria, columns Columns) types.RecordSet {
	filtered := types.RecordSet{}

	for _, rec := range records {
		if matches(rec, columns.Vat, criteria.Vat) &&
			matches(rec, columns.Supplier, criteria.Supplier) &&
			matches(rec, columns.Year, criteria.Year) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

// matches is vacuously true for an empty criterion. A record lacking the
// column only matches an empty criterion.
func matches(rec types.Record, column, criterion string) bool {
	if criterion == "" {
		return true
	}
	v, ok := rec.Get(column)
	if !ok {
		return false
	}
	return strings.TrimSpace(v) == criterion
}
