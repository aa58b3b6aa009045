package view

// Page is everything a renderer needs for one render pass.
type Page struct {
	Phase    Phase
	Error    string
	Criteria Criteria
	Years    []string
	Table    Table

	// Total is the size of the full record set, Matched the size of the
	// filtered view.
	Total   int
	Matched int
}

// Render derives the page from a snapshot and the current criteria.
// It is pure: calling it twice with equal arguments yields equal pages.
func Render(snap Snapshot, criteria Criteria, columns Columns) Page {
	filtered := ComputeFilteredView(snap.Records, criteria, columns)

	p := Page{
		Phase:    snap.Phase,
		Criteria: criteria,
		Years:    snap.Years,
		Table:    BuildTable(snap.Records, filtered, columns.Excluded),
		Total:    len(snap.Records),
		Matched:  len(filtered),
	}
	if snap.Err != nil {
		p.Error = snap.Err.Error()
	}

	return p
}

// Loading reports whether the view still waits for data.
func (p Page) Loading() bool { return p.Phase == PhaseLoading }

// Failed reports whether the load failed.
func (p Page) Failed() bool { return p.Phase == PhaseError }
