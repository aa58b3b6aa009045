package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/greek-csv-viewer/internal/csvparser"
	"github.com/ginjaninja78/greek-csv-viewer/internal/types"
)

const sampleCSV = "Φορέας,Α.Φ.Μ,Κωδ.Προμηθευτή,Έτος\nX,111,A1,2020\nY,222,A2,2021\n"

func parse(t *testing.T, text string) types.RecordSet {
	t.Helper()
	res, err := csvparser.Parse(text)
	require.NoError(t, err)
	return res.Records
}

func TestCriteriaSetters(t *testing.T) {
	var c Criteria
	assert.Equal(t, Criteria{}, c)

	c.SetVat(" 111 ")
	c.SetSupplier("A1")
	c.SetYear("1999")

	assert.Equal(t, Criteria{Vat: " 111 ", Supplier: "A1", Year: "1999"}, c)
}

func TestComputeFilteredView_Sample(t *testing.T) {
	records := parse(t, sampleCSV)
	cols := DefaultColumns()

	all := ComputeFilteredView(records, Criteria{}, cols)
	assert.Len(t, all, 2)

	byVat := ComputeFilteredView(records, Criteria{Vat: "111"}, cols)
	require.Len(t, byVat, 1)
	assert.Equal(t, "X", byVat[0].Value("Φορέας"))

	bySupplier := ComputeFilteredView(records, Criteria{Supplier: "A2"}, cols)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, "222", bySupplier[0].Value("Α.Φ.Μ"))

	combined := ComputeFilteredView(records, Criteria{Vat: "111", Year: "2021"}, cols)
	assert.Empty(t, combined)

	unknownYear := ComputeFilteredView(records, Criteria{Year: "1999"}, cols)
	assert.Empty(t, unknownYear)
}

func TestComputeFilteredView_ExactMatchOnly(t *testing.T) {
	records := parse(t, sampleCSV)
	cols := DefaultColumns()

	for _, vat := range []string{"11", "1111", "1"} {
		assert.Empty(t, ComputeFilteredView(records, Criteria{Vat: vat}, cols), vat)
	}
}

func TestComputeFilteredView_TrimsSourceNotInput(t *testing.T) {
	records := parse(t, "Φορέας,Α.Φ.Μ,Κωδ.Προμηθευτή,Έτος\nX,  111 ,A1, 2020\n")
	cols := DefaultColumns()

	assert.Len(t, ComputeFilteredView(records, Criteria{Vat: "111"}, cols), 1)
	assert.Len(t, ComputeFilteredView(records, Criteria{Year: "2020"}, cols), 1)

	assert.Empty(t, ComputeFilteredView(records, Criteria{Vat: " 111"}, cols))
	assert.Empty(t, ComputeFilteredView(records, Criteria{Vat: "111 "}, cols))
}

func TestComputeFilteredView_HeaderWhitespaceMismatch(t *testing.T) {
	// The year header carries a trailing space, so the default column
	// name never matches it.
	records := parse(t, "Φορέας,Α.Φ.Μ,Κωδ.Προμηθευτή,Έτος \nX,111,A1,2020\n")

	assert.Empty(t, ComputeFilteredView(records, Criteria{Year: "2020"}, DefaultColumns()))

	cols := DefaultColumns()
	cols.Year = "Έτος "
	assert.Len(t, ComputeFilteredView(records, Criteria{Year: "2020"}, cols), 1)
}

func TestComputeFilteredView_SubsetAndIdempotent(t *testing.T) {
	records := parse(t, "Φορέας,Α.Φ.Μ,Κωδ.Προμηθευτή,Έτος\n"+
		"A,1,S1,2019\nB,1,S2,2020\nC,2,S1,2020\nD,3,S3,2021\nE,1,S1,2020\n")
	cols := DefaultColumns()

	criteria := []Criteria{
		{},
		{Vat: "1"},
		{Supplier: "S1"},
		{Year: "2020"},
		{Vat: "1", Supplier: "S1"},
		{Vat: "1", Supplier: "S1", Year: "2020"},
		{Vat: "nope"},
	}

	base := ComputeFilteredView(records, Criteria{}, cols)
	require.Len(t, base, len(records))

	for _, c := range criteria {
		first := ComputeFilteredView(records, c, cols)
		second := ComputeFilteredView(records, c, cols)
		assert.Equal(t, first, second, "%+v", c)

		// Each result is a subset of the unconstrained view and preserves
		// source order.
		idx := 0
		for _, rec := range first {
			for idx < len(base) && base[idx].Value("Φορέας") != rec.Value("Φορέας") {
				idx++
			}
			assert.Less(t, idx, len(base), "%+v produced a record outside the set", c)
		}

		// Adding the supplier constraint never adds rows.
		narrower := c
		narrower.SetSupplier("S1")
		if c.Supplier == "" {
			assert.LessOrEqual(t, len(ComputeFilteredView(records, narrower, cols)), len(first))
		}
	}

	got := ComputeFilteredView(records, Criteria{Vat: "1", Supplier: "S1", Year: "2020"}, cols)
	require.Len(t, got, 1)
	assert.Equal(t, "E", got[0].Value("Φορέας"))
}

func TestComputeFilteredView_DoesNotMutateInput(t *testing.T) {
	records := parse(t, sampleCSV)
	before := append(types.RecordSet(nil), records...)

	_ = ComputeFilteredView(records, Criteria{Vat: "222"}, DefaultColumns())

	assert.Equal(t, before, records)
}

func TestComputeDistinctYears(t *testing.T) {
	t.Run("sample", func(t *testing.T) {
		assert.Equal(t, []string{"2020", "2021"}, ComputeDistinctYears(parse(t, sampleCSV), "Έτος"))
	})

	t.Run("trims dedupes and drops blanks", func(t *testing.T) {
		records := parse(t, "Έτος,x\n2021,a\n 2019,b\n2021 ,c\n,d\n   ,e\n2020,f\n")
		assert.Equal(t, []string{"2019", "2020", "2021"}, ComputeDistinctYears(records, "Έτος"))
	})

	t.Run("lexicographic order", func(t *testing.T) {
		records := parse(t, "Έτος\n999\n2020\n10000\n")
		assert.Equal(t, []string{"10000", "2020", "999"}, ComputeDistinctYears(records, "Έτος"))
	})

	t.Run("missing column", func(t *testing.T) {
		assert.Empty(t, ComputeDistinctYears(parse(t, sampleCSV), "Year"))
	})

	t.Run("empty record set", func(t *testing.T) {
		years := ComputeDistinctYears(nil, "Έτος")
		assert.NotNil(t, years)
		assert.Empty(t, years)
	})
}
