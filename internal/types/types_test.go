package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	columns := []string{"Φορέας", "Α.Φ.Μ"}
	rec := NewRecord(columns, map[string]string{"Φορέας": "X", "Α.Φ.Μ": "111"})

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, "111", rec.Value("Α.Φ.Μ"))
	assert.Equal(t, "", rec.Value("missing"))

	_, ok := rec.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []Field{{"Φορέας", "X"}, {"Α.Φ.Μ", "111"}}, rec.Fields())

	// Keys returns a copy; the shared header is untouched.
	keys := rec.Keys()
	keys[0] = "changed"
	assert.Equal(t, "Φορέας", columns[0])
	assert.Equal(t, []string{"Φορέας", "Α.Φ.Μ"}, rec.Keys())
}
