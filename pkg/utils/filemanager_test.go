package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeAsset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("a,b\n"), 0o644))

	info, err := DescribeAsset(dir, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), info.Path)
	assert.Equal(t, int64(4), info.Size)
	assert.False(t, info.ModTime.IsZero())

	_, err = DescribeAsset(dir, "missing.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	_, err = DescribeAsset(dir, "sub")
	assert.Error(t, err)
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("xyz"), 0o644))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, DirExists(filepath.Join(dir, "nope")))
}
