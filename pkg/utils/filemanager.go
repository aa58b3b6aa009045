// =============================================================================
// Greek CSV Viewer - File Utilities
// =============================================================================
//
// This module provides small file helpers used when wiring the viewer to its
// static asset directory:
//   - Checking that the static directory and data file exist
//   - Describing the data file (size, modification time) for startup logs
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// =============================================================================
// ASSET INFO
// =============================================================================

// AssetInfo describes a static file on disk.
type AssetInfo struct {
	// Path is the file path as given.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time
}

// DescribeAsset returns size and modification time of the file at
// dir/name.
//
// PARAMETERS:
//   - dir:  The static asset directory.
//   - name: The file name inside dir.
//
// RETURNS:
//   - The AssetInfo for the file.
//   - An error if the file does not exist or is a directory.
func DescribeAsset(dir, name string) (AssetInfo, error) {
	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil {
		return AssetInfo{}, err
	}
	if info.IsDir() {
		return AssetInfo{}, fmt.Errorf("%s is a directory", path)
	}

	return AssetInfo{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
