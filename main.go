// =============================================================================
// Greek CSV Viewer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the viewer. It initializes the Cobra CLI
// and delegates command execution to the cmd package.
//
// USAGE:
//   viewer serve    - Serve data.csv as a filterable HTML table
//   viewer show     - Print the filtered table to the terminal
//   viewer version  - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loader, parser, view state and web surface
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/greek-csv-viewer/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
