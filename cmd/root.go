// =============================================================================
// Greek CSV Viewer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (viewer)
//   ├── serveCmd   (viewer serve)
//   ├── showCmd    (viewer show)
//   └── versionCmd (viewer version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/greek-csv-viewer/internal/config"
	"github.com/ginjaninja78/greek-csv-viewer/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "viewer",
	Short: "Greek CSV Viewer - browse an ISO-8859-7 CSV with exact-match filters",
	Long: `Greek CSV Viewer serves a single static CSV file encoded in ISO-8859-7
as a filterable HTML table.

The file is loaded once at startup, decoded and parsed with its first row
as the header. Rows can be narrowed by tax identifier (Α.Φ.Μ), supplier
code (Κωδ.Προμηθευτή) and year (Έτος).

Example Usage:
  viewer serve                        # Serve ./public/data.csv on :8080
  viewer serve --config ./viewer.yaml # Use a custom configuration file
  viewer show --vat 111               # Print the filtered table`,

	// Execute prints returned errors itself.
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the persistent flags shared by every subcommand.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// loadConfig reads the configuration and builds the logger for a command.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
	return cfg, logger, nil
}
