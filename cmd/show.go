// =============================================================================
// Greek CSV Viewer - Show Command
// =============================================================================
//
// This file defines the 'show' command, which renders the same view as the
// web page to the terminal: it loads data.csv, applies the filters given as
// flags and prints the table.
//
// COMMAND USAGE:
//   viewer show [--vat X] [--supplier Y] [--year Z]
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/greek-csv-viewer/internal/config"
	"github.com/ginjaninja78/greek-csv-viewer/internal/loader"
	"github.com/ginjaninja78/greek-csv-viewer/internal/view"
)

// Filter flags of the show command. They are applied verbatim.
var (
	showVat      string
	showSupplier string
	showYear     string
)

// showCmd represents the 'show' command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the filtered table to the terminal",
	Long: `The show command loads data.csv once, applies the exact-match filters
given as flags and prints the resulting table. The provider column is never
shown. Filter values are compared as typed; source values are trimmed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyOverrides(cmd, cfg)

		state := view.NewState(view.Options{
			Columns:     cfg.Columns,
			LoadTimeout: cfg.LoadTimeout,
			Logger:      logger,
		})

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		state.Start(ctx, loader.New(newSource(cfg), logger))
		if err := state.Wait(ctx); err != nil {
			return err
		}

		snap := state.Snapshot()
		if snap.Phase == view.PhaseError {
			return fmt.Errorf("failed to load %s: %w", config.DataFile, snap.Err)
		}

		var criteria view.Criteria
		criteria.SetVat(showVat)
		criteria.SetSupplier(showSupplier)
		criteria.SetYear(showYear)

		return renderText(cmd.OutOrStdout(), view.Render(snap, criteria, state.Columns()))
	},
}

// init registers the show command and its flags.
func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showVat, "vat", "", "Exact tax identifier (Α.Φ.Μ)")
	showCmd.Flags().StringVar(&showSupplier, "supplier", "", "Exact supplier code (Κωδ.Προμηθευτή)")
	showCmd.Flags().StringVar(&showYear, "year", "", "Exact year (Έτος)")
	addSourceFlags(showCmd)
}

// renderText writes the page as a tab-aligned table.
func renderText(w io.Writer, page view.Page) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(page.Years) > 0 {
		fmt.Fprintf(tw, "Έτη: %s\n\n", strings.Join(page.Years, ", "))
	}

	if len(page.Table.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(page.Table.Headers, "\t"))
	}

	if page.Table.NoResults {
		fmt.Fprintln(tw, "❌ Δεν βρέθηκαν αποτελέσματα")
	} else {
		for _, row := range page.Table.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d / %d\n", page.Matched, page.Total)
	return err
}
