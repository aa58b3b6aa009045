// =============================================================================
// Greek CSV Viewer - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which runs the viewer web server.
//
// COMMAND USAGE:
//   viewer serve [flags]
//
// FLAGS:
//   --addr        : Listen address (overrides listen_addr)
//   --static-dir  : Directory holding data.csv (overrides static_dir)
//   --source-url  : Fetch data.csv from this base URL (overrides source_url)
//
// STARTUP SEQUENCE:
//   1. Load configuration
//   2. Start the one-shot background load of data.csv
//   3. Serve the page immediately; renders before the load completes show
//      an empty table
//   4. Shut down gracefully on SIGINT/SIGTERM
//
// =============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/greek-csv-viewer/internal/config"
	"github.com/ginjaninja78/greek-csv-viewer/internal/loader"
	"github.com/ginjaninja78/greek-csv-viewer/internal/view"
	"github.com/ginjaninja78/greek-csv-viewer/internal/web"
	"github.com/ginjaninja78/greek-csv-viewer/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// listenAddr overrides the configured listen address.
var listenAddr string

// staticDir overrides the configured static asset directory.
var staticDir string

// sourceURL overrides the configured source URL.
var sourceURL string

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the CSV viewer over HTTP",
	Long: `The serve command hosts the static data.csv asset and the viewer page.

data.csv is loaded exactly once, in the background, when the server starts.
Until the load completes the page shows the filters and an empty table.
If the load fails the page shows an error notice and no rows.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyOverrides(cmd, cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServe(ctx, cfg, logger)
	},
}

// init registers the serve command and its flags.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default from config, :8080)")
	addSourceFlags(serveCmd)
}

// addSourceFlags registers the flags selecting where data.csv comes from.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "Directory holding data.csv (default from config, ./public)")
	cmd.Flags().StringVar(&sourceURL, "source-url", "", "Fetch data.csv from this base URL instead of the static directory")
}

// applyOverrides copies explicitly set flags over the configuration.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.ListenAddr = listenAddr
	}
	if cmd.Flags().Changed("static-dir") {
		cfg.StaticDir = staticDir
	}
	if cmd.Flags().Changed("source-url") {
		cfg.SourceURL = sourceURL
	}
}

// newSource picks the HTTP source when a URL is configured, the static
// directory otherwise.
func newSource(cfg *config.Config) loader.Source {
	if cfg.SourceURL != "" {
		return loader.NewHTTPSource(cfg.SourceURL, config.DataFile)
	}
	return loader.NewFileSource(os.DirFS(cfg.StaticDir), config.DataFile)
}

// runServe starts the background load and the HTTP server, and blocks until
// ctx is cancelled or the server fails.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if !utils.DirExists(cfg.StaticDir) {
		logger.Warn("static directory not found; /data.csv will return 404", "static_dir", cfg.StaticDir)
	} else if asset, err := utils.DescribeAsset(cfg.StaticDir, config.DataFile); err != nil {
		logger.Warn("data file not available", "error", err)
	} else {
		logger.Info("data file found",
			"path", asset.Path,
			"bytes", asset.Size,
			"modified", asset.ModTime.Format(time.RFC3339))
	}

	state := view.NewState(view.Options{
		Columns:     cfg.Columns,
		LoadTimeout: cfg.LoadTimeout,
		Logger:      logger,
	})
	state.Start(ctx, loader.New(newSource(cfg), logger))

	gin.SetMode(gin.ReleaseMode)
	srv, err := web.NewServer(state, web.Options{
		Static:    os.DirFS(cfg.StaticDir),
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize web server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
