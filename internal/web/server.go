// =============================================================================
// Greek CSV Viewer - Web Module
// =============================================================================
//
// This module renders the viewer page. Every request to "/" is one render
// pass: the criteria come from the query string, the record set from the
// view state, and the filtered table is recomputed from both.
//
// ROUTES:
//   GET /          - The viewer page (filters + table)
//   GET /data.csv  - The static CSV asset, bytes unchanged
//   GET /healthz   - Load phase and record count as JSON
//
// =============================================================================

package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ginjaninja78/greek-csv-viewer/internal/config"
	"github.com/ginjaninja78/greek-csv-viewer/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fixed UI strings.
const (
	pageTitle           = "📊 Greek CSV Viewer with Multiple Filters"
	vatPlaceholder      = "Εισαγάγετε Α.Φ.Μ"
	supplierPlaceholder = "Εισαγάγετε Κωδ.Προμηθευτή"
	allYearsLabel       = "Όλα τα έτη"
	noResultsText       = "❌ Δεν βρέθηκαν αποτελέσματα"
	loadingText         = "⏳ Φόρτωση δεδομένων..."
	loadErrorText       = "Σφάλμα φόρτωσης δεδομένων"
)

// Query parameter names of the three filter controls.
const (
	paramVat      = "vat"
	paramSupplier = "supplier"
	paramYear     = "year"
)

// Options configures a Server.
type Options struct {
	// Static holds data.csv. A nil Static disables the /data.csv route.
	Static fs.FS

	RateLimit float64
	RateBurst int

	Logger *slog.Logger
}

// Server serves the viewer page for one view.State.
type Server struct {
	state  *view.State
	opts   Options
	tmpl   *template.Template
	logger *slog.Logger
}

// templateData is the root object of the page template.
type templateData struct {
	Title               string
	VatPlaceholder      string
	SupplierPlaceholder string
	AllYearsLabel       string
	NoResultsText       string
	LoadingText         string
	LoadErrorText       string
	Page                view.Page
}

// NewServer parses the embedded templates and returns a Server.
func NewServer(state *view.State, opts Options) (*Server, error) {
	tmpl, err := template.New("base").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Server{
		state:  state,
		opts:   opts,
		tmpl:   tmpl,
		logger: logger,
	}, nil
}

// Router returns the gin engine with middleware and routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(s.tmpl)

	r.Use(RequestID())
	r.Use(RequestLogger(s.logger))
	r.Use(Recovery(s.logger))
	r.Use(RateLimit(s.opts.RateLimit, s.opts.RateBurst))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)
	if s.opts.Static != nil {
		r.GET("/"+config.DataFile, s.handleData)
	}

	return r
}

// CriteriaFromRequest reads the filter controls from the query string.
// Values are taken exactly as submitted, whitespace included.
func CriteriaFromRequest(c *gin.Context) view.Criteria {
	var criteria view.Criteria
	criteria.SetVat(c.Query(paramVat))
	criteria.SetSupplier(c.Query(paramSupplier))
	criteria.SetYear(c.Query(paramYear))
	return criteria
}

func (s *Server) handleIndex(c *gin.Context) {
	page := view.Render(s.state.Snapshot(), CriteriaFromRequest(c), s.state.Columns())

	c.HTML(http.StatusOK, "index.html", templateData{
		Title:               pageTitle,
		VatPlaceholder:      vatPlaceholder,
		SupplierPlaceholder: supplierPlaceholder,
		AllYearsLabel:       allYearsLabel,
		NoResultsText:       noResultsText,
		LoadingText:         loadingText,
		LoadErrorText:       loadErrorText,
		Page:                page,
	})
}

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Phase    view.Phase `json:"phase"`
	Records  int        `json:"records"`
	Columns  int        `json:"columns"`
	LoadID   string     `json:"load_id,omitempty"`
	LoadedAt string     `json:"loaded_at,omitempty"`
	Error    string     `json:"error,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	snap := s.state.Snapshot()

	resp := healthResponse{
		Phase:   snap.Phase,
		Records: len(snap.Records),
		Columns: len(snap.Headers),
		LoadID:  snap.LoadID,
	}
	if !snap.LoadedAt.IsZero() {
		resp.LoadedAt = snap.LoadedAt.UTC().Format(time.RFC3339)
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}

	status := http.StatusOK
	if snap.Phase == view.PhaseError {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

func (s *Server) handleData(c *gin.Context) {
	// The bytes are ISO-8859-7; the extension-based type would claim UTF-8.
	c.Header("Content-Type", "text/csv; charset=iso-8859-7")
	c.FileFromFS(config.DataFile, http.FS(s.opts.Static))
}
