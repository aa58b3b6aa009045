package view

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/greek-csv-viewer/internal/csvparser"
	"github.com/ginjaninja78/greek-csv-viewer/internal/types"
)

// Phase is the observable load phase of the view.
type Phase string

const (
	// PhaseLoading: the load has not completed; the record set is empty.
	PhaseLoading Phase = "loading"
	// PhaseReady: the load completed; the record set may still be empty.
	PhaseReady Phase = "ready"
	// PhaseError: the load failed; the record set stays empty.
	PhaseError Phase = "error"
)

// Loader is the one-shot fetch, decode and parse pipeline.
type Loader interface {
	LoadWithID(ctx context.Context, loadID string) (*csvparser.Result, error)
}

// Options configures a State.
type Options struct {
	Columns Columns

	// LoadTimeout bounds the load. Zero means the load may run forever.
	LoadTimeout time.Duration

	Logger *slog.Logger
}

// Snapshot is a consistent read of the view state.
type Snapshot struct {
	Phase    Phase
	LoadID   string
	Err      error
	Headers  []string
	Records  types.RecordSet
	Years    []string
	LoadedAt time.Time
}

// State owns the record set. The record set and the distinct years are
// written exactly once, when the load completes, and are read-only after
// that. No transition ever leads back to PhaseLoading.
type State struct {
	opts   Options
	logger *slog.Logger

	once sync.Once
	done chan struct{}

	mu   sync.RWMutex
	snap Snapshot
}

// NewState returns a State in PhaseLoading with an empty record set.
func NewState(opts Options) *State {
	if opts.Columns == (Columns{}) {
		opts.Columns = DefaultColumns()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &State{
		opts:   opts,
		logger: logger,
		done:   make(chan struct{}),
		snap: Snapshot{
			Phase:   PhaseLoading,
			Headers: []string{},
			Records: types.RecordSet{},
			Years:   []string{},
		},
	}
}

// Columns returns the column names the view filters on.
func (s *State) Columns() Columns {
	return s.opts.Columns
}

// Start triggers the asynchronous load. Only the first call has an effect;
// later calls return immediately. Renders may happen before and after the
// load completes.
func (s *State) Start(ctx context.Context, loader Loader) {
	s.once.Do(func() {
		loadID := uuid.NewString()

		s.mu.Lock()
		s.snap.LoadID = loadID
		s.mu.Unlock()

		go s.run(ctx, loader, loadID)
	})
}

func (s *State) run(ctx context.Context, loader Loader, loadID string) {
	defer close(s.done)

	if s.opts.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.LoadTimeout)
		defer cancel()
	}

	result, err := loader.LoadWithID(ctx, loadID)
	if err != nil {
		s.logger.Error("load failed", "load_id", loadID, "error", err)

		s.mu.Lock()
		s.snap.Phase = PhaseError
		s.snap.Err = err
		s.mu.Unlock()
		return
	}

	years := ComputeDistinctYears(result.Records, s.opts.Columns.Year)

	s.mu.Lock()
	s.snap.Phase = PhaseReady
	s.snap.Headers = result.Headers
	s.snap.Records = result.Records
	s.snap.Years = years
	s.snap.LoadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Debug("view ready",
		"load_id", loadID,
		"records", len(result.Records),
		"years", len(years))
}

// Wait blocks until the load finished or ctx is done.
func (s *State) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state. The returned slices are shared and
// must be treated as read-only.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
