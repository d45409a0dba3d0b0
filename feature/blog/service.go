package blog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blog-sync/core/reconcile"
	"blog-sync/core/storage"
	"blog-sync/feature/blog/bootstrap"
	"blog-sync/feature/blog/models"
	blogreconcile "blog-sync/feature/blog/reconcile"
	"blog-sync/feature/blog/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	RunBootstrap   = "bootstrap"
	RunSynchronize = "synchronize"

	dryRunSuffix = ":dry-run"
)

// runKey separates dry runs from real runs of the same job.
func runKey(run string, dryRun bool) string {
	if dryRun {
		return run + dryRunSuffix
	}
	return run
}

// Options tunes the sync jobs.
type Options struct {
	// ChunkSize is the bootstrap comment fan-out per chunk.
	ChunkSize int
	// MaxInFlight caps concurrent remote mutations per reconcile batch.
	MaxInFlight int
}

// RunRecord describes the last run of a job.
type RunRecord struct {
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	DryRun     bool          `json:"dry_run,omitempty"`
	Error      string        `json:"error,omitempty"`
	ArchiveKey string        `json:"archive_key,omitempty"`
	Report     any           `json:"report,omitempty"`
}

// Status is the local record counts and the last run of each job.
type Status struct {
	Posts           int64      `json:"posts"`
	Comments        int64      `json:"comments"`
	LastBootstrap   *RunRecord `json:"last_bootstrap,omitempty"`
	LastSynchronize *RunRecord `json:"last_synchronize,omitempty"`
	LastDryRun      *RunRecord `json:"last_dry_run,omitempty"`
}

// SyncReport is the result of a synchronize run.
type SyncReport struct {
	DryRun  bool                       `json:"dry_run"`
	Results []blogreconcile.KindResult `json:"results"`
}

// Service runs the bootstrap and synchronize jobs. Concurrent calls of the same
// job share one run.
type Service struct {
	store     *store.Store
	endpoints models.Endpoints
	newClient blogreconcile.ClientFactory
	opts      Options
	archive   *storage.Archive
	logger    *zap.Logger

	group singleflight.Group

	mu      sync.RWMutex
	lastRun map[string]*RunRecord
}

// NewService creates the blog sync service. archive may be nil to disable report archiving.
func NewService(s *store.Store, endpoints models.Endpoints, newClient blogreconcile.ClientFactory, opts Options, archive *storage.Archive, logger *zap.Logger) *Service {
	return &Service{
		store:     s,
		endpoints: endpoints,
		newClient: newClient,
		opts:      opts,
		archive:   archive,
		logger:    logger,
		lastRun:   make(map[string]*RunRecord),
	}
}

// Bootstrap imports the remote posts and comments into the empty store.
func (s *Service) Bootstrap(ctx context.Context) (*bootstrap.Report, error) {
	v, err, shared := s.group.Do(RunBootstrap, func() (any, error) {
		start := time.Now()

		client := s.newClient()
		defer client.Close()

		importer := bootstrap.NewImporter(s.store, client, s.endpoints, s.opts.ChunkSize, s.logger)
		report, err := importer.Run(ctx)

		record := &RunRecord{StartedAt: start, Duration: time.Since(start)}
		if report != nil {
			record.Report = report
		}
		s.finish(ctx, RunBootstrap, record, err)
		return report, err
	})
	if shared {
		s.logger.Debug("Joined in-flight bootstrap run")
	}
	if err != nil {
		return nil, err
	}
	return v.(*bootstrap.Report), nil
}

// Synchronize pushes the local store to the remote API. Results of the kinds
// processed before a failure are returned with the error.
func (s *Service) Synchronize(ctx context.Context, opts reconcile.ReconcileOptions) (*SyncReport, error) {
	v, err, shared := s.group.Do(runKey(RunSynchronize, opts.DryRun), func() (any, error) {
		start := time.Now()

		r := blogreconcile.NewReconciler(s.store, s.endpoints, s.newClient, s.opts.MaxInFlight, s.logger)
		results, err := r.Run(ctx, opts)
		report := &SyncReport{DryRun: opts.DryRun, Results: results}

		record := &RunRecord{
			StartedAt: start,
			Duration:  time.Since(start),
			DryRun:    opts.DryRun,
			Report:    report,
		}
		s.finish(ctx, RunSynchronize, record, err)
		return report, err
	})
	if shared {
		s.logger.Debug("Joined in-flight synchronize run", zap.Bool("dry_run", opts.DryRun))
	}

	report, _ := v.(*SyncReport)
	return report, err
}

// Status returns the local counts and the last runs.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	posts, err := s.store.Count(ctx, models.KindPost)
	if err != nil {
		return nil, err
	}
	comments, err := s.store.Count(ctx, models.KindComment)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Status{
		Posts:           posts,
		Comments:        comments,
		LastBootstrap:   s.lastRun[RunBootstrap],
		LastSynchronize: s.lastRun[RunSynchronize],
		LastDryRun:      s.lastRun[runKey(RunSynchronize, true)],
	}, nil
}

// Reports lists the archived reports of run.
func (s *Service) Reports(ctx context.Context, run string) ([]storage.Entry, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if run != RunBootstrap && run != RunSynchronize {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRun, run)
	}
	return s.archive.List(ctx, run)
}

// finish records and archives a run. Archive failures are only logged.
func (s *Service) finish(ctx context.Context, run string, record *RunRecord, runErr error) {
	if runErr != nil {
		record.Error = runErr.Error()
		s.logger.Error("Run failed", zap.String("run", run), zap.Error(runErr))
	}

	if s.archive != nil && record.Report != nil {
		key, err := s.archive.Save(context.WithoutCancel(ctx), run, record.StartedAt, record)
		if err != nil {
			s.logger.Warn("Failed to archive run report", zap.String("run", run), zap.Error(err))
		} else {
			record.ArchiveKey = key
		}
	}

	s.mu.Lock()
	s.lastRun[runKey(run, record.DryRun)] = record
	s.mu.Unlock()
}
