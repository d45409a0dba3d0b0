package reconcile

import (
	"context"
	"fmt"

	"blog-sync/core/reconcile"
	"blog-sync/core/remote"
	"blog-sync/feature/blog/models"
	"blog-sync/feature/blog/store"

	"go.uber.org/zap"
)

// ClientFactory returns a remote client with a fresh connection pool.
type ClientFactory func() remote.Client

// KindResult is the outcome of reconciling one kind.
type KindResult struct {
	Kind   models.Kind              `json:"kind"`
	Plan   *reconcile.ReconcilePlan `json:"plan"`
	Result *reconcile.ApplyResult   `json:"result"`
}

// Reconciler pushes local posts and comments to the remote system.
// It never writes the local store.
type Reconciler struct {
	store       *store.Store
	endpoints   models.Endpoints
	newClient   ClientFactory
	maxInFlight int
	logger      *zap.Logger
}

// NewReconciler creates a reconciler. maxInFlight caps concurrent calls per batch; 0 is unbounded.
func NewReconciler(s *store.Store, endpoints models.Endpoints, newClient ClientFactory, maxInFlight int, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		store:       s,
		endpoints:   endpoints,
		newClient:   newClient,
		maxInFlight: maxInFlight,
		logger:      logger,
	}
}

// Run reconciles posts, then comments. A failing kind aborts the run; the results
// of the kinds already processed are returned with the error.
func (r *Reconciler) Run(ctx context.Context, opts reconcile.ReconcileOptions) ([]KindResult, error) {
	var results []KindResult

	for _, kind := range models.Kinds() {
		result, err := r.runKind(ctx, kind, opts)
		if result != nil {
			results = append(results, *result)
		}
		if err != nil {
			return results, fmt.Errorf("failed to reconcile %s: %w", kind, err)
		}
	}

	return results, nil
}

func (r *Reconciler) runKind(ctx context.Context, kind models.Kind, opts reconcile.ReconcileOptions) (*KindResult, error) {
	client := r.newClient()
	defer client.Close()

	spec := &reconcile.Spec{Adapter: r.adapterFor(kind), MaxInFlight: r.maxInFlight}

	plan, err := reconcile.ReconcileWithPlan(ctx, spec, client)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Reconcile plan built",
		zap.String("kind", string(kind)),
		zap.Int("remote", plan.Summary.RemoteItems),
		zap.Int("in_sync", plan.Summary.InSync),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("deletes", plan.Summary.Deletes),
		zap.Int("creates", plan.Summary.Creates),
		zap.Bool("dry_run", opts.DryRun),
	)

	result, err := reconcile.ApplyPlan(ctx, spec, client, plan, opts)
	kindResult := &KindResult{Kind: kind, Plan: plan, Result: result}
	if err != nil {
		return kindResult, err
	}

	if len(result.Warnings) > 0 {
		r.logger.Warn("Reconcile finished with side-effect warnings",
			zap.String("kind", string(kind)),
			zap.Int("warnings", len(result.Warnings)),
		)
	}

	return kindResult, nil
}

func (r *Reconciler) adapterFor(kind models.Kind) reconcile.Adapter {
	if kind == models.KindComment {
		return NewCommentAdapter(r.store, r.endpoints)
	}
	return NewPostAdapter(r.store, r.endpoints)
}
