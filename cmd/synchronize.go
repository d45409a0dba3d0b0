package cmd

import (
	"blog-sync/core/reconcile"
	"blog-sync/feature/blog"
	blogreconcile "blog-sync/feature/blog/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync bool
	jsonSync   bool
)

// synchronizeCmd pushes local changes to the remote API.
var synchronizeCmd = &cobra.Command{
	Use:   "synchronize",
	Short: "Push local posts and comments to the remote API",
	Long: `Compares the remote posts and comments with the local store and issues the
create, update and delete calls that make the remote side mirror it.

Examples:
  # Report only
  synchronize --dry-run

  # Apply and keep a JSON report
  synchronize --json`,
	RunE: runSynchronize,
}

func init() {
	synchronizeCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan only, issue no remote call")
	synchronizeCmd.Flags().BoolVar(&jsonSync, "json", false, "Write the run report as JSON to jobs.report_dir")
	RootCmd.AddCommand(synchronizeCmd)
}

func runSynchronize(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("Starting synchronize", zap.Bool("dry_run", dryRunSync))

	report, runErr := a.service.Synchronize(cmd.Context(), reconcile.ReconcileOptions{DryRun: dryRunSync})
	if report != nil {
		for _, result := range report.Results {
			printReconcileReport(a.logger, result)
		}
	}

	if jsonSync && report != nil {
		path, err := a.writeReport(blog.RunSynchronize, report)
		if err != nil {
			a.logger.Error("Failed to write report", zap.Error(err))
		} else {
			a.logger.Info("Report written", zap.String("path", path))
		}
	}

	if runErr != nil {
		return runErr
	}
	if dryRunSync {
		a.logger.Info("Dry-run mode: No changes were made.")
	}
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, result blogreconcile.KindResult) {
	s := result.Plan.Summary

	l.Info("Reconciliation report",
		zap.String("kind", string(result.Kind)),
		zap.Int("remote_items", s.RemoteItems),
		zap.Int("in_sync", s.InSync),
		zap.Int("updates", s.Updates),
		zap.Int("deletes", s.Deletes),
		zap.Int("creates", s.Creates),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := min(5, len(result.Plan.Actions))
	for _, action := range result.Plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.Int64("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(result.Plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(result.Plan.Actions)-maxShow))
	}

	if r := result.Result; r != nil && !r.DryRun {
		l.Info("Applied actions",
			zap.String("kind", string(result.Kind)),
			zap.Int("succeeded", r.Succeeded),
			zap.Int("warnings", len(r.Warnings)),
			zap.Duration("duration", r.Duration),
		)
		for _, w := range r.Warnings {
			l.Warn("Unexpected remote status",
				zap.String("action", string(w.Action)),
				zap.Int64("key", w.Key),
				zap.String("url", w.URL),
				zap.Int("status", w.Status),
			)
		}
	}
}
