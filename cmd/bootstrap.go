package cmd

import (
	"errors"
	"fmt"

	"blog-sync/feature/blog"
	"blog-sync/feature/blog/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bootstrapJSON bool

// bootstrapCmd imports the remote content into the empty local store.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Import every remote post and comment into the empty local store",
	Long: `Lists the remote posts, fetches their comments chunk by chunk and stores
everything in one transaction. Refuses to run when posts or comments already exist.`,
	RunE: runBootstrap,
}

func init() {
	bootstrapCmd.Flags().BoolVar(&bootstrapJSON, "json", false, "Write the import report as JSON to jobs.report_dir")
	RootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("Starting bootstrap", zap.String("posts_url", a.cfg.Remote.PostsURL))

	report, err := a.service.Bootstrap(cmd.Context())
	if err != nil {
		if errors.Is(err, bootstrap.ErrPrecondition) {
			return fmt.Errorf("%w (bootstrap only runs against an empty store)", err)
		}
		return err
	}

	a.logger.Info("Bootstrap report",
		zap.Int("posts", report.Posts),
		zap.Int("comments", report.Comments),
		zap.Int("chunks", report.Chunks),
		zap.Duration("duration", report.Duration),
	)

	if bootstrapJSON {
		path, err := a.writeReport(blog.RunBootstrap, report)
		if err != nil {
			return err
		}
		a.logger.Info("Report written", zap.String("path", path))
	}
	return nil
}
