package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd reports the local record counts.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the number of local posts and comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		status, err := a.service.Status(cmd.Context())
		if err != nil {
			return err
		}

		a.logger.Info("Local store",
			zap.String("driver", a.cfg.Database.Driver),
			zap.Int64("posts", status.Posts),
			zap.Int64("comments", status.Comments),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
