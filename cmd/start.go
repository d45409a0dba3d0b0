package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-sync/core/jobs"
	"blog-sync/core/loader"
	"blog-sync/core/logger"
	"blog-sync/core/middleware/auth"
	"blog-sync/core/middleware/rayid"
	"blog-sync/core/reconcile"
	"blog-sync/feature/blog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "blog-sync/docs/swagger"
)

// @title blog-sync API
// @version 1.0
// @description Trigger and inspect the blog bootstrap and synchronize jobs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync server",
	Long: `Starts the HTTP trigger API and, when jobs.interval_seconds is set,
runs synchronize on that schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Configuration, logger, database, service
		a, err := newApp(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer a.Close()
		logg := a.logger

		if !a.cfg.Server.IsValidPort() {
			logg.Fatal("Invalid server port", zap.String("port", a.cfg.Server.Port))
		}

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(blog.NewFeature(a.service))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Scheduled synchronize
		if interval := a.cfg.Jobs.IntervalSeconds; interval > 0 {
			job := jobs.NewPeriodic(blog.RunSynchronize, time.Duration(interval)*time.Second, func(ctx context.Context) error {
				_, err := a.service.Synchronize(ctx, reconcile.ReconcileOptions{})
				return err
			}, logg)
			go job.Run(ctx)
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(a.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
