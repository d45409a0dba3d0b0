package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"blog-sync/core/config"
	"blog-sync/core/database"
	"blog-sync/core/logger"
	"blog-sync/core/remote"
	"blog-sync/core/storage"
	"blog-sync/feature/blog"
	"blog-sync/feature/blog/models"
	"blog-sync/feature/blog/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app is the wiring shared by every command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   *store.Store
	service *blog.Service
}

// newApp loads the configuration and builds the logger, database, archive and service.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Debug("Connected to database", zap.String("driver", cfg.Database.Driver))

	s := store.New(db, cfg.Database.BatchSize)
	if cfg.Database.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	archive, err := newArchive(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	endpoints := models.Endpoints{
		PostsURL:          cfg.Remote.PostsURL,
		CommentsURL:       cfg.Remote.CommentsURL,
		CommentsByPostURL: cfg.Remote.CommentsByPostURL,
	}
	factory := func() remote.Client {
		return remote.NewClient(cfg.Remote, l)
	}
	opts := blog.Options{
		ChunkSize:   cfg.Jobs.ChunkSize,
		MaxInFlight: cfg.Remote.MaxInFlight,
	}

	return &app{
		cfg:     cfg,
		logger:  l,
		db:      db,
		store:   s,
		service: blog.NewService(s, endpoints, factory, opts, archive, l),
	}, nil
}

// newArchive returns nil when the archive is disabled. An unreachable bucket is
// only logged: archiving never fails a run.
func newArchive(ctx context.Context, cfg *config.Config, l *zap.Logger) (*storage.Archive, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	archive := storage.NewArchive(client, cfg.Storage, l)
	if err := archive.EnsureBucket(ctx, cfg.Storage.Region); err != nil {
		l.Warn("Report archive unavailable", zap.Error(err))
	}
	return archive, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}

// writeReport stores a JSON report in the configured report directory.
func (a *app) writeReport(run string, report any) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.MkdirAll(a.cfg.Jobs.ReportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(a.cfg.Jobs.ReportDir, fmt.Sprintf("%s-%d.json", run, time.Now().Unix()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
