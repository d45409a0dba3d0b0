package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Entry describes one archived report.
type Entry struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archive stores JSON run reports as objects under <prefix>/<run>/<unix>.json.
type Archive struct {
	client Client
	bucket string
	prefix string
	retain int
	logger *zap.Logger
}

// NewArchive creates an archive writing to the bucket and prefix of cfg.
func NewArchive(client Client, cfg Config, logger *zap.Logger) *Archive {
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		retain: cfg.Retain,
		logger: logger,
	}
}

// EnsureBucket creates the bucket when it does not exist.
func (a *Archive) EnsureBucket(ctx context.Context, region string) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	a.logger.Info("Created report bucket", zap.String("bucket", a.bucket))
	return nil
}

// Save uploads report as the run's report taken at at, returning the object key.
// When a retention is configured, older reports of the run are pruned afterwards.
func (a *Archive) Save(ctx context.Context, run string, at time.Time, report any) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s report: %w", run, err)
	}

	key := a.key(run, at)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if a.retain > 0 {
		if _, err := a.Prune(ctx, run, a.retain); err != nil {
			a.logger.Warn("Report pruning failed", zap.String("run", run), zap.Error(err))
		}
	}

	return key, nil
}

// List returns the archived reports of run, oldest first.
func (a *Archive) List(ctx context.Context, run string) ([]Entry, error) {
	var entries []Entry
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.runPrefix(run),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s reports: %w", run, obj.Err)
		}
		entries = append(entries, Entry{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Load downloads the report stored at key and decodes it into out.
func (a *Archive) Load(ctx context.Context, key string, out any) error {
	reader, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer reader.Close()

	if err := json.NewDecoder(reader).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// Prune deletes all but the newest keep reports of run and returns how many were removed.
func (a *Archive) Prune(ctx context.Context, run string, keep int) (int, error) {
	entries, err := a.List(ctx, run)
	if err != nil {
		return 0, err
	}
	if len(entries) <= keep {
		return 0, nil
	}

	stale := entries[:len(entries)-keep]
	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, e := range stale {
		objectsCh <- minio.ObjectInfo{Key: e.Key}
	}
	close(objectsCh)

	var firstErr error
	removed := len(stale)
	for rErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		removed--
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to remove %s: %w", rErr.ObjectName, rErr.Err)
		}
	}
	if firstErr != nil {
		return removed, firstErr
	}

	a.logger.Debug("Pruned reports", zap.String("run", run), zap.Int("removed", removed))
	return removed, nil
}

func (a *Archive) runPrefix(run string) string {
	return path.Join(a.prefix, run) + "/"
}

func (a *Archive) key(run string, at time.Time) string {
	return path.Join(a.prefix, run, fmt.Sprintf("%d.json", at.Unix()))
}
