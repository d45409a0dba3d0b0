// Package storage archives run reports in an S3-compatible bucket.
//
// It wraps the MinIO Go client behind the Client interface, which keeps the
// archive testable with the mocks in core/storage/mocks, and works with AWS S3
// and self-hosted MinIO alike.
//
// # Archive
//
// Reports are JSON objects keyed <prefix>/<run>/<unix>.json, where run is
// "bootstrap" or "synchronize":
//   - EnsureBucket: creates the bucket on first use.
//   - Save: uploads a report and applies the retention.
//   - List / Load: browse and read archived reports.
//   - Prune: keeps the newest N reports of a run.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	archive := storage.NewArchive(client, cfg, logger)
//	key, err := archive.Save(ctx, "synchronize", time.Now(), results)
package storage
