package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"blog-sync/core/transport"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the subset of the MinIO API the report archive uses.
type Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject returns the object body; the caller closes it.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	// RemoveObjects deletes every object received on objectsCh and reports failures
	// on the returned channel, which is closed when done.
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
}

// NewClient creates a MinIO client for the archive bucket. The connection is
// lazy: the first EnsureBucket call is what reaches the server.
func NewClient(cfg Config) (Client, error) {
	host, secure := splitEndpoint(cfg.Endpoint, cfg.UseSSL)

	mc, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure,
		Region:    cfg.Region,
		Transport: transport.New(transport.Options{TimeoutSeconds: cfg.TimeoutSeconds}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &minioClient{Client: mc}, nil
}

// splitEndpoint strips the scheme MinIO does not accept. An https:// scheme
// turns TLS on regardless of useSSL; http:// turns it off.
func splitEndpoint(endpoint string, useSSL bool) (string, bool) {
	if host, ok := strings.CutPrefix(endpoint, "https://"); ok {
		return strings.TrimSuffix(host, "/"), true
	}
	if host, ok := strings.CutPrefix(endpoint, "http://"); ok {
		return strings.TrimSuffix(host, "/"), false
	}
	return strings.TrimSuffix(endpoint, "/"), useSSL
}

type minioClient struct {
	*minio.Client
}

func (c *minioClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}
