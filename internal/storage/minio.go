package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"brewery/internal/config"
)

// minioStorage implements Storage on an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a MinIO-backed Storage. Outgoing calls are traced through
// otelhttp. The bucket is created when missing.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	transport, err := minio.DefaultTransport(cfg.UseSSL)
	if err != nil {
		return nil, fmt.Errorf("minio transport: %w", err)
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: otelhttp.NewTransport(transport),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket}, nil
}

// Put uploads an object using streaming I/O only (no local disk).
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, err
	}
	modified := info.LastModified
	if modified.IsZero() {
		modified = time.Now()
	}
	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  opt.ContentType,
		LastModified: modified,
		Metadata:     opt.Metadata,
	}, nil
}

// PresignGet generates a pre-signed URL for GET with the specified expiry.
func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
