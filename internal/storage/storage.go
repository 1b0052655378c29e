// Package storage contains the S3-compatible object storage used to publish
// generated API documentation. Implementations stream from readers and never
// stage files on local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object storage client used by snippet publishing.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
