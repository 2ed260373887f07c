package repositories

import (
	"context"
	"io"
)

// FileStore uploads attachment files to object storage buckets and returns
// their public URLs.
type FileStore interface {
	Upload(ctx context.Context, bucket, objectName string, content io.Reader, contentType string) (publicURL string, err error)
}
