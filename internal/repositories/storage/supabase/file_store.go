// Package supabase adapts Supabase object storage to the FileStore port.
package supabase

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
)

// FileStore uploads attachments to Supabase storage buckets and resolves
// their public URLs.
type FileStore struct {
	client *storage_go.Client
}

// NewFileStore creates a FileStore against the project's storage endpoint.
// The service key must belong to a role allowed to write the buckets.
func NewFileStore(supabaseURL, serviceKey string) *FileStore {
	endpoint := strings.TrimRight(supabaseURL, "/") + "/storage/v1"
	return &FileStore{client: storage_go.NewClient(endpoint, serviceKey, nil)}
}

var _ portsrepo.FileStore = (*FileStore)(nil)

// Upload stores content under objectName in the bucket and returns its
// public URL.
func (s *FileStore) Upload(ctx context.Context, bucket, objectName string, content io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.UploadFile(bucket, objectName, content, storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, bucket, err)
	}

	res := s.client.GetPublicUrl(bucket, objectName)
	return res.SignedURL, nil
}
