package services

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/middleware"
)

// uploadAttachments stores every file best-effort and returns one manifest
// entry per file. A failed upload is logged and recorded in the manifest; it
// never aborts the remaining files.
func uploadAttachments(ctx context.Context, store portsrepo.FileStore, bucket string, files []dto.UploadedFile) []domain.AttachmentResult {
	logger := middleware.GetLoggerFromCtx(ctx)

	results := make([]domain.AttachmentResult, 0, len(files))
	for _, f := range files {
		result := domain.AttachmentResult{Field: f.Field, FileName: f.FileName}

		objectName := newObjectName(f.FileName)
		url, err := store.Upload(ctx, bucket, objectName, bytes.NewReader(f.Content), f.ContentType)
		if err != nil {
			logger.Error("Attachment upload failed",
				slog.String("bucket", bucket),
				slog.String("field", f.Field),
				slog.String("file_name", f.FileName),
				slog.String("error", err.Error()),
			)
			result.Error = err.Error()
		} else {
			result.URL = url
		}
		results = append(results, result)
	}
	return results
}

// newObjectName builds a collision-free object name, keeping the original
// file extension so the storage CDN serves the right content type.
func newObjectName(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return uuid.NewString() + ext
}
