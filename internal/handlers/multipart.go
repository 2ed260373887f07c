package handlers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rumahamal/ref26-backend/internal/dto"
)

// maxIndexedFiles bounds how many attachment slots a single form may carry.
const maxIndexedFiles = 50

// readIndexedFiles collects the attachment files posted as "<prefix>_0" ..
// "<prefix>_N-1", where N comes from the countField form value. Empty slots
// are skipped; a slot that exists but cannot be read fails the whole request.
func readIndexedFiles(c *gin.Context, prefix, countField string) ([]dto.UploadedFile, error) {
	count, err := strconv.Atoi(c.PostForm(countField))
	if err != nil || count <= 0 {
		return nil, nil
	}
	if count > maxIndexedFiles {
		count = maxIndexedFiles
	}

	files := make([]dto.UploadedFile, 0, count)
	for i := 0; i < count; i++ {
		field := fmt.Sprintf("%s_%d", prefix, i)
		header, err := c.FormFile(field)
		if err != nil {
			continue
		}

		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", field, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", field, err)
		}

		files = append(files, dto.UploadedFile{
			Field:       field,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return files, nil
}
