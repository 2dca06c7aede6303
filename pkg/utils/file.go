package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates dir if it does not exist yet. Creating an existing
// directory is a no-op.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// StagingFileName builds a collision-resistant name for a staged upload:
// the form field name, a nanosecond timestamp, a random suffix and the
// original extension. Concurrent requests never collide on it.
func StagingFileName(fieldName, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixNano(), uuid.New().String(), ext)
}

// SaveMultipartFile writes an uploaded file to destPath.
func SaveMultipartFile(fileHeader *multipart.FileHeader, destPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return writeStagedFile(src, destPath)
}

// writeStagedFile copies src into a new file at destPath. A failed or
// truncated write must not outlive the request: the partial file is removed
// before the error is returned, since nothing downstream ever tracks it.
func writeStagedFile(src io.Reader, destPath string) error {
	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create staged file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to write staged file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to finalize staged file: %w", err)
	}

	return nil
}

// FileExists reports whether path points to an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
