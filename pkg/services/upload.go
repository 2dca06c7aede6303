package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/sorumat/sorumat-go/pkg/configs"
	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// UploadFieldName is the multipart form field the image must arrive in.
const UploadFieldName = "image"

// ValidationError marks a client fault detected before any expensive work.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UploadService validates an incoming file and stages it on disk. Invalid
// input is rejected before any staging write happens.
type UploadService struct {
	uploadDir string
}

// NewUploadService creates the upload gate.
func NewUploadService(config *configs.EnvConfig) *UploadService {
	return &UploadService{uploadDir: config.OCR.UploadDir}
}

// Accept validates fileHeader and, on success, writes it to the staging
// directory under a collision-resistant name. A *ValidationError return is
// a client fault; any other error is a server fault.
func (s *UploadService) Accept(fileHeader *multipart.FileHeader) (*model.UploadedImage, error) {
	if fileHeader == nil {
		return nil, &ValidationError{Message: fmt.Sprintf("no file uploaded; expected multipart field %q", UploadFieldName)}
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !model.AllowedImageMimeTypes[mimeType] {
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported file type %q; allowed types are jpeg, png, gif, bmp, webp", mimeType)}
	}

	if fileHeader.Size > model.MaxUploadBytes {
		return nil, &ValidationError{Message: fmt.Sprintf("file too large (%d bytes); the limit is %d bytes", fileHeader.Size, int64(model.MaxUploadBytes))}
	}

	if err := utils.EnsureDir(s.uploadDir); err != nil {
		return nil, err
	}

	stagedPath := filepath.Join(s.uploadDir, utils.StagingFileName(UploadFieldName, fileHeader.Filename))
	if err := utils.SaveMultipartFile(fileHeader, stagedPath); err != nil {
		return nil, err
	}

	return &model.UploadedImage{
		StoragePath: stagedPath,
		MimeType:    mimeType,
		SizeBytes:   fileHeader.Size,
	}, nil
}
