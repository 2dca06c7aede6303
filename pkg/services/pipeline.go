package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// PipelineService sequences the upload gate, the OCR stage and the
// refinement stage for one request. Nothing is shared between concurrent
// requests except the staging directory namespace.
type PipelineService struct {
	upload *UploadService
	ocr    *OcrService
	refine *RefineService
}

// NewPipelineService composes the three stages into the request pipeline.
func NewPipelineService(upload *UploadService, ocr *OcrService, refine *RefineService) *PipelineService {
	return &PipelineService{upload: upload, ocr: ocr, refine: refine}
}

// Process runs the full lifecycle and yields exactly one PipelineOutcome.
// The janitor backstop guarantees that the staged file and the OCR worker
// are released on every control path, including panics; both releases are
// idempotent, so the OCR stage's early cleanup on the happy path is safe.
func (s *PipelineService) Process(ctx context.Context, fileHeader *multipart.FileHeader) (outcome model.PipelineOutcome) {
	janitor := NewJanitor()
	defer func() {
		if r := recover(); r != nil {
			utils.Error("pipeline", "unexpected failure: %v", r)
			outcome = model.FailureOutcome(fmt.Sprintf("unexpected failure: %v", r))
		}
		janitor.ReleaseAll()
	}()

	image, err := s.upload.Accept(fileHeader)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return model.RejectedOutcome(validationErr.Message)
		}
		utils.Error("pipeline", "staging failed: %v", err)
		return model.FailureOutcome(err.Error())
	}

	raw, err := s.ocr.Extract(image, janitor)
	if err != nil {
		if errors.Is(err, ErrNoTextDetected) {
			return model.NoTextOutcome()
		}
		utils.Error("pipeline", "OCR stage failed: %v", err)
		return model.FailureOutcome(err.Error())
	}

	result, warning := s.refine.Refine(ctx, raw)

	return model.SuccessOutcome(result, raw, warning)
}
