package _interface

import (
	"context"
	"mime/multipart"

	model "github.com/sorumat/sorumat-go/pkg/types/models"
)

// PipelineService runs the whole upload → OCR → refinement sequence for one
// request and yields exactly one PipelineOutcome.
type PipelineService interface {
	// Process never returns an error: every failure mode is a PipelineOutcome
	// variant. fileHeader may be nil when the form carried no file.
	Process(ctx context.Context, fileHeader *multipart.FileHeader) model.PipelineOutcome
}
