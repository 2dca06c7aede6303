package response

import model "github.com/sorumat/sorumat-go/pkg/types/models"

// Ocr is the success response for POST /ocr.
type Ocr struct {
	OcrResult model.StructuredResult `json:"ocr_result"`
	RawText   string                 `json:"raw_text"`
	Success   bool                   `json:"success"`
	Warning   string                 `json:"warning,omitempty"`
}

// ValidationError is the 400 response body for rejected uploads.
type ValidationError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ProcessingError is the 422/500 response body for failed pipelines.
type ProcessingError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Success bool   `json:"success"`
}
