package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sorumat/sorumat-go/pkg/interfaces"
	service "github.com/sorumat/sorumat-go/pkg/services"
	response "github.com/sorumat/sorumat-go/pkg/types/dtos/responses"
	model "github.com/sorumat/sorumat-go/pkg/types/models"
	"github.com/valyala/fasthttp"
)

// ProcessImage handles POST /ocr. The pipeline yields one PipelineOutcome
// and this handler is the only place it is mapped to a transport status and
// body, keeping the status table in one spot.
func ProcessImage(pipeline _interface.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A missing file flows to the gate as nil so the rejection names
		// the expected field; a body that is multipart but unparsable is
		// reported as such.
		fileHeader, err := c.FormFile(service.UploadFieldName)
		if err != nil {
			if !errors.Is(err, fasthttp.ErrMissingFile) && !errors.Is(err, fasthttp.ErrNoMultipartForm) {
				return c.Status(fiber.StatusBadRequest).JSON(response.ValidationError{
					Error:   "Invalid file upload",
					Details: "malformed multipart body: " + err.Error(),
				})
			}
			fileHeader = nil
		}

		outcome := pipeline.Process(c.UserContext(), fileHeader)

		switch outcome.Kind {
		case model.OutcomeSuccess:
			return c.Status(fiber.StatusOK).JSON(response.Ocr{
				OcrResult: outcome.Result,
				RawText:   outcome.RawText,
				Success:   true,
				Warning:   outcome.Warning,
			})

		case model.OutcomeValidationRejected:
			return c.Status(fiber.StatusBadRequest).JSON(response.ValidationError{
				Error:   "Invalid file upload",
				Details: outcome.Reason,
			})

		case model.OutcomeNoTextDetected:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(response.ProcessingError{
				Error:   "OCR processing failed",
				Details: "No text detected in the image",
				Success: false,
			})

		default:
			return c.Status(fiber.StatusInternalServerError).JSON(response.ProcessingError{
				Error:   "OCR processing failed",
				Details: outcome.Reason,
				Success: false,
			})
		}
	}
}
