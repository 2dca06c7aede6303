package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sorumat/sorumat-go/pkg/controllers"
	_interface "github.com/sorumat/sorumat-go/pkg/interfaces"
)

// SetupOcrRoutes wires the OCR pipeline route.
func SetupOcrRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	app.Post("/ocr", controller.ProcessImage(services.PipelineService))
}
