package route

import (
	"github.com/gofiber/fiber/v2"
	service "github.com/sorumat/sorumat-go/pkg/services"
)

// SetupRoutes wires every route of the application.
func SetupRoutes(app *fiber.App) {
	services := service.NewServiceContainer()

	SetupAppRoutes(app)
	SetupOcrRoutes(app, services)
	SetupAuthRoutes(app, services)
}
