package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sorumat/sorumat-go/pkg/controllers"
)

// SetupAppRoutes wires the informational routes.
func SetupAppRoutes(app *fiber.App) {
	app.Get("/", controller.Root())
	app.Get("/health", controller.Health())
	app.Get("/metrics", controller.Metrics())
	app.Get("/debug-env", controller.DebugEnv())
}
