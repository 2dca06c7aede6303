package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sorumat/sorumat-go/pkg/controllers"
	_interface "github.com/sorumat/sorumat-go/pkg/interfaces"
)

// SetupAuthRoutes wires the identity provider proxy routes.
func SetupAuthRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	auth := app.Group("/auth")
	auth.Post("/signup", controller.Signup(services.IdentityService))
	auth.Post("/signin", controller.Signin(services.IdentityService))
}
