package serverless

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sorumat/sorumat-go/pkg/configs"
	route "github.com/sorumat/sorumat-go/pkg/routes"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

var app *fiber.App

// The app instance lives in a package variable so cold starts are paid once
// per serverless container, not once per invocation.
func init() {
	utils.InitMetrics()

	app = fiber.New(fiber.Config{
		AppName:               configs.GetConfig().Server.AppName,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	route.SetupRoutes(app)
}

// GetApp returns the initialized application instance. It is called from
// the AWS Lambda handler or the Cloud Run handler.
func GetApp() *fiber.App {
	return app
}
