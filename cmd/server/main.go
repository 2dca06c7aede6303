package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sorumat/sorumat-go/pkg/configs"
	middleware "github.com/sorumat/sorumat-go/pkg/middlewares"
	route "github.com/sorumat/sorumat-go/pkg/routes"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

func main() {
	// Local development reads .env; the deploy environment sets real vars.
	godotenv.Load()

	utils.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName: configs.GetConfig().Server.AppName,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Prometheus())

	route.SetupRoutes(app)

	port := configs.GetConfig().Server.Port
	log.Fatal(app.Listen(":" + port))
}
