package controller

import (
	"os"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sorumat/sorumat-go/pkg/configs"
	response "github.com/sorumat/sorumat-go/pkg/types/dtos/responses"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

// Health reports service liveness.
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(response.Health{
			Status:    "OK",
			Timestamp: time.Now(),
			Version:   configs.AppVersion,
			Uptime:    time.Since(startTime).String(),
			GoVersion: GoVersion,
		})
	}
}

// Metrics serves the Prometheus exposition endpoint.
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Root returns a service banner.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(response.Root{
			Service: configs.GetConfig().Server.AppName,
			Version: configs.AppVersion,
			Docs:    "POST /ocr with a multipart field named \"image\"",
		})
	}
}

// DebugEnv returns a masked configuration snapshot. Credentials are
// reported as loaded or not, never echoed.
func DebugEnv() fiber.Handler {
	return func(c *fiber.Ctx) error {
		config := configs.GetConfig()
		return c.JSON(response.DebugEnv{
			AppEnv:          os.Getenv("APP_ENV"),
			OcrLanguage:     config.OCR.Language,
			UploadDir:       config.OCR.UploadDir,
			GeminiModel:     config.Gemini.Model,
			GeminiKeyLoaded: config.Gemini.APIKey != "",
			AuthConfigured:  config.Auth.BaseURL != "",
		})
	}
}
