package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sorumat/sorumat-go/pkg/configs"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// Prometheus collects per-request metrics and periodically refreshes the
// server state gauges.
func Prometheus() fiber.Handler {
	serverName := configs.GetConfig().Server.AppName

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		utils.RecordRequest(c.Method(), c.Route().Path, c.Response().StatusCode(), duration)

		// Updating the gauges on every request would be wasteful; a refresh
		// every 10 seconds is enough.
		updateServerMetrics(serverName)

		return err
	}
}

var lastMetricUpdate time.Time

func updateServerMetrics(serverName string) {
	now := time.Now()
	if now.Sub(lastMetricUpdate) < 10*time.Second {
		return
	}
	lastMetricUpdate = now

	cpuUsage, memoryUsage := utils.GetSystemMetrics()

	// Weighted load: CPU dominates, memory contributes.
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	healthValue := 1.0
	if cpuUsage > 0.9 || memoryUsage > 0.95 {
		healthValue = 0.0
	}

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	utils.UpdateServerMetric(serverName, "load", load)
	utils.UpdateServerMetric(serverName, "healthy", healthValue)
	utils.UpdateServerMetric(serverName, "capacity", capacity)
}
