package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	siteDir     string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version, siteDir string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, siteDir: siteDir}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness: the built site must be present on disk.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if _, err := os.Stat(h.siteDir); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "site directory unavailable",
			},
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
