package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jsjj10002/dataventure/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HandleRoot handles GET /
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "AI Interview Engine",
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "healthy",
		"gemini_configured": h.cfg.Gemini.APIKey != "",
		"embedding_model":   h.cfg.Embedding.Model,
	})
}
