package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jsjj10002/dataventure/internal/models"
	"github.com/jsjj10002/dataventure/internal/services"
)

type MatchingHandler struct {
	matchingService services.MatchingService
}

func NewMatchingHandler(matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		matchingService: matchingService,
	}
}

// HandleCalculateMatch handles POST /internal/ai/calculate-match
func (h *MatchingHandler) HandleCalculateMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid request: %v", err),
		})
	}

	resp, err := h.matchingService.CalculateMatch(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to calculate match: %v", err),
		})
	}

	return c.JSON(resp)
}
