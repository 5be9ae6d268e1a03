package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jsjj10002/dataventure/internal/models"
	"github.com/jsjj10002/dataventure/internal/services"
)

type EvaluationHandler struct {
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(evaluationService services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
	}
}

// HandleGenerateEvaluation handles POST /internal/ai/generate-evaluation
func (h *EvaluationHandler) HandleGenerateEvaluation(c *fiber.Ctx) error {
	var req models.EvaluationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.ConversationHistory) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least 2 conversation entries are required",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid request: %v", err),
		})
	}

	report, err := h.evaluationService.GenerateEvaluation(
		c.Context(), req.ConversationHistory, req.CandidateProfile, req.JobPosting,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to generate evaluation: %v", err),
		})
	}

	return c.JSON(models.EvaluationResponse{
		EvaluationID:    uuid.New().String(),
		Scores:          report.Scores,
		Statistics:      report.Statistics,
		Feedback:        report.Feedback,
		AnalyzedAnswers: report.AnalyzedAnswers,
		Message:         "Evaluation generated successfully",
	})
}
