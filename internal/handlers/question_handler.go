package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jsjj10002/dataventure/internal/models"
	"github.com/jsjj10002/dataventure/internal/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// HandleGenerateQuestion handles POST /internal/ai/generate-question
func (h *QuestionHandler) HandleGenerateQuestion(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}

	if req.IsFirstQuestion {
		resp, err := h.questionService.GenerateFirstQuestion(c.Context(), req.CandidateProfile, req.JobPosting)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("Failed to generate question: %v", err),
			})
		}
		return c.JSON(resp)
	}

	resp, err := h.questionService.GenerateFollowUp(
		c.Context(), req.ConversationHistory, req.LastAnswer, req.CandidateProfile, req.JobPosting,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to generate question: %v", err),
		})
	}

	return c.JSON(resp)
}

// HandleGenerateQuestionStream handles POST /internal/ai/generate-question-stream
//
// The response is a server-sent event stream of {"content": ...} chunks,
// terminated by {"done": true}, or {"error": ...} on mid-stream failure.
func (h *QuestionHandler) HandleGenerateQuestionStream(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}

	if req.IsFirstQuestion {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Streaming is only supported for follow-up questions",
		})
	}

	// The stream outlives this handler; request-scoped contexts do not apply.
	chunks, _ := h.questionService.StreamFollowUp(
		context.Background(), req.ConversationHistory, req.LastAnswer, req.CandidateProfile, req.JobPosting,
	)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		for chunk := range chunks {
			if chunk.Err != nil {
				writeSSE(w, fiber.Map{"error": chunk.Err.Error()})
				return
			}
			writeSSE(w, fiber.Map{"content": chunk.Content})
		}
		writeSSE(w, fiber.Map{"done": true})
	})

	return nil
}

// parseRequest validates the shared question-generation payload. Failures
// become fiber errors rendered by the app's error handler.
func (h *QuestionHandler) parseRequest(c *fiber.Ctx) (*models.QuestionGenerationRequest, error) {
	var req models.QuestionGenerationRequest

	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := validate.Struct(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	if !req.IsFirstQuestion && (len(req.ConversationHistory) == 0 || req.LastAnswer == "") {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"conversationHistory and lastAnswer are required for follow-up questions")
	}

	return &req, nil
}

func writeSSE(w *bufio.Writer, payload fiber.Map) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	w.Flush()
}
