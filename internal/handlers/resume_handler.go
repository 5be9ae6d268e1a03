package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jsjj10002/dataventure/internal/models"
	"github.com/jsjj10002/dataventure/internal/services"
)

type ResumeHandler struct {
	resumeParser services.ResumeParserService
}

func NewResumeHandler(resumeParser services.ResumeParserService) *ResumeHandler {
	return &ResumeHandler{
		resumeParser: resumeParser,
	}
}

// HandleParseResume handles POST /internal/ai/parse-resume
func (h *ResumeHandler) HandleParseResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF resumes are supported",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open resume file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read resume file",
		})
	}

	content, err := h.resumeParser.ExtractText(data)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to parse resume: %v", err),
		})
	}

	return c.JSON(models.ResumeParseResponse{
		Text:      content.Text,
		PageCount: content.PageCount,
	})
}
