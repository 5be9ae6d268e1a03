package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jsjj10002/dataventure/internal/models"
	"github.com/jsjj10002/dataventure/internal/services"
)

type TranscribeHandler struct {
	transcriptionService services.TranscriptionService
	maxRealtimeSize      int64
	defaultLanguage      string
}

func NewTranscribeHandler(
	transcriptionService services.TranscriptionService,
	maxRealtimeSize int64,
	defaultLanguage string,
) *TranscribeHandler {
	return &TranscribeHandler{
		transcriptionService: transcriptionService,
		maxRealtimeSize:      maxRealtimeSize,
		defaultLanguage:      defaultLanguage,
	}
}

// HandleTranscribe handles POST /internal/ai/transcribe
func (h *TranscribeHandler) HandleTranscribe(c *fiber.Ctx) error {
	audio, mimeType, err := h.readAudio(c)
	if err != nil {
		return err
	}

	text, err := h.transcriptionService.Transcribe(c.Context(), audio, mimeType, h.defaultLanguage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Transcription failed: %v", err),
		})
	}

	return c.JSON(models.TranscriptionResponse{
		Text: text,
	})
}

// HandleTranscribeRealtime handles POST /internal/ai/transcribe-realtime
//
// Optimized for short clips; payloads above the configured size limit are
// rejected up front.
func (h *TranscribeHandler) HandleTranscribeRealtime(c *fiber.Ctx) error {
	audio, mimeType, err := h.readAudio(c)
	if err != nil {
		return err
	}

	if int64(len(audio)) > h.maxRealtimeSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Audio file too large (max %d bytes)", h.maxRealtimeSize),
		})
	}

	language := c.FormValue("language", h.defaultLanguage)

	text, err := h.transcriptionService.Transcribe(c.Context(), audio, mimeType, language)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Transcription failed: %v", err),
		})
	}

	return c.JSON(models.TranscriptionResponse{
		Text:     text,
		Language: language,
	})
}

func (h *TranscribeHandler) readAudio(c *fiber.Ctx) ([]byte, string, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "audio file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Failed to open audio file")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Failed to read audio file")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	return audio, mimeType, nil
}
