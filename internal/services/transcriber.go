package services

import (
	"context"
	"fmt"
	"strings"
)

// TranscriptionService converts uploaded audio into text through the
// language-completion capability. One best-effort call per request, no
// retries; failures surface to the handler as request failures.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, mimeType, language string) (string, error)
}

type transcriptionService struct {
	gemini          GeminiService
	defaultLanguage string
}

func NewTranscriptionService(gemini GeminiService, defaultLanguage string) TranscriptionService {
	if defaultLanguage == "" {
		defaultLanguage = "ko"
	}
	return &transcriptionService{
		gemini:          gemini,
		defaultLanguage: defaultLanguage,
	}
}

// Transcribe implements TranscriptionService.
func (t *transcriptionService) Transcribe(ctx context.Context, audio []byte, mimeType, language string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}

	if strings.TrimSpace(language) == "" {
		language = t.defaultLanguage
	}

	text, err := t.gemini.TranscribeAudio(ctx, audio, mimeType, language)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return text, nil
}
