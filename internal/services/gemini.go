package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiService wraps the Gemini API behind the capabilities the engine
// needs: plain completion, JSON completion, streamed completion, embedding,
// and audio transcription. The client is built once at startup and shared.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
	GenerateTextStream(ctx context.Context, prompt string, temperature float32) (<-chan string, <-chan error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	TranscribeAudio(ctx context.Context, audio []byte, mimeType, language string) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewGeminiService(ctx context.Context, apiKey, model, embedModel string) (GeminiService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  model,
		embedModel: embedModel,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateJSON implements GeminiService. The response MIME type is forced to
// JSON so the model cannot answer in prose.
func (g *geminiService) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   4096,
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate json: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no json content in response")
	}

	return text, nil
}

// GenerateTextStream implements GeminiService. Chunks arrive on the first
// channel; at most one error arrives on the second. Both channels close when
// the stream is exhausted.
func (g *geminiService) GenerateTextStream(ctx context.Context, prompt string, temperature float32) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errc := make(chan error, 1)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	go func() {
		defer close(chunks)
		defer close(errc)

		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.modelName, genai.Text(prompt), config) {
			if err != nil {
				errc <- fmt.Errorf("stream failed: %w", err)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case chunks <- text:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()

	return chunks, errc
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Embedding models cap input length; truncate rather than fail.
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// TranscribeAudio implements GeminiService. The audio travels inline as a
// typed part alongside the transcription instruction.
func (g *geminiService) TranscribeAudio(ctx context.Context, audio []byte, mimeType, language string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	instruction := fmt.Sprintf(
		"Transcribe this audio recording verbatim. The spoken language is %q. Return only the transcribed text, nothing else.",
		language,
	)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	temperature := float32(0.0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no transcription in response")
	}

	return text, nil
}
