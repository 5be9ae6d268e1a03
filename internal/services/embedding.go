package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsjj10002/dataventure/internal/models"
)

// Embedder is the subset of the Gemini service the gateway depends on.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingService turns free text and structured profiles/postings into
// fixed-length vectors. The zero vector is the canonical embedding of "no
// text" and is produced without touching the model.
type EmbeddingService interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedProfile(ctx context.Context, profile models.CandidateProfile, resumeText string) ([]float32, error)
	EmbedPosting(ctx context.Context, posting models.JobPosting) ([]float32, error)
	Dim() int
}

type embeddingService struct {
	embedder Embedder
	dim      int
}

func NewEmbeddingService(embedder Embedder, dim int) EmbeddingService {
	if dim <= 0 {
		dim = 768
	}
	return &embeddingService{embedder: embedder, dim: dim}
}

// Embed implements EmbeddingService.
func (e *embeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return make([]float32, e.dim), nil
	}

	vector, err := e.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}

	return vector, nil
}

// EmbedProfile implements EmbeddingService. Field order is fixed so the same
// profile always produces the same text blob: resume, skills, experience,
// desired position.
func (e *embeddingService) EmbedProfile(ctx context.Context, profile models.CandidateProfile, resumeText string) ([]float32, error) {
	var parts []string

	if strings.TrimSpace(resumeText) != "" {
		parts = append(parts, strings.TrimSpace(resumeText))
	}
	if len(profile.Skills) > 0 {
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(profile.Skills, ", ")))
	}
	if profile.Experience > 0 {
		parts = append(parts, fmt.Sprintf("Experience: %d years", profile.Experience))
	}
	if profile.DesiredPosition != "" {
		parts = append(parts, fmt.Sprintf("Desired position: %s", profile.DesiredPosition))
	}

	return e.Embed(ctx, strings.Join(parts, " "))
}

// EmbedPosting implements EmbeddingService. Fixed field order: title,
// position, description, requirements, preferred skills.
func (e *embeddingService) EmbedPosting(ctx context.Context, posting models.JobPosting) ([]float32, error) {
	var parts []string

	if posting.Title != "" {
		parts = append(parts, fmt.Sprintf("Title: %s", posting.Title))
	}
	if posting.Position != "" {
		parts = append(parts, fmt.Sprintf("Position: %s", posting.Position))
	}
	if posting.Description != "" {
		parts = append(parts, posting.Description)
	}
	if len(posting.Requirements) > 0 {
		parts = append(parts, fmt.Sprintf("Requirements: %s", strings.Join(posting.Requirements, ", ")))
	}
	if len(posting.PreferredSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Preferred skills: %s", strings.Join(posting.PreferredSkills, ", ")))
	}

	return e.Embed(ctx, strings.Join(parts, " "))
}

// Dim implements EmbeddingService.
func (e *embeddingService) Dim() int {
	return e.dim
}
