package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsjj10002/dataventure/internal/models"
)

// AnswerAnalyzer scores a single question/answer pair along the three axes.
// Analyze never fails from the caller's point of view: on any capability
// error it returns the neutral fallback analysis together with the cause so
// the degradation can be logged.
type AnswerAnalyzer interface {
	Analyze(ctx context.Context, question, answer string) (models.AnswerAnalysis, error)
}

type answerAnalyzer struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnswerAnalyzer(gemini GeminiService) AnswerAnalyzer {
	return &answerAnalyzer{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

type answerAnalysisResult struct {
	TechnicalScore      float64  `json:"technical_score"`
	CommunicationScore  float64  `json:"communication_score"`
	ProblemSolvingScore float64  `json:"problem_solving_score"`
	Keywords            []string `json:"keywords"`
	DepthLevel          string   `json:"depth_level"`
	Reasoning           string   `json:"reasoning"`
}

// Analyze implements AnswerAnalyzer.
func (a *answerAnalyzer) Analyze(ctx context.Context, question, answer string) (models.AnswerAnalysis, error) {
	response, err := a.gemini.GenerateJSON(
		ctx,
		a.promptBuilder.BuildAnswerAnalysisSystemPrompt(),
		a.promptBuilder.BuildAnswerAnalysisPrompt(question, answer),
		0.3,
	)
	if err != nil {
		return neutralAnalysis(question, answer), fmt.Errorf("answer analysis call failed: %w", err)
	}

	var result answerAnalysisResult
	if err := json.Unmarshal([]byte(extractJSON(response)), &result); err != nil {
		return neutralAnalysis(question, answer), fmt.Errorf("answer analysis returned malformed json: %w", err)
	}

	return models.AnswerAnalysis{
		TechnicalScore:      clamp(result.TechnicalScore, 0, 10),
		CommunicationScore:  clamp(result.CommunicationScore, 0, 10),
		ProblemSolvingScore: clamp(result.ProblemSolvingScore, 0, 10),
		Keywords:            result.Keywords,
		DepthLevel:          parseDepthLevel(result.DepthLevel),
		Question:            question,
		Answer:              answer,
	}, nil
}

// neutralAnalysis is the degrade-gracefully fallback: midpoint scores, no
// keywords, moderate depth.
func neutralAnalysis(question, answer string) models.AnswerAnalysis {
	return models.AnswerAnalysis{
		TechnicalScore:      5.0,
		CommunicationScore:  5.0,
		ProblemSolvingScore: 5.0,
		Keywords:            []string{},
		DepthLevel:          models.DepthModerate,
		Question:            question,
		Answer:              answer,
	}
}

func parseDepthLevel(raw string) models.DepthLevel {
	switch models.DepthLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case models.DepthShallow:
		return models.DepthShallow
	case models.DepthDetailed:
		return models.DepthDetailed
	default:
		return models.DepthModerate
	}
}

// extractJSON strips markdown fences and trims to the outermost JSON object
// or array; LLM responses occasionally arrive wrapped despite the forced
// MIME type.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
