package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/jsjj10002/dataventure/internal/models"
)

// EvaluationService runs the full synchronous evaluation pipeline over an
// interview transcript: pair up exchanges, score every answer, aggregate,
// generate qualitative feedback, assemble the report.
type EvaluationService interface {
	GenerateEvaluation(
		ctx context.Context,
		history []models.ConversationMessage,
		profile *models.CandidateProfile,
		posting *models.JobPosting,
	) (*models.EvaluationReport, error)
}

type evaluationService struct {
	analyzer      AnswerAnalyzer
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewEvaluationService(analyzer AnswerAnalyzer, gemini GeminiService) EvaluationService {
	return &evaluationService{
		analyzer:      analyzer,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateEvaluation implements EvaluationService.
func (e *evaluationService) GenerateEvaluation(
	ctx context.Context,
	history []models.ConversationMessage,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) (*models.EvaluationReport, error) {
	pairs := PairExchanges(history)

	analyzed := make([]models.AnswerAnalysis, 0, len(pairs))
	for _, pair := range pairs {
		analysis, err := e.analyzer.Analyze(ctx, pair.Question, pair.Answer)
		if err != nil {
			log.Printf("⚠️  Answer analysis degraded to neutral fallback: %v", err)
		}
		analyzed = append(analyzed, analysis)
	}

	stats := Aggregate(analyzed)
	scores := finalScores(stats)

	feedback, err := e.generateFeedback(ctx, analyzed, stats, profile, posting)
	if err != nil {
		log.Printf("⚠️  Feedback generation degraded to fallback: %v", err)
	}

	return &models.EvaluationReport{
		Scores:          scores,
		Statistics:      stats,
		Feedback:        feedback,
		AnalyzedAnswers: analyzed,
	}, nil
}

// QAPair is one well-formed interviewer question with its candidate answer.
type QAPair struct {
	Question string
	Answer   string
}

// PairExchanges walks the transcript and keeps only well-formed
// interviewer→candidate pairs. Turns that do not participate in such a pair
// are skipped.
func PairExchanges(history []models.ConversationMessage) []QAPair {
	var pairs []QAPair
	for i := 0; i < len(history)-1; i++ {
		if history[i].IsInterviewer() && history[i+1].IsCandidate() {
			pairs = append(pairs, QAPair{
				Question: history[i].Content,
				Answer:   history[i+1].Content,
			})
			i++
		}
	}
	return pairs
}

// finalScores rescales the aggregate averages onto [0,100] and reports both
// overall policies.
func finalScores(stats models.AggregateStatistics) models.FinalScores {
	overall := round2(stats.OverallAvg * 10)

	return models.FinalScores{
		TechnicalScore:       round2(stats.TechnicalAvg * 10),
		CommunicationScore:   round2(stats.CommunicationAvg * 10),
		ProblemSolvingScore:  round2(stats.ProblemSolvingAvg * 10),
		OverallScore:         overall,
		WeightedOverallScore: round2(WeightedOverallAverage(stats.TechnicalAvg, stats.CommunicationAvg, stats.ProblemSolvingAvg) * 10),
		Category:             CategorizeScore(overall),
	}
}

func (e *evaluationService) generateFeedback(
	ctx context.Context,
	analyzed []models.AnswerAnalysis,
	stats models.AggregateStatistics,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) (models.Feedback, error) {
	best, worst := rankAnswers(analyzed)

	response, err := e.gemini.GenerateJSON(
		ctx,
		e.promptBuilder.BuildFeedbackSystemPrompt(),
		e.promptBuilder.BuildFeedbackPrompt(stats, best, worst, profile, posting),
		0.7,
	)
	if err != nil {
		return fallbackFeedback(), fmt.Errorf("feedback call failed: %w", err)
	}

	var feedback models.Feedback
	if err := json.Unmarshal([]byte(extractJSON(response)), &feedback); err != nil {
		return fallbackFeedback(), fmt.Errorf("feedback returned malformed json: %w", err)
	}

	if feedback.Strengths == nil {
		feedback.Strengths = []string{}
	}
	if feedback.Weaknesses == nil {
		feedback.Weaknesses = []string{}
	}
	if feedback.Recommendations == nil {
		feedback.Recommendations = []string{}
	}

	return feedback, nil
}

// rankAnswers returns up to the 3 highest- and 2 lowest-scoring answers by
// per-answer average.
func rankAnswers(analyzed []models.AnswerAnalysis) (best, worst []models.AnswerAnalysis) {
	sorted := make([]models.AnswerAnalysis, len(analyzed))
	copy(sorted, analyzed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AverageScore() > sorted[j].AverageScore()
	})

	bestCount := 3
	if bestCount > len(sorted) {
		bestCount = len(sorted)
	}
	best = sorted[:bestCount]

	worstCount := 2
	if worstCount > len(sorted) {
		worstCount = len(sorted)
	}
	worst = sorted[len(sorted)-worstCount:]

	return best, worst
}

func fallbackFeedback() models.Feedback {
	return models.Feedback{
		Strengths:              []string{"The candidate participated sincerely in the interview."},
		Weaknesses:             []string{"An error occurred during evaluation."},
		Recommendations:        []string{"Please try again later."},
		Summary:                "We could not generate the full evaluation this time. The numeric scores are still valid.",
		TechnicalFeedback:      "Feedback unavailable.",
		CommunicationFeedback:  "Feedback unavailable.",
		ProblemSolvingFeedback: "Feedback unavailable.",
	}
}
