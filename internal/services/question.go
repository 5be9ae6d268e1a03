package services

import (
	"context"
	"fmt"

	"github.com/jsjj10002/dataventure/internal/models"
)

// closingQuestion is returned without a completion call once the depth
// analyzer signals termination.
const closingQuestion = "We have covered a lot of ground. Is there anything you would like to add, or any questions you have for us?"

// QuestionService generates the opening question, follow-up questions, and
// the streamed follow-up variant. Follow-up paths consult the depth analyzer
// first and short-circuit to a canned closing prompt when the interview has
// run deep enough.
type QuestionService interface {
	GenerateFirstQuestion(ctx context.Context, profile *models.CandidateProfile, posting *models.JobPosting) (*models.QuestionGenerationResponse, error)
	GenerateFollowUp(ctx context.Context, history []models.ConversationMessage, lastAnswer string, profile *models.CandidateProfile, posting *models.JobPosting) (*models.QuestionGenerationResponse, error)
	StreamFollowUp(ctx context.Context, history []models.ConversationMessage, lastAnswer string, profile *models.CandidateProfile, posting *models.JobPosting) (<-chan models.StreamChunk, models.QuestionType)
}

type questionService struct {
	gemini        GeminiService
	depth         *DepthAnalyzer
	promptBuilder *PromptBuilder
}

func NewQuestionService(gemini GeminiService, depth *DepthAnalyzer) QuestionService {
	return &questionService{
		gemini:        gemini,
		depth:         depth,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateFirstQuestion implements QuestionService.
func (q *questionService) GenerateFirstQuestion(
	ctx context.Context,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) (*models.QuestionGenerationResponse, error) {
	prompt := q.promptBuilder.BuildFirstQuestionPrompt(profile, posting)

	question, err := q.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate first question: %w", err)
	}

	return &models.QuestionGenerationResponse{
		Question:     question,
		QuestionType: models.QuestionTypeOpen,
	}, nil
}

// GenerateFollowUp implements QuestionService.
func (q *questionService) GenerateFollowUp(
	ctx context.Context,
	history []models.ConversationMessage,
	lastAnswer string,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) (*models.QuestionGenerationResponse, error) {
	if !q.depth.Analyze(history).ShouldContinue {
		return &models.QuestionGenerationResponse{
			Question:     closingQuestion,
			QuestionType: models.QuestionTypeClosing,
		}, nil
	}

	prompt := q.promptBuilder.BuildFollowUpPrompt(history, lastAnswer, profile, posting)

	question, err := q.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate follow-up question: %w", err)
	}

	return &models.QuestionGenerationResponse{
		Question:     question,
		QuestionType: models.QuestionTypeFollowUp,
	}, nil
}

// StreamFollowUp implements QuestionService. The returned channel is finite
// and single-consumer: content chunks arrive in order, a chunk with Err set
// terminates the stream early, and channel close marks completion. When the
// depth analyzer signals termination the canned closing question is streamed
// as a single chunk without calling the completion capability.
func (q *questionService) StreamFollowUp(
	ctx context.Context,
	history []models.ConversationMessage,
	lastAnswer string,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) (<-chan models.StreamChunk, models.QuestionType) {
	out := make(chan models.StreamChunk)

	if !q.depth.Analyze(history).ShouldContinue {
		go func() {
			defer close(out)
			out <- models.StreamChunk{Content: closingQuestion}
		}()
		return out, models.QuestionTypeClosing
	}

	prompt := q.promptBuilder.BuildFollowUpPrompt(history, lastAnswer, profile, posting)
	chunks, errc := q.gemini.GenerateTextStream(ctx, prompt, 0.7)

	go func() {
		defer close(out)
		for chunk := range chunks {
			out <- models.StreamChunk{Content: chunk}
		}
		if err := <-errc; err != nil {
			out <- models.StreamChunk{Err: err}
		}
	}()

	return out, models.QuestionTypeFollowUp
}
