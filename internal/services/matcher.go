package services

import (
	"context"
	"fmt"
	"log"

	"github.com/jsjj10002/dataventure/internal/models"
)

// MatchingService scores how well a candidate fits a job posting: embedding
// similarity forms the base, rule-based experience and skills bonuses are
// added on top, and one completion call produces a human-readable reason.
type MatchingService interface {
	CalculateMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResponse, error)
}

type matchingService struct {
	embedding     EmbeddingService
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewMatchingService(embedding EmbeddingService, gemini GeminiService) MatchingService {
	return &matchingService{
		embedding:     embedding,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// CalculateMatch implements MatchingService.
func (m *matchingService) CalculateMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResponse, error) {
	profileVec, err := m.embedding.EmbedProfile(ctx, req.CandidateProfile, req.ResumeText)
	if err != nil {
		return nil, fmt.Errorf("embed candidate profile: %w", err)
	}

	postingVec, err := m.embedding.EmbedPosting(ctx, req.JobPosting)
	if err != nil {
		return nil, fmt.Errorf("embed job posting: %w", err)
	}

	similarity, err := CosineSimilarity(profileVec, postingVec)
	if err != nil {
		return nil, fmt.Errorf("compare embeddings: %w", err)
	}

	expBonus := ExperienceMatchBonus(
		req.CandidateProfile.Experience,
		req.JobPosting.ExperienceMin,
		req.JobPosting.ExperienceMax,
	)
	skillsBonus := SkillsMatchBonus(
		req.CandidateProfile.Skills,
		req.JobPosting.Requirements,
		req.JobPosting.PreferredSkills,
	)

	matchScore := round2(FinalMatchScore(similarity, expBonus, skillsBonus))

	reason, err := m.generateMatchReason(ctx, req.CandidateProfile, req.JobPosting, matchScore)
	if err != nil {
		log.Printf("⚠️  Match reason generation degraded to fallback: %v", err)
	}

	return &models.MatchResponse{
		MatchScore:      matchScore,
		Similarity:      round2(similarity),
		ExperienceBonus: round2(expBonus),
		SkillsBonus:     round2(skillsBonus),
		MatchReason:     reason,
	}, nil
}

func (m *matchingService) generateMatchReason(
	ctx context.Context,
	profile models.CandidateProfile,
	posting models.JobPosting,
	matchScore float64,
) (string, error) {
	prompt := m.promptBuilder.BuildMatchReasonPrompt(profile, posting, matchScore)

	reason, err := m.gemini.GenerateText(ctx, prompt, 0.5)
	if err != nil {
		return fmt.Sprintf("The computed match score is %.1f out of 100.", matchScore),
			fmt.Errorf("match reason call failed: %w", err)
	}

	return reason, nil
}
