package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jsjj10002/dataventure/internal/models"
)

func newMatchingApp(service *fakeMatchingService) *fiber.App {
	app := fiber.New()
	app.Post("/internal/ai/calculate-match", NewMatchingHandler(service).HandleCalculateMatch)
	return app
}

func TestHandleCalculateMatch_Success(t *testing.T) {
	service := &fakeMatchingService{
		resp: &models.MatchResponse{
			MatchScore:      87.5,
			Similarity:      0.72,
			ExperienceBonus: 5.0,
			SkillsBonus:     7.5,
			MatchReason:     "Solid skills overlap and experience within range.",
		},
	}
	app := newMatchingApp(service)

	resp := postJSON(t, app, "/internal/ai/calculate-match", models.MatchRequest{
		CandidateProfile: models.CandidateProfile{
			Skills:     []string{"Go"},
			Experience: 4,
		},
		JobPosting: models.JobPosting{
			Title:        "Backend Engineer",
			Requirements: []string{"Go"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[models.MatchResponse](t, resp)
	assert.Equal(t, 87.5, body.MatchScore)
	assert.Equal(t, 0.72, body.Similarity)
	assert.NotEmpty(t, body.MatchReason)
}

func TestHandleCalculateMatch_ServiceErrorIsInternal(t *testing.T) {
	service := &fakeMatchingService{err: assert.AnError}
	app := newMatchingApp(service)

	resp := postJSON(t, app, "/internal/ai/calculate-match", models.MatchRequest{
		CandidateProfile: models.CandidateProfile{Experience: 1},
		JobPosting:       models.JobPosting{Title: "x"},
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
