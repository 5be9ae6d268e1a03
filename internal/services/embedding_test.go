package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsjj10002/dataventure/internal/models"
)

func TestEmbed_EmptyTextReturnsZeroVectorWithoutModelCall(t *testing.T) {
	embedder := &fakeEmbedder{vectors: [][]float32{{1, 2, 3}}}
	service := NewEmbeddingService(embedder, 768)

	for _, input := range []string{"", "   ", "\n\t "} {
		vector, err := service.Embed(context.Background(), input)

		require.NoError(t, err)
		assert.Len(t, vector, 768)
		for _, v := range vector {
			assert.Equal(t, float32(0), v)
		}
	}

	assert.Equal(t, 0, embedder.calls, "embedder must not be invoked for empty text")
}

func TestEmbed_DelegatesForRealText(t *testing.T) {
	embedder := &fakeEmbedder{vectors: [][]float32{{0.1, 0.2, 0.3}}}
	service := NewEmbeddingService(embedder, 3)

	vector, err := service.Embed(context.Background(), "backend engineer")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)
	assert.Equal(t, 1, embedder.calls)
}

func TestEmbedProfile_FieldOrderIsDeterministic(t *testing.T) {
	embedder := &fakeEmbedder{vectors: [][]float32{{1}}}
	service := NewEmbeddingService(embedder, 1)

	profile := models.CandidateProfile{
		Skills:          []string{"Go", "Kafka"},
		Experience:      5,
		DesiredPosition: "Backend Engineer",
	}

	_, err := service.EmbedProfile(context.Background(), profile, "resume body")
	require.NoError(t, err)

	require.Len(t, embedder.inputs, 1)
	assert.Equal(t,
		"resume body Skills: Go, Kafka Experience: 5 years Desired position: Backend Engineer",
		embedder.inputs[0],
	)
}

func TestEmbedPosting_FieldOrderIsDeterministic(t *testing.T) {
	embedder := &fakeEmbedder{vectors: [][]float32{{1}}}
	service := NewEmbeddingService(embedder, 1)

	posting := models.JobPosting{
		Title:           "Senior Backend Engineer",
		Position:        "Backend",
		Description:     "Build the payments platform.",
		Requirements:    []string{"Go", "PostgreSQL"},
		PreferredSkills: []string{"Kafka"},
	}

	_, err := service.EmbedPosting(context.Background(), posting)
	require.NoError(t, err)

	require.Len(t, embedder.inputs, 1)
	assert.Equal(t,
		"Title: Senior Backend Engineer Position: Backend Build the payments platform. Requirements: Go, PostgreSQL Preferred skills: Kafka",
		embedder.inputs[0],
	)
}

func TestEmbedProfile_EmptyProfileIsZeroVector(t *testing.T) {
	embedder := &fakeEmbedder{vectors: [][]float32{{1, 1}}}
	service := NewEmbeddingService(embedder, 2)

	vector, err := service.EmbedProfile(context.Background(), models.CandidateProfile{}, "")

	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, vector)
	assert.Equal(t, 0, embedder.calls)
}
