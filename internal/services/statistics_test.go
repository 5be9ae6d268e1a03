package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsjj10002/dataventure/internal/models"
)

func TestAverage(t *testing.T) {
	assert.InDelta(t, (8.5+7.0+9.5+8.0)/4, Average([]float64{8.5, 7.0, 9.5, 8.0}), 1e-9)
}

func TestAverage_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
}

func TestAverage_SingleScore(t *testing.T) {
	assert.Equal(t, 8.5, Average([]float64{8.5}))
}

func TestStandardDeviation_Sample(t *testing.T) {
	scores := []float64{8.0, 9.0, 7.0, 10.0, 6.0}

	// sample standard deviation, n-1 denominator
	mean := Average(scores)
	sumSq := 0.0
	for _, s := range scores {
		sumSq += (s - mean) * (s - mean)
	}
	expected := math.Sqrt(sumSq / 4)

	assert.InDelta(t, expected, StandardDeviation(scores), 1e-9)
}

func TestStandardDeviation_IdenticalScores(t *testing.T) {
	assert.Equal(t, 0.0, StandardDeviation([]float64{8.0, 8.0, 8.0, 8.0}))
}

func TestStandardDeviation_SingleScore(t *testing.T) {
	assert.Equal(t, 0.0, StandardDeviation([]float64{8.5}))
}

func TestConsistencyScore_ConsistentScores(t *testing.T) {
	consistency := ConsistencyScore([]float64{8.0, 8.5, 7.5, 8.2, 8.1})

	assert.GreaterOrEqual(t, consistency, 80.0)
	assert.LessOrEqual(t, consistency, 100.0)
}

func TestConsistencyScore_InconsistentScores(t *testing.T) {
	consistency := ConsistencyScore([]float64{2.0, 10.0, 1.0, 9.0, 3.0})

	assert.Less(t, consistency, 50.0)
	assert.GreaterOrEqual(t, consistency, 0.0)
}

func TestConsistencyScore_PerfectConsistency(t *testing.T) {
	assert.Equal(t, 100.0, ConsistencyScore([]float64{8.0, 8.0, 8.0, 8.0, 8.0}))
}

func TestCategorizeScore_Boundaries(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{100.0, "excellent"},
		{85.0, "excellent"},
		{80.0, "excellent"},
		{79.99, "good"},
		{70.0, "good"},
		{60.0, "good"},
		{59.99, "needs improvement"},
		{30.0, "needs improvement"},
		{0.0, "needs improvement"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CategorizeScore(tt.score), "score %.2f", tt.score)
	}
}

func TestWeightedOverallAverage(t *testing.T) {
	overall := WeightedOverallAverage(8.0, 6.0, 7.0)

	assert.InDelta(t, 8.0*0.4+6.0*0.3+7.0*0.3, overall, 1e-9)
}

func TestWeightedOverallAverage_DiffersFromUnweighted(t *testing.T) {
	technical, communication, problemSolving := 9.0, 5.0, 5.0

	weighted := WeightedOverallAverage(technical, communication, problemSolving)
	unweighted := (technical + communication + problemSolving) / 3

	assert.NotEqual(t, unweighted, weighted)
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.AnswerCount)
	assert.Equal(t, 0.0, stats.OverallAvg)
}

func TestAggregate_UniformScores(t *testing.T) {
	analyzed := []models.AnswerAnalysis{
		{TechnicalScore: 8.0, CommunicationScore: 8.0, ProblemSolvingScore: 8.0},
		{TechnicalScore: 8.0, CommunicationScore: 8.0, ProblemSolvingScore: 8.0},
		{TechnicalScore: 8.0, CommunicationScore: 8.0, ProblemSolvingScore: 8.0},
	}

	stats := Aggregate(analyzed)

	assert.Equal(t, 8.0, stats.OverallAvg)
	assert.Equal(t, 10.0, stats.Consistency)
	assert.Equal(t, 0.0, stats.TechnicalStd)
	assert.Equal(t, 3, stats.AnswerCount)
	assert.Equal(t, "excellent", CategorizeScore(stats.OverallAvg*10))
}

func TestAggregate_MixedScores(t *testing.T) {
	analyzed := []models.AnswerAnalysis{
		{TechnicalScore: 9.0, CommunicationScore: 7.0, ProblemSolvingScore: 8.0},
		{TechnicalScore: 7.0, CommunicationScore: 5.0, ProblemSolvingScore: 6.0},
	}

	stats := Aggregate(analyzed)

	assert.Equal(t, 8.0, stats.TechnicalAvg)
	assert.Equal(t, 6.0, stats.CommunicationAvg)
	assert.Equal(t, 7.0, stats.ProblemSolvingAvg)
	assert.Equal(t, 7.0, stats.OverallAvg)
	assert.Equal(t, 2, stats.AnswerCount)
	assert.Greater(t, stats.TechnicalStd, 0.0)
	assert.Less(t, stats.Consistency, 10.0)
}
