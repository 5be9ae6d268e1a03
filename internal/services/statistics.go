package services

import (
	"math"

	"github.com/jsjj10002/dataventure/internal/models"
)

// Weights for the weighted overall-score policy. The statistics aggregate
// also computes an unweighted 3-way mean; both policies are exposed.
const (
	technicalWeight      = 0.4
	communicationWeight  = 0.3
	problemSolvingWeight = 0.3
)

// Average returns the arithmetic mean, or 0.0 for an empty slice ("no data
// yet" is not an error).
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// StandardDeviation returns the sample standard deviation (n-1 denominator).
// Fewer than two samples have no spread, so 0.0 is returned.
func StandardDeviation(scores []float64) float64 {
	n := len(scores)
	if n < 2 {
		return 0.0
	}

	mean := Average(scores)
	sumSq := 0.0
	for _, s := range scores {
		d := s - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(n-1))
}

// ConsistencyScore maps score dispersion onto [0,100]: zero deviation is
// perfectly consistent (100) and the score decreases linearly with the
// sample standard deviation, floored at 0.
func ConsistencyScore(scores []float64) float64 {
	return clamp(100.0-20.0*StandardDeviation(scores), 0, 100)
}

// CategorizeScore buckets a [0,100] score into a three-tier label.
// Lower edges are inclusive: 80.0 is "excellent", 60.0 is "good".
func CategorizeScore(score float64) string {
	switch {
	case score >= 80.0:
		return "excellent"
	case score >= 60.0:
		return "good"
	default:
		return "needs improvement"
	}
}

// WeightedOverallAverage combines the per-axis averages with the 0.4/0.3/0.3
// weighting. Distinct from the unweighted mean used by Aggregate.
func WeightedOverallAverage(technical, communication, problemSolving float64) float64 {
	return technical*technicalWeight + communication*communicationWeight + problemSolving*problemSolvingWeight
}

// Aggregate computes per-axis averages and deviations across all analyzed
// answers. The overall average is the unweighted mean of the three axis
// averages; consistency is derived from the pooled scores of every axis and
// reported on the [0,10] scale.
func Aggregate(analyzed []models.AnswerAnalysis) models.AggregateStatistics {
	if len(analyzed) == 0 {
		return models.AggregateStatistics{}
	}

	technical := make([]float64, 0, len(analyzed))
	communication := make([]float64, 0, len(analyzed))
	problemSolving := make([]float64, 0, len(analyzed))
	for _, a := range analyzed {
		technical = append(technical, a.TechnicalScore)
		communication = append(communication, a.CommunicationScore)
		problemSolving = append(problemSolving, a.ProblemSolvingScore)
	}

	pooled := make([]float64, 0, 3*len(analyzed))
	pooled = append(pooled, technical...)
	pooled = append(pooled, communication...)
	pooled = append(pooled, problemSolving...)

	technicalAvg := Average(technical)
	communicationAvg := Average(communication)
	problemSolvingAvg := Average(problemSolving)

	return models.AggregateStatistics{
		TechnicalAvg:      round2(technicalAvg),
		CommunicationAvg:  round2(communicationAvg),
		ProblemSolvingAvg: round2(problemSolvingAvg),
		OverallAvg:        round2((technicalAvg + communicationAvg + problemSolvingAvg) / 3),
		TechnicalStd:      round2(StandardDeviation(technical)),
		CommunicationStd:  round2(StandardDeviation(communication)),
		ProblemSolvingStd: round2(StandardDeviation(problemSolving)),
		Consistency:       round2(ConsistencyScore(pooled) / 10),
		AnswerCount:       len(analyzed),
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
