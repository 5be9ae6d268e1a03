package services

import (
	"strings"

	"github.com/jsjj10002/dataventure/internal/models"
)

// DepthAnalyzer decides whether the interview has gone deep enough to stop.
// It never calls out; the decision is a pure function of the transcript.
type DepthAnalyzer struct {
	// MaxExchanges is the hard cap on interviewer/candidate exchange pairs.
	MaxExchanges int
	// MinExchanges is the floor below which topic saturation is ignored.
	MinExchanges int
	// SaturationRatio is the minimum share of new content terms the latest
	// answer must introduce for the conversation to still count as covering
	// new ground.
	SaturationRatio float64
}

type DepthAnalysis struct {
	ExchangeCount  int
	TopicCount     int
	NewTopicRatio  float64
	ShouldContinue bool
}

func NewDepthAnalyzer(maxExchanges, minExchanges int) *DepthAnalyzer {
	if maxExchanges <= 0 {
		maxExchanges = 8
	}
	if minExchanges <= 0 {
		minExchanges = 3
	}
	return &DepthAnalyzer{
		MaxExchanges:    maxExchanges,
		MinExchanges:    minExchanges,
		SaturationRatio: 0.2,
	}
}

// Analyze counts well-formed interviewer→candidate exchange pairs and
// measures topical coverage as the fraction of content terms in the latest
// candidate answer that earlier answers had not used. Questioning continues
// while the exchange cap is not reached and, past the minimum exchange
// count, the candidate is still introducing new topics.
func (d *DepthAnalyzer) Analyze(history []models.ConversationMessage) DepthAnalysis {
	answers := candidateAnswers(history)
	exchanges := len(answers)

	seen := make(map[string]struct{})
	newTopicRatio := 1.0
	for i, answer := range answers {
		terms := contentTerms(answer)
		fresh := 0
		for _, term := range terms {
			if _, ok := seen[term]; !ok {
				fresh++
				seen[term] = struct{}{}
			}
		}
		if i == len(answers)-1 && len(terms) > 0 {
			newTopicRatio = float64(fresh) / float64(len(terms))
		}
	}

	analysis := DepthAnalysis{
		ExchangeCount: exchanges,
		TopicCount:    len(seen),
		NewTopicRatio: newTopicRatio,
	}

	switch {
	case exchanges >= d.MaxExchanges:
		analysis.ShouldContinue = false
	case exchanges >= d.MinExchanges && newTopicRatio < d.SaturationRatio:
		analysis.ShouldContinue = false
	default:
		analysis.ShouldContinue = true
	}

	return analysis
}

// candidateAnswers extracts the answer halves of well-formed
// interviewer→candidate pairs, in transcript order.
func candidateAnswers(history []models.ConversationMessage) []string {
	var answers []string
	for i := 0; i < len(history)-1; i++ {
		if history[i].IsInterviewer() && history[i+1].IsCandidate() {
			answers = append(answers, history[i+1].Content)
			i++
		}
	}
	return answers
}

// contentTerms lowercases and splits an answer, dropping short tokens that
// carry no topical signal.
func contentTerms(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:()\"'")
		if len([]rune(f)) >= 3 {
			terms = append(terms, f)
		}
	}
	return terms
}
