package models

type DepthLevel string

const (
	DepthShallow  DepthLevel = "shallow"
	DepthModerate DepthLevel = "moderate"
	DepthDetailed DepthLevel = "detailed"
)

// AnswerAnalysis is the scored result for a single question/answer pair.
// Axis scores are clamped into [0,10] before the struct is built.
type AnswerAnalysis struct {
	TechnicalScore      float64    `json:"technical_score"`
	CommunicationScore  float64    `json:"communication_score"`
	ProblemSolvingScore float64    `json:"problem_solving_score"`
	Keywords            []string   `json:"keywords"`
	DepthLevel          DepthLevel `json:"depth_level"`
	Question            string     `json:"question"`
	Answer              string     `json:"answer"`
}

// AverageScore is the unweighted mean of the three axis scores.
func (a AnswerAnalysis) AverageScore() float64 {
	return (a.TechnicalScore + a.CommunicationScore + a.ProblemSolvingScore) / 3
}

// AggregateStatistics is derived fresh per evaluation request, never stored.
// Averages and deviations are on the [0,10] axis scale; Consistency is [0,10].
type AggregateStatistics struct {
	TechnicalAvg      float64 `json:"technical_avg"`
	CommunicationAvg  float64 `json:"communication_avg"`
	ProblemSolvingAvg float64 `json:"problem_solving_avg"`
	OverallAvg        float64 `json:"overall_avg"`
	TechnicalStd      float64 `json:"technical_std"`
	CommunicationStd  float64 `json:"communication_std"`
	ProblemSolvingStd float64 `json:"problem_solving_std"`
	Consistency       float64 `json:"consistency"`
	AnswerCount       int     `json:"answer_count"`
}

// FinalScores carries the axis averages rescaled to [0,100]. Both overall
// aggregation policies are reported: the unweighted 3-way mean and the
// 0.4/0.3/0.3 weighted mean.
type FinalScores struct {
	TechnicalScore       float64 `json:"technicalScore"`
	CommunicationScore   float64 `json:"communicationScore"`
	ProblemSolvingScore  float64 `json:"problemSolvingScore"`
	OverallScore         float64 `json:"overallScore"`
	WeightedOverallScore float64 `json:"weightedOverallScore"`
	Category             string  `json:"category"`
}

type Feedback struct {
	Strengths              []string `json:"strengths"`
	Weaknesses             []string `json:"weaknesses"`
	Recommendations        []string `json:"recommendations"`
	Summary                string   `json:"summary"`
	TechnicalFeedback      string   `json:"technical_feedback"`
	CommunicationFeedback  string   `json:"communication_feedback"`
	ProblemSolvingFeedback string   `json:"problem_solving_feedback"`
}

// EvaluationReport is the assembled result of the evaluation pipeline.
type EvaluationReport struct {
	Scores          FinalScores
	Statistics      AggregateStatistics
	Feedback        Feedback
	AnalyzedAnswers []AnswerAnalysis
}

type EvaluationRequest struct {
	ConversationHistory []ConversationMessage `json:"conversationHistory" validate:"required,min=2,dive"`
	CandidateProfile    *CandidateProfile     `json:"candidateProfile,omitempty"`
	JobPosting          *JobPosting           `json:"jobPosting,omitempty"`
}

type EvaluationResponse struct {
	EvaluationID    string              `json:"evaluationId"`
	Scores          FinalScores         `json:"scores"`
	Statistics      AggregateStatistics `json:"statistics"`
	Feedback        Feedback            `json:"feedback"`
	AnalyzedAnswers []AnswerAnalysis    `json:"analyzedAnswers"`
	Message         string              `json:"message"`
}
