package models

type QuestionType string

const (
	QuestionTypeOpen     QuestionType = "open"
	QuestionTypeFollowUp QuestionType = "follow-up"
	QuestionTypeClosing  QuestionType = "closing"
)

type QuestionGenerationRequest struct {
	InterviewID         string                `json:"interviewId,omitempty"`
	CandidateProfile    *CandidateProfile     `json:"candidateProfile,omitempty"`
	JobPosting          *JobPosting           `json:"jobPosting,omitempty"`
	ConversationHistory []ConversationMessage `json:"conversationHistory,omitempty" validate:"omitempty,dive"`
	LastAnswer          string                `json:"lastAnswer,omitempty"`
	IsFirstQuestion     bool                  `json:"isFirstQuestion"`
}

type QuestionGenerationResponse struct {
	Question     string       `json:"question"`
	QuestionType QuestionType `json:"questionType"`
}

// StreamChunk is one unit of a streamed question. Exactly one of Content or
// Err is meaningful; channel close signals completion.
type StreamChunk struct {
	Content string
	Err     error
}
