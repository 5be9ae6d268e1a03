package models

// Role of a single turn in the interview transcript.
const (
	RoleInterviewer = "INTERVIEWER"
	RoleCandidate   = "CANDIDATE"

	// Legacy alias the core service still emits for interviewer turns.
	RoleAI = "AI"
)

type ConversationMessage struct {
	Role    string `json:"role" validate:"required,oneof=INTERVIEWER CANDIDATE AI"`
	Content string `json:"content" validate:"required"`
}

// IsInterviewer reports whether the message was produced by the interviewer side.
func (m ConversationMessage) IsInterviewer() bool {
	return m.Role == RoleInterviewer || m.Role == RoleAI
}

func (m ConversationMessage) IsCandidate() bool {
	return m.Role == RoleCandidate
}

type CandidateProfile struct {
	Skills          []string `json:"skills,omitempty"`
	Experience      int      `json:"experience" validate:"min=0"`
	DesiredPosition string   `json:"desiredPosition,omitempty"`
}

type JobPosting struct {
	Title           string   `json:"title,omitempty"`
	Position        string   `json:"position,omitempty"`
	Description     string   `json:"description,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	PreferredSkills []string `json:"preferredSkills,omitempty"`
	ExperienceMin   *int     `json:"experienceMin,omitempty"`
	ExperienceMax   *int     `json:"experienceMax,omitempty"`
}
