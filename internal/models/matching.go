package models

type MatchRequest struct {
	CandidateProfile CandidateProfile `json:"candidateProfile" validate:"required"`
	JobPosting       JobPosting       `json:"jobPosting" validate:"required"`
	ResumeText       string           `json:"resumeText,omitempty"`
}

type MatchResponse struct {
	MatchScore      float64 `json:"matchScore"`
	Similarity      float64 `json:"similarity"`
	ExperienceBonus float64 `json:"experienceBonus"`
	SkillsBonus     float64 `json:"skillsBonus"`
	MatchReason     string  `json:"matchReason"`
}

type TranscriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type ResumeParseResponse struct {
	Text      string `json:"text"`
	PageCount int    `json:"pageCount"`
}
