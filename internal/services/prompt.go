package services

import (
	"fmt"
	"strings"

	"github.com/jsjj10002/dataventure/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnswerAnalysisSystemPrompt returns the grading instructions for a
// single question/answer pair.
func (pb *PromptBuilder) BuildAnswerAnalysisSystemPrompt() string {
	return `You are an expert HR interview evaluator.
Analyze the given question and answer against these criteria:

1. Technical: accuracy and depth of technical knowledge
2. Communication: clarity, structure, expressiveness
3. Problem Solving: systematic thinking, solution approach

Score each criterion from 0 to 10 and respond in JSON:
{
  "technical_score": 8.5,
  "communication_score": 7.0,
  "problem_solving_score": 9.0,
  "keywords": ["Python", "Django", "debugging"],
  "depth_level": "detailed",
  "reasoning": "basis for the evaluation"
}

"depth_level" must be one of "shallow", "moderate" or "detailed".`
}

func (pb *PromptBuilder) BuildAnswerAnalysisPrompt(question, answer string) string {
	return fmt.Sprintf(`Question: %s

Answer: %s

Analyze and evaluate the answer above.`, question, answer)
}

// BuildFeedbackSystemPrompt returns the instructions for the comprehensive
// evaluation feedback call.
func (pb *PromptBuilder) BuildFeedbackSystemPrompt() string {
	return `You are an expert HR evaluator and career coach.
Write comprehensive, constructive feedback based on the interview analysis results.

Principles:
1. Ground every statement in the data provided
2. Include concrete examples
3. Keep a positive, constructive tone
4. Give actionable improvement advice

Respond in JSON:
{
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "weaknesses": ["weakness 1", "weakness 2"],
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"],
  "summary": "overall evaluation summary",
  "technical_feedback": "detailed technical feedback",
  "communication_feedback": "detailed communication feedback",
  "problem_solving_feedback": "detailed problem solving feedback"
}`
}

// BuildFeedbackPrompt assembles the statistics plus the strongest and
// weakest answer excerpts into the feedback context.
func (pb *PromptBuilder) BuildFeedbackPrompt(
	stats models.AggregateStatistics,
	best, worst []models.AnswerAnalysis,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) string {
	var b strings.Builder

	b.WriteString("The following is the analysis of an interview.\n")
	b.WriteString("\n## Statistics\n")
	fmt.Fprintf(&b, "- Technical average: %.2f/10\n", stats.TechnicalAvg)
	fmt.Fprintf(&b, "- Communication average: %.2f/10\n", stats.CommunicationAvg)
	fmt.Fprintf(&b, "- Problem solving average: %.2f/10\n", stats.ProblemSolvingAvg)
	fmt.Fprintf(&b, "- Overall average: %.2f/10\n", stats.OverallAvg)
	fmt.Fprintf(&b, "- Consistency: %.2f/10\n", stats.Consistency)
	fmt.Fprintf(&b, "- Answers analyzed: %d\n", stats.AnswerCount)

	b.WriteString("\n## Strongest answers\n")
	for i, ans := range best {
		fmt.Fprintf(&b, "\n%d. Average score: %.1f/10\n", i+1, ans.AverageScore())
		fmt.Fprintf(&b, "   Question: %s\n", excerpt(ans.Question, 100))
		fmt.Fprintf(&b, "   Answer: %s\n", excerpt(ans.Answer, 100))
		if len(ans.Keywords) > 0 {
			fmt.Fprintf(&b, "   Keywords: %s\n", strings.Join(ans.Keywords, ", "))
		}
	}

	b.WriteString("\n## Answers needing improvement\n")
	for i, ans := range worst {
		fmt.Fprintf(&b, "\n%d. Average score: %.1f/10\n", i+1, ans.AverageScore())
		fmt.Fprintf(&b, "   Question: %s\n", excerpt(ans.Question, 100))
		fmt.Fprintf(&b, "   Answer: %s\n", excerpt(ans.Answer, 100))
	}

	if profile != nil && len(profile.Skills) > 0 {
		fmt.Fprintf(&b, "\n## Candidate skills\n%s\n", strings.Join(profile.Skills, ", "))
	}
	if posting != nil && posting.Position != "" {
		fmt.Fprintf(&b, "\n## Applied position\n%s\n", posting.Position)
	}

	b.WriteString("\nWrite the comprehensive evaluation and feedback based on the information above.")

	return b.String()
}

// BuildFirstQuestionPrompt produces the opening-question prompt from the
// profile and posting only.
func (pb *PromptBuilder) BuildFirstQuestionPrompt(profile *models.CandidateProfile, posting *models.JobPosting) string {
	var b strings.Builder

	b.WriteString("You are a professional technical interviewer conducting a live interview.\n")
	pb.writeContext(&b, profile, posting)
	b.WriteString("\nAsk one friendly opening question that invites the candidate to introduce ")
	b.WriteString("their background and most relevant experience. ")
	b.WriteString("Return only the question text, no preamble.")

	return b.String()
}

// BuildFollowUpPrompt produces the follow-up prompt from the transcript and
// the candidate's latest answer. The streamed path uses the same prompt.
func (pb *PromptBuilder) BuildFollowUpPrompt(
	history []models.ConversationMessage,
	lastAnswer string,
	profile *models.CandidateProfile,
	posting *models.JobPosting,
) string {
	var b strings.Builder

	b.WriteString("You are a professional technical interviewer conducting a live interview.\n")
	pb.writeContext(&b, profile, posting)

	b.WriteString("\nConversation so far:\n")
	for _, msg := range history {
		role := "Candidate"
		if msg.IsInterviewer() {
			role = "Interviewer"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, excerpt(msg.Content, 300))
	}

	fmt.Fprintf(&b, "\nThe candidate's latest answer:\n%s\n", lastAnswer)
	b.WriteString("\nAsk one focused follow-up question that digs deeper into the latest answer ")
	b.WriteString("or explores an aspect of the role not yet covered. ")
	b.WriteString("Return only the question text, no preamble.")

	return b.String()
}

// BuildMatchReasonPrompt asks for a short human-readable justification of a
// computed match score.
func (pb *PromptBuilder) BuildMatchReasonPrompt(
	profile models.CandidateProfile,
	posting models.JobPosting,
	matchScore float64,
) string {
	var b strings.Builder

	b.WriteString("You are an expert technical recruiter.\n")
	pb.writeContext(&b, &profile, &posting)
	fmt.Fprintf(&b, "\nThe computed match score between this candidate and this posting is %.1f out of 100.\n", matchScore)
	b.WriteString("Explain in 2-3 sentences why this candidate fits or does not fit the posting. ")
	b.WriteString("Return only the explanation text.")

	return b.String()
}

func (pb *PromptBuilder) writeContext(b *strings.Builder, profile *models.CandidateProfile, posting *models.JobPosting) {
	if profile != nil {
		b.WriteString("\nCandidate profile:\n")
		if len(profile.Skills) > 0 {
			fmt.Fprintf(b, "- Skills: %s\n", strings.Join(profile.Skills, ", "))
		}
		if profile.Experience > 0 {
			fmt.Fprintf(b, "- Experience: %d years\n", profile.Experience)
		}
		if profile.DesiredPosition != "" {
			fmt.Fprintf(b, "- Desired position: %s\n", profile.DesiredPosition)
		}
	}

	if posting != nil {
		b.WriteString("\nJob posting:\n")
		if posting.Title != "" {
			fmt.Fprintf(b, "- Title: %s\n", posting.Title)
		}
		if posting.Position != "" {
			fmt.Fprintf(b, "- Position: %s\n", posting.Position)
		}
		if len(posting.Requirements) > 0 {
			fmt.Fprintf(b, "- Requirements: %s\n", strings.Join(posting.Requirements, ", "))
		}
		if len(posting.PreferredSkills) > 0 {
			fmt.Fprintf(b, "- Preferred skills: %s\n", strings.Join(posting.PreferredSkills, ", "))
		}
	}
}

func excerpt(text string, max int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
