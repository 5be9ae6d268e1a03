package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"github.com/jsjj10002/dataventure/internal/models"
	"github.com/jsjj10002/dataventure/internal/services"
)

type fakeQuestionService struct {
	first    *models.QuestionGenerationResponse
	followUp *models.QuestionGenerationResponse
	chunks   []models.StreamChunk
	err      error

	firstCalls    int
	followUpCalls int
	streamCalls   int
}

func (f *fakeQuestionService) GenerateFirstQuestion(_ context.Context, _ *models.CandidateProfile, _ *models.JobPosting) (*models.QuestionGenerationResponse, error) {
	f.firstCalls++
	return f.first, f.err
}

func (f *fakeQuestionService) GenerateFollowUp(_ context.Context, _ []models.ConversationMessage, _ string, _ *models.CandidateProfile, _ *models.JobPosting) (*models.QuestionGenerationResponse, error) {
	f.followUpCalls++
	return f.followUp, f.err
}

func (f *fakeQuestionService) StreamFollowUp(_ context.Context, _ []models.ConversationMessage, _ string, _ *models.CandidateProfile, _ *models.JobPosting) (<-chan models.StreamChunk, models.QuestionType) {
	f.streamCalls++
	out := make(chan models.StreamChunk)
	go func() {
		defer close(out)
		for _, c := range f.chunks {
			out <- c
		}
	}()
	return out, models.QuestionTypeFollowUp
}

type fakeEvaluationService struct {
	report *models.EvaluationReport
	err    error
	calls  int
}

func (f *fakeEvaluationService) GenerateEvaluation(_ context.Context, _ []models.ConversationMessage, _ *models.CandidateProfile, _ *models.JobPosting) (*models.EvaluationReport, error) {
	f.calls++
	return f.report, f.err
}

type fakeMatchingService struct {
	resp *models.MatchResponse
	err  error
}

func (f *fakeMatchingService) CalculateMatch(_ context.Context, _ models.MatchRequest) (*models.MatchResponse, error) {
	return f.resp, f.err
}

type fakeTranscriptionService struct {
	text         string
	err          error
	lastLanguage string
	lastAudioLen int
}

func (f *fakeTranscriptionService) Transcribe(_ context.Context, audio []byte, _, language string) (string, error) {
	f.lastAudioLen = len(audio)
	f.lastLanguage = language
	return f.text, f.err
}

type fakeResumeParser struct {
	content *services.ResumeContent
	err     error
}

func (f *fakeResumeParser) ExtractText(_ []byte) (*services.ResumeContent, error) {
	return f.content, f.err
}

// multipartUpload builds a multipart request with one file field.
func multipartUpload(url, field, filename string, payload []byte, extraFields map[string]string) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, err
	}
	for k, v := range extraFields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}
