package services

import (
	"context"
	"errors"
)

// fakeGemini scripts the completion capability for tests and records what
// was asked of it.
type fakeGemini struct {
	textResponse string
	jsonResponse string
	streamChunks []string
	err          error

	textCalls   int
	jsonCalls   int
	streamCalls int
	lastPrompt  string
}

func (f *fakeGemini) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	f.textCalls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.textResponse, nil
}

func (f *fakeGemini) GenerateJSON(_ context.Context, _, userPrompt string, _ float32) (string, error) {
	f.jsonCalls++
	f.lastPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.jsonResponse, nil
}

func (f *fakeGemini) GenerateTextStream(_ context.Context, prompt string, _ float32) (<-chan string, <-chan error) {
	f.streamCalls++
	f.lastPrompt = prompt

	chunks := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(chunks)
		defer close(errc)
		for _, c := range f.streamChunks {
			chunks <- c
		}
		if f.err != nil {
			errc <- f.err
		}
	}()
	return chunks, errc
}

func (f *fakeGemini) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return nil, errors.New("fakeGemini does not embed")
}

func (f *fakeGemini) TranscribeAudio(_ context.Context, _ []byte, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.textResponse, nil
}

// fakeEmbedder returns scripted vectors in call order.
type fakeEmbedder struct {
	vectors [][]float32
	err     error
	calls   int
	inputs  []string
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.inputs = append(f.inputs, text)
	if f.err != nil {
		return nil, f.err
	}
	v := f.vectors[f.calls%len(f.vectors)]
	f.calls++
	return v, nil
}
