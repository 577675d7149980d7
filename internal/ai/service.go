package ai

import (
	"context"
	"errors"

	"github.com/revisio/notes-backend/internal/gemini"
)

var (
	ErrEmptyPrompt  = errors.New("missing summaryPrompt in request body")
	ErrEmptySummary = errors.New("failed to generate summary from the model")
)

// The instruction lives on the server side so every client gets the same
// note format.
const systemPrompt = "You are an expert academic revision assistant. Your goal is to provide concise, accurate, and easily digestible study notes. Always output a clean list of bullet points and identify keywords within the summary using a <mark> tag."

type Service struct {
	gen      Generator
	endpoint string
}

func NewService(gen Generator, endpoint string) *Service {
	return &Service{
		gen:      gen,
		endpoint: endpoint,
	}
}

func (s *Service) Summarize(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	payload := &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: systemPrompt}},
		},
	}

	resp, err := s.gen.Generate(ctx, s.endpoint, payload)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptySummary
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptySummary
	}

	// Returned verbatim, callers render any embedded markup themselves.
	return text, nil
}
