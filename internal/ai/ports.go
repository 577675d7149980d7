package ai

import (
	"context"

	"github.com/revisio/notes-backend/internal/gemini"
)

// Summarizer turns raw prompt text into study notes.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Generator is the slice of the gemini client this package needs.
type Generator interface {
	Generate(ctx context.Context, endpoint string, payload *gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}
