package speech

import (
	"context"
	"errors"
	"strings"

	"github.com/revisio/notes-backend/internal/gemini"
)

var (
	ErrEmptyText    = errors.New("missing textToSpeak in request body")
	ErrInvalidAudio = errors.New("invalid audio data received from API or model failed to generate audio")
)

const (
	instructionPrefix = "Say in a clear, informative voice: "
	voiceName         = "Kore"

	// The model answers with linear PCM, e.g. audio/L16;rate=24000.
	pcmMimePrefix = "audio/L16"
)

type Generator interface {
	Generate(ctx context.Context, endpoint string, payload *gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

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

func (s *Service) Synthesize(ctx context.Context, text string) (*Audio, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	payload := &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: instructionPrefix + text}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &gemini.SpeechConfig{
				VoiceConfig: gemini.VoiceConfig{
					PrebuiltVoiceConfig: gemini.PrebuiltVoiceConfig{VoiceName: voiceName},
				},
			},
		},
	}

	resp, err := s.gen.Generate(ctx, s.endpoint, payload)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrInvalidAudio
	}
	inline := resp.Candidates[0].Content.Parts[0].InlineData
	if inline == nil || inline.Data == "" || !strings.HasPrefix(inline.MimeType, pcmMimePrefix) {
		return nil, ErrInvalidAudio
	}

	return &Audio{Data: inline.Data, MimeType: inline.MimeType}, nil
}
