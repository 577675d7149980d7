package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revisio/notes-backend/internal/ai"
	"github.com/revisio/notes-backend/internal/gemini"
)

type fakeGenerator struct {
	resp *gemini.GenerateResponse
	err  error

	calls        int
	lastEndpoint string
	lastPayload  *gemini.GenerateRequest
}

func (f *fakeGenerator) Generate(_ context.Context, endpoint string, payload *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	f.calls++
	f.lastEndpoint = endpoint
	f.lastPayload = payload
	return f.resp, f.err
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

func TestSummarizeEmptyPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	svc := ai.NewService(gen, "http://upstream")

	_, err := svc.Summarize(context.Background(), "")

	require.ErrorIs(t, err, ai.ErrEmptyPrompt)
	assert.Zero(t, gen.calls, "empty prompt must not reach the API")
}

func TestSummarizeReturnsCandidateText(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("foo")}
	svc := ai.NewService(gen, "http://upstream")

	summary, err := svc.Summarize(context.Background(), "photosynthesis chapter")
	require.NoError(t, err)

	assert.Equal(t, "foo", summary)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "http://upstream", gen.lastEndpoint)
}

func TestSummarizePayloadShape(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("notes")}
	svc := ai.NewService(gen, "http://upstream")

	_, err := svc.Summarize(context.Background(), "photosynthesis chapter")
	require.NoError(t, err)

	p := gen.lastPayload
	require.NotNil(t, p)
	require.Len(t, p.Contents, 1)
	assert.Equal(t, "photosynthesis chapter", p.Contents[0].Parts[0].Text)
	require.NotNil(t, p.SystemInstruction)
	assert.Contains(t, p.SystemInstruction.Parts[0].Text, "revision assistant")
	assert.Contains(t, p.SystemInstruction.Parts[0].Text, "<mark>")
	assert.Nil(t, p.GenerationConfig)
}

func TestSummarizeNoUsableText(t *testing.T) {
	cases := map[string]*gemini.GenerateResponse{
		"no candidates": {},
		"no parts":      {Candidates: []gemini.Candidate{{}}},
		"empty text":    textResponse(""),
	}
	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			svc := ai.NewService(&fakeGenerator{resp: resp}, "http://upstream")
			_, err := svc.Summarize(context.Background(), "something")
			require.ErrorIs(t, err, ai.ErrEmptySummary)
		})
	}
}

func TestSummarizePropagatesUpstreamError(t *testing.T) {
	upErr := &gemini.RateLimitError{Attempts: 5}
	svc := ai.NewService(&fakeGenerator{err: upErr}, "http://upstream")

	_, err := svc.Summarize(context.Background(), "something")
	require.ErrorAs(t, err, &upErr)
}
