package speech

import "context"

// Audio is a base64 payload plus its MIME type, passed through to the
// caller undecoded.
type Audio struct {
	Data     string
	MimeType string
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
}
