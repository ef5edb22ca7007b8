package capture

import (
	"context"
	"errors"
)

// ErrPermissionDenied indicates the host denied microphone or audio access.
var ErrPermissionDenied = errors.New("capture: permission denied")

// ErrUnsupported indicates no capture backend is available on this host.
var ErrUnsupported = errors.New("capture: not supported")

// RecognitionEvent is a single speech-to-text event. Interim events carry
// partial text that later events may revise; final events carry committed
// text that is appended to the transcript.
type RecognitionEvent struct {
	Text  string
	Final bool
}

// Recognizer is the speech-to-text boundary. Start begins a capture
// session and returns a channel of recognition events. The channel is
// closed when the session ends, either via Stop or context cancellation.
type Recognizer interface {
	Start(ctx context.Context) (<-chan RecognitionEvent, error)
	Stop() error
}

// Voice identifies a synthesis voice offered by the host.
type Voice struct {
	Name   string
	Locale string
}

// Synthesizer is the speech-synthesis boundary. Speak blocks until the
// utterance finishes or the context is cancelled.
type Synthesizer interface {
	Voices(ctx context.Context) ([]Voice, error)
	Speak(ctx context.Context, voice Voice, text string) error
}
