package capture

import (
	"context"
	"os"
	"sync"
	"time"
)

// ScriptedRecognizer is a Recognizer that plays back canned recognition
// events. Used in tests and in demo mode (ACADEMY_CAPTURE=scripted).
type ScriptedRecognizer struct {
	// Events are emitted in order after Start, with Delay between them.
	Events []RecognitionEvent
	Delay  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func (s *ScriptedRecognizer) Start(ctx context.Context) (<-chan RecognitionEvent, error) {
	playCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	out := make(chan RecognitionEvent)
	go func() {
		defer close(out)
		for _, ev := range s.Events {
			if s.Delay > 0 {
				select {
				case <-playCtx.Done():
					return
				case <-time.After(s.Delay):
				}
			}
			select {
			case <-playCtx.Done():
				return
			case out <- ev:
			}
		}
	}()
	return out, nil
}

func (s *ScriptedRecognizer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// ScriptedSynthesizer records spoken utterances for assertion in tests.
type ScriptedSynthesizer struct {
	// VoiceList is what Voices returns. Defaults to a single en-US voice.
	VoiceList []Voice

	mu     sync.Mutex
	Spoken []string
}

func (s *ScriptedSynthesizer) Voices(_ context.Context) ([]Voice, error) {
	if len(s.VoiceList) == 0 {
		return []Voice{{Name: "Scripted", Locale: "en-US"}}, nil
	}
	return s.VoiceList, nil
}

func (s *ScriptedSynthesizer) Speak(ctx context.Context, _ Voice, text string) error {
	s.mu.Lock()
	s.Spoken = append(s.Spoken, text)
	s.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

// SpokenTexts returns a copy of everything spoken so far.
func (s *ScriptedSynthesizer) SpokenTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Spoken))
	copy(out, s.Spoken)
	return out
}

// NullRecognizer reports capture as unsupported. It is the default
// wiring when no speech backend is configured; the UI surfaces a
// permission/support affordance instead of a recorder.
type NullRecognizer struct{}

func (NullRecognizer) Start(context.Context) (<-chan RecognitionEvent, error) {
	return nil, ErrUnsupported
}

func (NullRecognizer) Stop() error { return nil }

// NullSynthesizer silently discards narration.
type NullSynthesizer struct{}

func (NullSynthesizer) Voices(context.Context) ([]Voice, error) {
	return []Voice{{Name: "Null", Locale: "en-US"}}, nil
}

func (NullSynthesizer) Speak(context.Context, Voice, string) error { return nil }

// FromEnv wires capture backends from the environment.
// ACADEMY_CAPTURE=scripted selects the scripted demo backends; anything
// else selects the null backends.
func FromEnv() (Recognizer, Synthesizer) {
	if os.Getenv("ACADEMY_CAPTURE") == "scripted" {
		rec := &ScriptedRecognizer{
			Events: []RecognitionEvent{
				{Text: "Hi, I'm excited to", Final: false},
				{Text: "Hi, I'm excited to join the team.", Final: true},
				{Text: "I bring three years of customer-facing experience.", Final: true},
			},
			Delay: 400 * time.Millisecond,
		}
		return rec, NullSynthesizer{}
	}
	return NullRecognizer{}, NullSynthesizer{}
}
