package capture

import (
	"context"
	"strings"
	"sync"
)

// Narrator speaks scene narration through a Synthesizer. At most one
// utterance is active: a new Speak supersedes and cancels the previous
// one. Voice selection is lazy, resolved on first use: a voice matching
// the preferred name wins, then the first voice matching the preferred
// locale, then the first voice offered.
type Narrator struct {
	synth           Synthesizer
	preferredName   string
	preferredLocale string

	mu     sync.Mutex
	voice  *Voice
	cancel context.CancelFunc
}

// NewNarrator creates a Narrator with the given voice preferences.
// Either preference may be empty.
func NewNarrator(s Synthesizer, preferredName, preferredLocale string) *Narrator {
	return &Narrator{
		synth:           s,
		preferredName:   preferredName,
		preferredLocale: preferredLocale,
	}
}

// Speak cancels any in-flight utterance and starts speaking text.
// It returns once the utterance has been started; completion is
// asynchronous.
func (n *Narrator) Speak(ctx context.Context, text string) error {
	voice, err := n.resolveVoice(ctx)
	if err != nil {
		return err
	}

	utterCtx, cancel := context.WithCancel(ctx)

	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
	}
	n.cancel = cancel
	n.mu.Unlock()

	go func() {
		_ = n.synth.Speak(utterCtx, voice, text)
	}()

	return nil
}

// Stop cancels the active utterance, if any.
func (n *Narrator) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

// resolveVoice picks and caches the narration voice. Only a successful
// resolution is cached; a transient Voices failure is retried on the
// next Speak.
func (n *Narrator) resolveVoice(ctx context.Context) (Voice, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.voice != nil {
		return *n.voice, nil
	}

	voices, err := n.synth.Voices(ctx)
	if err != nil {
		return Voice{}, err
	}
	if len(voices) == 0 {
		return Voice{}, ErrUnsupported
	}

	picked := pickVoice(voices, n.preferredName, n.preferredLocale)
	n.voice = &picked
	return picked, nil
}

func pickVoice(voices []Voice, name, locale string) Voice {
	if name != "" {
		for _, v := range voices {
			if v.Name == name {
				return v
			}
		}
	}
	if locale != "" {
		for _, v := range voices {
			if strings.HasPrefix(v.Locale, locale) {
				return v
			}
		}
	}
	return voices[0]
}
