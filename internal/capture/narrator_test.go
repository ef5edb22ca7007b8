package capture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyVoicesSynth fails voice listing a set number of times before
// delegating to the scripted synthesizer.
type flakyVoicesSynth struct {
	ScriptedSynthesizer
	failures int
}

func (f *flakyVoicesSynth) Voices(ctx context.Context) ([]Voice, error) {
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("voices unavailable")
	}
	return f.ScriptedSynthesizer.Voices(ctx)
}

func TestNarratorSpeaks(t *testing.T) {
	synth := &ScriptedSynthesizer{}
	n := NewNarrator(synth, "", "")

	require.NoError(t, n.Speak(context.Background(), "Welcome to your first day."))
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, []string{"Welcome to your first day."}, synth.SpokenTexts())
	n.Stop()
}

func TestNarratorSupersedesActiveUtterance(t *testing.T) {
	synth := &ScriptedSynthesizer{}
	n := NewNarrator(synth, "", "")
	ctx := context.Background()

	require.NoError(t, n.Speak(ctx, "first"))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, n.Speak(ctx, "second"))
	time.Sleep(20 * time.Millisecond)

	// Both were started; the first was cancelled by the second.
	assert.Equal(t, []string{"first", "second"}, synth.SpokenTexts())
	n.Stop()
}

func TestVoiceSelection(t *testing.T) {
	voices := []Voice{
		{Name: "Alpha", Locale: "de-DE"},
		{Name: "Beta", Locale: "en-GB"},
		{Name: "Gamma", Locale: "en-US"},
	}

	tests := []struct {
		name   string
		prefer string
		locale string
		want   string
	}{
		{"named voice wins", "Gamma", "de", "Gamma"},
		{"locale prefix fallback", "Missing", "en", "Beta"},
		{"first voice fallback", "Missing", "xx", "Alpha"},
		{"no preferences", "", "", "Alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickVoice(voices, tt.prefer, tt.locale)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestNarratorRetriesVoiceResolutionAfterFailure(t *testing.T) {
	synth := &flakyVoicesSynth{failures: 1}
	n := NewNarrator(synth, "", "")

	// The first attempt hits the transient listing failure.
	require.Error(t, n.Speak(context.Background(), "first try"))

	// The failure is not cached; the next Speak resolves and speaks.
	require.NoError(t, n.Speak(context.Background(), "second try"))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"second try"}, synth.SpokenTexts())
	n.Stop()
}

func TestNarratorVoiceResolvedLazilyAndCached(t *testing.T) {
	synth := &ScriptedSynthesizer{VoiceList: []Voice{
		{Name: "Echo", Locale: "en-US"},
	}}
	n := NewNarrator(synth, "Echo", "en")

	v, err := n.resolveVoice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Echo", v.Name)

	// Second resolve hits the cache.
	v2, err := n.resolveVoice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, v, v2)
}
