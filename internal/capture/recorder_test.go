package capture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAccumulatesFinalEvents(t *testing.T) {
	rec := &ScriptedRecognizer{
		Events: []RecognitionEvent{
			{Text: "Hello", Final: false},
			{Text: "Hello there.", Final: true},
			{Text: "How are", Final: false},
			{Text: "How are you?", Final: true},
		},
	}
	r := NewRecorder(rec)

	require.NoError(t, r.Start(context.Background()))
	assert.Equal(t, RecorderRecording, r.State())

	// Scripted events arrive without delay; give the pump a moment.
	time.Sleep(50 * time.Millisecond)

	text, err := r.Stop()
	require.NoError(t, err)
	assert.Equal(t, "Hello there. How are you?", text)
	assert.Equal(t, RecorderStopped, r.State())
}

func TestRecorderInterimDoesNotCommit(t *testing.T) {
	rec := &ScriptedRecognizer{
		Events: []RecognitionEvent{
			{Text: "partial only", Final: false},
		},
	}
	r := NewRecorder(rec)

	require.NoError(t, r.Start(context.Background()))
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, "", r.Transcript())

	text, err := r.Stop()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestRecorderEmptyStop(t *testing.T) {
	r := NewRecorder(&ScriptedRecognizer{})

	require.NoError(t, r.Start(context.Background()))
	text, err := r.Stop()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestRecorderStartTwiceFails(t *testing.T) {
	r := NewRecorder(&ScriptedRecognizer{})
	require.NoError(t, r.Start(context.Background()))
	assert.Error(t, r.Start(context.Background()))
}

func TestRecorderStopWhenIdleFails(t *testing.T) {
	r := NewRecorder(&ScriptedRecognizer{})
	_, err := r.Stop()
	assert.Error(t, err)
}

func TestRecorderUnsupportedBackend(t *testing.T) {
	r := NewRecorder(NullRecognizer{})
	err := r.Start(context.Background())
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, RecorderIdle, r.State())
}
