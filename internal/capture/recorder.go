package capture

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// RecorderState is the recorder lifecycle state.
type RecorderState int

const (
	RecorderIdle RecorderState = iota
	RecorderRecording
	RecorderStopped
)

// stopGrace is how long Stop waits for trailing final events after
// asking the recognizer to stop. Recognition backends commonly flush a
// last final event after the stop request.
const stopGrace = 300 * time.Millisecond

// Recorder drives a Recognizer through the idle → recording → stopped
// lifecycle and accumulates final recognition events into a cumulative
// transcript. The transcript is updated synchronously as final events
// arrive, so interim UI reads never observe a partially applied event.
type Recorder struct {
	recognizer Recognizer

	mu         sync.Mutex
	state      RecorderState
	transcript strings.Builder
	interim    string
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewRecorder creates a Recorder over the given recognizer.
func NewRecorder(r Recognizer) *Recorder {
	return &Recorder{recognizer: r}
}

// Start begins capture. It is an error to start a recorder that is not idle.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.state != RecorderIdle {
		r.mu.Unlock()
		return fmt.Errorf("recorder: start from state %d", r.state)
	}
	r.mu.Unlock()

	capCtx, cancel := context.WithCancel(ctx)
	events, err := r.recognizer.Start(capCtx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})

	r.mu.Lock()
	r.state = RecorderRecording
	r.cancel = cancel
	r.done = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		for ev := range events {
			r.mu.Lock()
			if ev.Final {
				if r.transcript.Len() > 0 && ev.Text != "" {
					r.transcript.WriteString(" ")
				}
				r.transcript.WriteString(ev.Text)
				r.interim = ""
			} else {
				r.interim = ev.Text
			}
			r.mu.Unlock()
		}
	}()

	return nil
}

// Stop ends capture and returns the cumulative transcript. It waits a
// short grace period for trailing final events before reading.
func (r *Recorder) Stop() (string, error) {
	r.mu.Lock()
	if r.state != RecorderRecording {
		state := r.state
		r.mu.Unlock()
		return "", fmt.Errorf("recorder: stop from state %d", state)
	}
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	stopErr := r.recognizer.Stop()
	cancel()

	select {
	case <-done:
	case <-time.After(stopGrace):
	}

	r.mu.Lock()
	r.state = RecorderStopped
	r.interim = ""
	text := strings.TrimSpace(r.transcript.String())
	r.mu.Unlock()

	return text, stopErr
}

// Transcript returns the committed transcript so far. Safe to call in any
// state; during recording it reflects all final events received.
func (r *Recorder) Transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.TrimSpace(r.transcript.String())
}

// Interim returns the latest uncommitted partial text, if any.
func (r *Recorder) Interim() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interim
}

// State returns the current lifecycle state.
func (r *Recorder) State() RecorderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
