package assessment

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/capture"
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	assessments []store.AssessmentEventData
	results     []store.ResultEventData
}

func (m *mockEventRepo) AppendAssessment(_ context.Context, d store.AssessmentEventData) error {
	m.assessments = append(m.assessments, d)
	return nil
}
func (m *mockEventRepo) AppendResult(_ context.Context, d store.ResultEventData) error {
	m.results = append(m.results, d)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) ResultsForAssessment(_ context.Context, _ string) ([]store.ResultRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) Assessments(_ context.Context) ([]store.AssessmentRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

// blockingSynth records each utterance context and speaks until it is
// cancelled, mirroring a real synthesis backend.
type blockingSynth struct {
	mu   sync.Mutex
	ctxs []context.Context
}

func (b *blockingSynth) Voices(_ context.Context) ([]capture.Voice, error) {
	return []capture.Voice{{Name: "Test", Locale: "en-US"}}, nil
}

func (b *blockingSynth) Speak(ctx context.Context, _ capture.Voice, _ string) error {
	b.mu.Lock()
	b.ctxs = append(b.ctxs, ctx)
	b.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func (b *blockingSynth) utterances() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ctxs)
}

func (b *blockingSynth) cancelled(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i >= len(b.ctxs) {
		return false
	}
	return b.ctxs[i].Err() != nil
}

// trackedRecognizer emits canned final events and records whether the
// stream was ever stopped.
type trackedRecognizer struct {
	events []capture.RecognitionEvent

	mu      sync.Mutex
	stopped bool
}

func (r *trackedRecognizer) Start(ctx context.Context) (<-chan capture.RecognitionEvent, error) {
	ch := make(chan capture.RecognitionEvent)
	events := r.events
	go func() {
		defer close(ch)
		for _, ev := range events {
			ch <- ev
		}
		<-ctx.Done()
	}()
	return ch, nil
}

func (r *trackedRecognizer) Stop() error {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
	return nil
}

func (r *trackedRecognizer) wasStopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}

func keyTab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab}
}

func keyShiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

func keySpace() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ' ', Text: " "}
}

func nullNarrator() *capture.Narrator {
	return capture.NewNarrator(capture.NullSynthesizer{}, "", "")
}

// drainCmd executes a command tree, recursing into batches. Returned
// messages are discarded; tests feed messages to Update explicitly.
func drainCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			drainCmd(c)
		}
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

// startRecording presses space and feeds the start outcome back in.
func startRecording(t *testing.T, s *AssessmentScreen) {
	t.Helper()
	_, cmd := s.Update(keySpace())
	if cmd == nil {
		t.Fatal("expected a command to start recording")
	}
	raw := cmd()
	msg, ok := raw.(recordingStartedMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", raw)
	}
	if msg.Err != nil {
		t.Fatalf("start recording: %v", msg.Err)
	}
	s.Update(msg)
	if !s.recording {
		t.Fatal("expected recording to be active")
	}
}

func TestAdvanceCancelsActiveNarration(t *testing.T) {
	synth := &blockingSynth{}
	cat := catalog.New([]catalog.Scene{
		{ID: "welcome", Kind: catalog.KindNarrative, Narration: "Welcome aboard."},
		{ID: "recap", Kind: catalog.KindReview},
		{ID: "done", Kind: catalog.KindCompletion},
	})
	s := New(cat, llm.NewMockProvider(), &mockEventRepo{}, &mockSnapshotRepo{},
		capture.NullRecognizer{}, capture.NewNarrator(synth, "", ""))

	drainCmd(s.Init())
	waitFor(t, func() bool { return synth.utterances() == 1 })

	s.Update(keyTab())

	if s.ctrl.Scene().ID != "recap" {
		t.Fatalf("scene = %q, want %q", s.ctrl.Scene().ID, "recap")
	}
	waitFor(t, func() bool { return synth.cancelled(0) })
}

func TestRetreatStopsActiveRecording(t *testing.T) {
	rec := &trackedRecognizer{}
	cat := catalog.New([]catalog.Scene{
		{ID: "welcome", Kind: catalog.KindNarrative},
		{ID: "intro", Kind: catalog.KindVoice, Dimension: "communication",
			Voice: &catalog.VoicePayload{Scenario: "Introduce yourself."}},
		{ID: "done", Kind: catalog.KindCompletion},
	})
	s := New(cat, llm.NewMockProvider(), &mockEventRepo{}, &mockSnapshotRepo{}, rec, nullNarrator())

	s.Update(keyTab())
	if s.ctrl.Scene().Kind != catalog.KindVoice {
		t.Fatalf("scene kind = %v, want voice", s.ctrl.Scene().Kind)
	}
	startRecording(t, s)

	s.Update(keyShiftTab())

	if s.ctrl.Scene().ID != "welcome" {
		t.Fatalf("scene = %q, want %q", s.ctrl.Scene().ID, "welcome")
	}
	if !rec.wasStopped() {
		t.Error("expected the capture stream to be stopped on retreat")
	}
	if s.recording || s.recorder != nil {
		t.Error("expected the recorder to be discarded")
	}
}

func TestExpiryDoesNotAutoSubmitQuickfire(t *testing.T) {
	cat := catalog.New([]catalog.Scene{
		{ID: "printer", Kind: catalog.KindQuickfire, Dimension: "initiative",
			TimeLimit: time.Nanosecond,
			Quickfire: &catalog.QuickfirePayload{Situation: "The printer is smoking."}},
		{ID: "done", Kind: catalog.KindCompletion},
	})
	provider := llm.NewMockProvider()
	s := New(cat, provider, &mockEventRepo{}, &mockSnapshotRepo{}, capture.NullRecognizer{}, nullNarrator())

	_, cmd := s.Update(timerTickMsg{At: time.Now(), Epoch: s.ctrl.Epoch()})

	if cmd != nil {
		t.Error("expected no command when an idle scene expires")
	}
	sess := s.ctrl.Session()
	if sess.QuickfireSubmitted {
		t.Error("expiry must not submit on the subject's behalf")
	}
	if sess.Evaluating {
		t.Error("expiry must not start an evaluation")
	}
	if provider.CallCount() != 0 {
		t.Errorf("evaluation calls = %d, want 0", provider.CallCount())
	}
	if s.ctrl.CanAdvance() {
		t.Error("gate must stay closed until the subject submits")
	}
	if s.remaining != 0 {
		t.Errorf("remaining = %v, want 0", s.remaining)
	}
}

func TestExpiryStopsRecordingWithoutEvaluating(t *testing.T) {
	rec := &trackedRecognizer{events: []capture.RecognitionEvent{
		{Text: "halfway through a thought", Final: true},
	}}
	cat := catalog.New([]catalog.Scene{
		{ID: "intro", Kind: catalog.KindVoice, Dimension: "communication",
			TimeLimit: time.Nanosecond,
			Voice:     &catalog.VoicePayload{Scenario: "Introduce yourself."}},
		{ID: "done", Kind: catalog.KindCompletion},
	})
	provider := llm.NewMockProvider()
	s := New(cat, provider, &mockEventRepo{}, &mockSnapshotRepo{}, rec, nullNarrator())

	startRecording(t, s)

	_, cmd := s.Update(timerTickMsg{At: time.Now(), Epoch: s.ctrl.Epoch()})
	if cmd == nil {
		t.Fatal("expected a command to stop the recording")
	}
	raw := cmd()
	msg, ok := raw.(recordingStoppedMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", raw)
	}
	if !msg.Expired {
		t.Error("expected the stop to be marked as expiry-forced")
	}
	if !rec.wasStopped() {
		t.Error("expected the capture stream to be stopped")
	}

	s.Update(msg)

	sess := s.ctrl.Session()
	if sess.Evaluating {
		t.Error("expiry must not start an evaluation")
	}
	if sess.Result != nil {
		t.Error("expiry must not record a result")
	}
	if sess.Transcript == "" {
		t.Error("the captured transcript should be kept for the subject")
	}
	if provider.CallCount() != 0 {
		t.Errorf("evaluation calls = %d, want 0", provider.CallCount())
	}
}
