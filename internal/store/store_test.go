package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestResultLedgerAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []ResultEventData{
		{
			AssessmentID: "run-1",
			SceneID:      "voice-intro",
			Kind:         "voice-response",
			Dimension:    "communication",
			Scores:       map[string]float64{"clarity": 4, "confidence": 3},
			Feedback:     "Clear delivery.",
		},
		{
			AssessmentID: "run-1",
			SceneID:      "email-followup",
			Kind:         "written-challenge",
			Dimension:    "professionalism",
			Scores:       map[string]float64{"tone": 5},
			Feedback:     "Professional tone throughout.",
		},
		{
			AssessmentID: "run-2",
			SceneID:      "voice-intro",
			Kind:         "voice-response",
			Dimension:    "communication",
			Scores:       map[string]float64{"clarity": 2},
			Feedback:     "Hard to follow.",
		},
	}
	for i, data := range results {
		if err := repo.AppendResult(ctx, data); err != nil {
			t.Fatalf("append result %d: %v", i, err)
		}
	}

	got, err := repo.ResultsForAssessment(ctx, "run-1")
	if err != nil {
		t.Fatalf("results for run-1: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results for run-1, got %d", len(got))
	}
	if got[0].SceneID != "voice-intro" || got[1].SceneID != "email-followup" {
		t.Errorf("results out of ledger order: %q, %q", got[0].SceneID, got[1].SceneID)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].Scores["clarity"] != 4 {
		t.Errorf("clarity = %v, want 4", got[0].Scores["clarity"])
	}
}

func TestResultLedgerRetryAppendsNewRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Same scene evaluated twice: both rows survive.
	for _, clarity := range []float64{2, 4} {
		err := repo.AppendResult(ctx, ResultEventData{
			AssessmentID: "run-1",
			SceneID:      "voice-intro",
			Kind:         "voice-response",
			Dimension:    "communication",
			Scores:       map[string]float64{"clarity": clarity},
			Feedback:     "f",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.ResultsForAssessment(ctx, "run-1")
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows after retry, got %d", len(got))
	}
	if got[1].Scores["clarity"] != 4 {
		t.Errorf("latest clarity = %v, want 4", got[1].Scores["clarity"])
	}
}

func TestAssessmentLifecycleEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssessment(ctx, AssessmentEventData{
		AssessmentID: "run-1",
		Action:       "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendAssessment(ctx, AssessmentEventData{
		AssessmentID:     "run-1",
		Action:           "end",
		ScenesCompleted:  11,
		ChallengesScored: 8,
		DurationSecs:     900,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	got, err := repo.Assessments(ctx)
	if err != nil {
		t.Fatalf("assessments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Action != "start" || got[1].Action != "end" {
		t.Errorf("actions = %q, %q", got[0].Action, got[1].Action)
	}
	if got[1].ChallengesScored != 8 {
		t.Errorf("challenges scored = %d, want 8", got[1].ChallengesScored)
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			Purpose:      "voice-eval",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	got, err := repo.LLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("llm requests: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", got[0].InputTokens)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:              1,
			Dimensions:           map[string]float64{"communication": 3.5},
			AssessmentsCompleted: 1,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Dimensions["communication"] != 3.5 {
		t.Errorf("communication = %v, want 3.5", snap.Data.Dimensions["communication"])
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
