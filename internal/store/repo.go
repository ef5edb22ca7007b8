package store

import (
	"context"
	"time"
)

// SnapshotData captures the aggregated skill profile at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	// Dimensions maps dimension ID to the aggregated 1-5 score.
	Dimensions map[string]float64 `json:"dimensions,omitempty"`

	// AssessmentsCompleted counts finished assessment runs.
	AssessmentsCompleted int `json:"assessments_completed,omitempty"`
}

// Snapshot represents a point-in-time capture of profile state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages profile state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AssessmentEventData captures a lifecycle event for an assessment run.
type AssessmentEventData struct {
	AssessmentID     string
	Action           string // "start" or "end"
	ScenesCompleted  int
	ChallengesScored int
	DurationSecs     int
}

// ResultEventData captures one completed challenge evaluation.
type ResultEventData struct {
	AssessmentID string
	SceneID      string
	Kind         string
	Dimension    string
	Scores       map[string]float64
	Feedback     string
	RawResponse  string
}

// ResultRecord is a persisted result row with its ledger position.
type ResultRecord struct {
	Sequence  int64
	Timestamp time.Time
	ResultEventData
}

// AssessmentRecord is a persisted assessment lifecycle row.
type AssessmentRecord struct {
	Sequence         int64
	Timestamp        time.Time
	AssessmentID     string
	Action           string
	ScenesCompleted  int
	ChallengesScored int
	DurationSecs     int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a persisted LLM request row.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAssessment records an assessment lifecycle event.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendResult records a completed challenge evaluation.
	AppendResult(ctx context.Context, data ResultEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ResultsForAssessment returns all results for a run in ledger order.
	ResultsForAssessment(ctx context.Context, assessmentID string) ([]ResultRecord, error)

	// Assessments returns lifecycle rows for all runs in ledger order.
	Assessments(ctx context.Context) ([]AssessmentRecord, error)

	// LLMRequests returns the most recent LLM request rows, newest first.
	// limit <= 0 returns all.
	LLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}
