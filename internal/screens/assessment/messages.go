package assessment

import (
	"time"

	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
)

// timerTickMsg is sent every second while a timed scene counts down.
// The epoch stamps which scene visit the tick belongs to; ticks from an
// ended visit are ignored.
type timerTickMsg struct {
	At    time.Time
	Epoch int
}

// recordingStartedMsg reports the outcome of starting speech capture.
type recordingStartedMsg struct {
	Err error
}

// recordingStoppedMsg carries the final transcript after capture ends.
// Expired marks a stop forced by countdown expiry, which keeps the
// transcript without evaluating it.
type recordingStoppedMsg struct {
	Transcript string
	Err        error
	Expired    bool
}

// evaluationDoneMsg carries a finished evaluation, keyed by the visit
// that started it.
type evaluationDoneMsg struct {
	VisitID string
	Result  evaluate.Result
}

// resultPersistedMsg confirms a result ledger append completed.
type resultPersistedMsg struct {
	Err error
}

// assessmentEndMsg triggers the completion flow.
type assessmentEndMsg struct{}
