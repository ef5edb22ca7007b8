package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/assessment"
	"github.com/trio-sh/academy-builder-sub001/internal/capture"
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
	"github.com/trio-sh/academy-builder-sub001/internal/profile"
	"github.com/trio-sh/academy-builder-sub001/internal/router"
	"github.com/trio-sh/academy-builder-sub001/internal/screen"
	"github.com/trio-sh/academy-builder-sub001/internal/screens/summary"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/components"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/layout"
)

// AssessmentScreen implements screen.Screen for the active run. It
// drives the scene controller, builds the per-kind input widget on
// every scene entry, and runs capture and evaluation asynchronously.
type AssessmentScreen struct {
	ctrl       *assessment.Controller
	provider   llm.Provider
	eventRepo  store.EventRepo
	snapRepo   store.SnapshotRepo
	recognizer capture.Recognizer
	narrator   *capture.Narrator

	// Widgets rebuilt on scene entry; only the one matching the scene
	// kind is live.
	editor  components.TextArea
	input   components.TextInput
	tasks   components.TaskList
	choice  components.MultiChoice
	answers []int

	recorder  *capture.Recorder
	recording bool
	micDenied bool

	remaining time.Duration
	errMsg    string
	ended     bool
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.ProgressProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen with injected dependencies.
func New(cat *catalog.Catalog, provider llm.Provider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, recognizer capture.Recognizer, narrator *capture.Narrator) *AssessmentScreen {
	return &AssessmentScreen{
		ctrl:       assessment.NewController(cat),
		provider:   provider,
		eventRepo:  eventRepo,
		snapRepo:   snapRepo,
		recognizer: recognizer,
		narrator:   narrator,
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	start := func() tea.Msg {
		_ = s.eventRepo.AppendAssessment(context.Background(), store.AssessmentEventData{
			AssessmentID: s.ctrl.AssessmentID,
			Action:       "start",
		})
		return nil
	}
	return tea.Batch(start, s.enterScene())
}

func (s *AssessmentScreen) Title() string {
	return s.ctrl.Scene().Title
}

func (s *AssessmentScreen) Progress() (int, int) {
	return s.ctrl.Index() + 1, s.ctrl.Len()
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 4)
	if s.ctrl.CanAdvance() && !s.ctrl.Terminal() {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Continue"})
	}
	if s.ctrl.Index() > 0 && !s.ctrl.Terminal() {
		hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Back"})
	}
	switch s.ctrl.Scene().Kind {
	case catalog.KindVoice:
		if !s.micDenied {
			if s.recording {
				hints = append(hints, layout.KeyHint{Key: "Space", Description: "Stop recording"})
			} else if s.ctrl.Session().Result == nil {
				hints = append(hints, layout.KeyHint{Key: "Space", Description: "Record"})
			}
		}
	case catalog.KindWritten:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
	case catalog.KindPriority:
		if !s.ctrl.Session().RankingSubmitted {
			hints = append(hints,
				layout.KeyHint{Key: "Shift+↑↓", Description: "Move task"},
				layout.KeyHint{Key: "Enter", Description: "Submit order"})
		}
	case catalog.KindListening:
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Play again"})
	case catalog.KindCompletion:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "See results"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case recordingStartedMsg:
		return s.handleRecordingStarted(msg)

	case recordingStoppedMsg:
		return s.handleRecordingStopped(msg)

	case evaluationDoneMsg:
		return s.handleEvaluationDone(msg)

	case assessmentEndMsg:
		return s.handleEnd()

	case components.MoveMsg:
		s.ctrl.MoveTask(msg.From, msg.To)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToWidget(msg)
}

// enterScene builds the widget for the current scene and schedules the
// visit's entry effects: one-shot narration and the countdown timer.
// It is also the exit hook for the previous visit: in-flight narration
// is cancelled and an active capture stream is shut down before its
// recorder is discarded.
func (s *AssessmentScreen) enterScene() tea.Cmd {
	s.narrator.Stop()
	if rec := s.recorder; rec != nil {
		_, _ = rec.Stop()
	}

	sess := s.ctrl.Session()
	scene := sess.Scene
	s.recording = false
	s.recorder = nil
	s.errMsg = ""

	var cmds []tea.Cmd

	switch scene.Kind {
	case catalog.KindWritten:
		p := scene.Written
		s.editor = components.NewTextArea("Type your response...", p.MinWords, p.MaxWords)
		cmds = append(cmds, s.editor.Init())
	case catalog.KindPriority:
		s.tasks = components.NewTaskList(scene.Priority.Tasks)
	case catalog.KindRolePlay:
		s.rebuildDialogueChoice()
	case catalog.KindBranching:
		s.rebuildBranchChoice()
	case catalog.KindListening:
		s.answers = nil
		s.rebuildListeningChoice()
		cmds = append(cmds, s.narrateCmd(scene.Listening.Script))
	case catalog.KindJudgment:
		opts := make([]string, 0, len(scene.Judgment.Options))
		for _, o := range scene.Judgment.Options {
			opts = append(opts, o.Label)
		}
		s.choice = components.NewMultiChoice(scene.Judgment.Situation, opts)
	case catalog.KindQuickfire:
		s.input = components.NewTextInput("Your first move...", 200)
		cmds = append(cmds, s.input.Init())
	}

	if scene.Narration != "" && !sess.NarrationPlayed {
		sess.NarrationPlayed = true
		cmds = append(cmds, s.narrateCmd(scene.Narration))
	}

	if scene.TimeLimit > 0 {
		s.remaining = scene.TimeLimit
		cmds = append(cmds, tickCmd(s.ctrl.Epoch()))
	} else {
		s.remaining = 0
	}

	if scene.Kind == catalog.KindCompletion && !s.ended {
		cmds = append(cmds, func() tea.Msg { return assessmentEndMsg{} })
	}

	return tea.Batch(cmds...)
}

func (s *AssessmentScreen) rebuildDialogueChoice() {
	p := s.ctrl.Scene().RolePlay
	turn := nextChoiceTurn(p, len(s.ctrl.Session().DialogueChoices))
	if turn == nil {
		return
	}
	opts := make([]string, 0, len(turn.Options))
	for _, o := range turn.Options {
		opts = append(opts, o.Label)
	}
	s.choice = components.NewMultiChoice("How do you respond?", opts)
}

func (s *AssessmentScreen) rebuildBranchChoice() {
	p := s.ctrl.Scene().Branching
	node := p.Node(s.ctrl.Session().BranchNode)
	if node == nil {
		return
	}
	opts := make([]string, 0, len(node.Choices))
	for _, c := range node.Choices {
		opts = append(opts, c.Label)
	}
	s.choice = components.NewMultiChoice(node.Situation, opts)
}

func (s *AssessmentScreen) rebuildListeningChoice() {
	p := s.ctrl.Scene().Listening
	if len(s.answers) >= len(p.Questions) {
		return
	}
	q := p.Questions[len(s.answers)]
	s.choice = components.NewMultiChoice(q.Text, q.Options)
}

// nextChoiceTurn returns the n-th role-play turn that carries options.
func nextChoiceTurn(p *catalog.RolePlayPayload, n int) *catalog.DialogueTurn {
	seen := 0
	for i := range p.Turns {
		if len(p.Turns[i].Options) == 0 {
			continue
		}
		if seen == n {
			return &p.Turns[i]
		}
		seen++
	}
	return nil
}

func (s *AssessmentScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.ctrl.Epoch() {
		return s, nil
	}
	scene := s.ctrl.Scene()
	if scene.TimeLimit == 0 {
		return s, nil
	}

	s.remaining = scene.TimeLimit - time.Since(s.ctrl.Session().EnteredAt)
	if s.remaining > 0 {
		return s, tickCmd(msg.Epoch)
	}

	s.remaining = 0
	return s.expireScene()
}

// expireScene handles a countdown running out. Expiry is not an error
// and submits nothing on the subject's behalf: the countdown simply
// stops and the scene stays interactive. An active recording is
// stopped so the capture stream does not run unbounded; its transcript
// is kept on screen but not evaluated.
func (s *AssessmentScreen) expireScene() (screen.Screen, tea.Cmd) {
	if s.ctrl.Scene().Kind == catalog.KindVoice && s.recording {
		rec := s.recorder
		s.recording = false
		s.recorder = nil
		return s, func() tea.Msg {
			text, err := rec.Stop()
			return recordingStoppedMsg{Transcript: text, Err: err, Expired: true}
		}
	}
	return s, nil
}

func (s *AssessmentScreen) handleRecordingStarted(msg recordingStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.recording = false
		s.recorder = nil
		s.micDenied = true
		s.input = components.NewTextInput("Type what you would say...", 500)
		return s, s.input.Init()
	}
	return s, nil
}

func (s *AssessmentScreen) handleRecordingStopped(msg recordingStoppedMsg) (screen.Screen, tea.Cmd) {
	s.recording = false
	s.recorder = nil

	// An empty transcript records nothing; the subject can try again.
	if msg.Transcript == "" {
		return s, nil
	}

	s.ctrl.SetTranscript(msg.Transcript)

	// A stop forced by countdown expiry keeps the transcript visible
	// but leaves submission in the subject's hands.
	if msg.Expired {
		return s, nil
	}

	scene := s.ctrl.Scene()
	visitID := s.ctrl.BeginEvaluation()
	transcript := msg.Transcript
	return s, func() tea.Msg {
		res := evaluate.Voice(context.Background(), s.provider, scene, transcript)
		return evaluationDoneMsg{VisitID: visitID, Result: res}
	}
}

func (s *AssessmentScreen) handleEvaluationDone(msg evaluationDoneMsg) (screen.Screen, tea.Cmd) {
	res, recorded := s.ctrl.ApplyEvaluation(msg.VisitID, msg.Result)
	if !recorded {
		return s, nil
	}
	return s, s.persistResult(res)
}

// persistResult appends a recorded result to the durable ledger.
func (s *AssessmentScreen) persistResult(res assessment.Result) tea.Cmd {
	data := res.EventData(s.ctrl.AssessmentID)
	return func() tea.Msg {
		err := s.eventRepo.AppendResult(context.Background(), data)
		return resultPersistedMsg{Err: err}
	}
}

// handleEnd closes out the run: the end event, the profile snapshot,
// and the summary screen.
func (s *AssessmentScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true
	s.narrator.Stop()

	ctx := context.Background()
	_ = s.eventRepo.AppendAssessment(ctx, store.AssessmentEventData{
		AssessmentID:     s.ctrl.AssessmentID,
		Action:           "end",
		ScenesCompleted:  s.ctrl.ScenesCompleted(),
		ChallengesScored: len(s.ctrl.Results()),
		DurationSecs:     int(s.ctrl.Elapsed().Seconds()),
	})

	prof := s.buildProfile(ctx)
	s.saveSnapshot(ctx, prof)

	results := s.ctrl.Results()
	elapsed := s.ctrl.Elapsed()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(prof, results, elapsed),
		}
	}
}

// buildProfile aggregates the durable ledger for this run, falling back
// to the in-memory results if the read fails.
func (s *AssessmentScreen) buildProfile(ctx context.Context) profile.Profile {
	records, err := s.eventRepo.ResultsForAssessment(ctx, s.ctrl.AssessmentID)
	if err == nil && len(records) > 0 {
		return profile.Compute(profile.FromRecords(records))
	}

	evidence := make([]profile.Evidence, 0, len(s.ctrl.Results()))
	for _, r := range s.ctrl.Results() {
		evidence = append(evidence, profile.Evidence{Dimension: r.Dimension, Scores: r.Scores})
	}
	return profile.Compute(evidence)
}

func (s *AssessmentScreen) saveSnapshot(ctx context.Context, prof profile.Profile) {
	completed := 1
	if prev, err := s.snapRepo.Latest(ctx); err == nil && prev != nil {
		completed = prev.Data.AssessmentsCompleted + 1
	}
	_ = s.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:              1,
			Dimensions:           prof.Snapshot(),
			AssessmentsCompleted: completed,
		},
	})
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "tab":
		return s.advance()
	case "shift+tab":
		if !s.ctrl.Terminal() && s.ctrl.Retreat() {
			return s, s.enterScene()
		}
		return s, nil
	}

	switch s.ctrl.Scene().Kind {
	case catalog.KindNarrative, catalog.KindReview:
		if key == "enter" {
			return s.advance()
		}

	case catalog.KindVoice:
		return s.handleVoiceKey(msg)

	case catalog.KindWritten:
		if key == "ctrl+s" {
			sess := s.ctrl.Session()
			if sess.Result == nil && !sess.Evaluating && s.ctrl.CanSubmitWritten() {
				return s.submitWritten()
			}
			return s, nil
		}
		s.ctrl.SetDraft(s.editor.Value())
		return s.forwardToWidget(msg)

	case catalog.KindPriority:
		return s.handlePriorityKey(msg)

	case catalog.KindRolePlay:
		return s.handleChoiceKey(msg, s.chooseDialogue)

	case catalog.KindBranching:
		return s.handleChoiceKey(msg, s.chooseBranch)

	case catalog.KindListening:
		if key == "p" {
			return s, s.narrateCmd(s.ctrl.Scene().Listening.Script)
		}
		return s.handleChoiceKey(msg, s.chooseListening)

	case catalog.KindJudgment:
		return s.handleChoiceKey(msg, s.chooseJudgment)

	case catalog.KindQuickfire:
		if key == "enter" {
			if !s.ctrl.Session().QuickfireSubmitted {
				return s.submitQuickfire()
			}
			return s, nil
		}
		return s.forwardToWidget(msg)

	case catalog.KindCompletion:
		if key == "enter" {
			return s.handleEnd()
		}
	}

	return s, nil
}

func (s *AssessmentScreen) advance() (screen.Screen, tea.Cmd) {
	if s.recording {
		return s, nil
	}
	res, has, moved := s.ctrl.Advance()
	if !moved {
		return s, nil
	}
	cmds := []tea.Cmd{s.enterScene()}
	if has {
		cmds = append(cmds, s.persistResult(res))
	}
	return s, tea.Batch(cmds...)
}

func (s *AssessmentScreen) handleVoiceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()

	if s.micDenied {
		// Typed fallback when no speech backend is available.
		if msg.String() == "enter" {
			text := s.input.Value()
			if text == "" || sess.Result != nil || sess.Evaluating {
				return s, nil
			}
			s.ctrl.SetTranscript(text)
			scene := s.ctrl.Scene()
			visitID := s.ctrl.BeginEvaluation()
			return s, func() tea.Msg {
				res := evaluate.Voice(context.Background(), s.provider, scene, text)
				return evaluationDoneMsg{VisitID: visitID, Result: res}
			}
		}
		return s.forwardToWidget(msg)
	}

	if msg.String() == "space" {
		if s.recording {
			return s, s.stopRecordingCmd()
		}
		if sess.Result == nil && !sess.Evaluating {
			return s, s.startRecordingCmd()
		}
	}
	return s, nil
}

func (s *AssessmentScreen) startRecordingCmd() tea.Cmd {
	rec := capture.NewRecorder(s.recognizer)
	s.recorder = rec
	s.recording = true
	return func() tea.Msg {
		return recordingStartedMsg{Err: rec.Start(context.Background())}
	}
}

func (s *AssessmentScreen) stopRecordingCmd() tea.Cmd {
	rec := s.recorder
	return func() tea.Msg {
		if rec == nil {
			return recordingStoppedMsg{}
		}
		text, err := rec.Stop()
		return recordingStoppedMsg{Transcript: text, Err: err}
	}
}

func (s *AssessmentScreen) submitWritten() (screen.Screen, tea.Cmd) {
	s.ctrl.SetDraft(s.editor.Value())
	scene := s.ctrl.Scene()
	text := s.ctrl.Session().Draft
	visitID := s.ctrl.BeginEvaluation()
	return s, func() tea.Msg {
		res := evaluate.Written(context.Background(), s.provider, scene, text)
		return evaluationDoneMsg{VisitID: visitID, Result: res}
	}
}

func (s *AssessmentScreen) handlePriorityKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	if msg.String() == "enter" && !sess.RankingSubmitted {
		s.ctrl.SubmitRanking()
		s.tasks.Locked = true

		scene := s.ctrl.Scene()
		submitted := append([]string(nil), sess.Ranking...)
		visitID := s.ctrl.BeginEvaluation()
		return s, func() tea.Msg {
			res := evaluate.Priority(context.Background(), s.provider, scene, submitted)
			return evaluationDoneMsg{VisitID: visitID, Result: res}
		}
	}

	var cmd tea.Cmd
	s.tasks, cmd = s.tasks.Update(msg)
	return s, cmd
}

// handleChoiceKey runs the shared multi-choice widget and dispatches
// the submitted index to a per-kind handler.
func (s *AssessmentScreen) handleChoiceKey(msg tea.KeyMsg, commit func(int) tea.Cmd) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		return s, tea.Batch(cmd, commit(s.choice.ChosenIndex))
	}
	return s, cmd
}

func (s *AssessmentScreen) chooseDialogue(idx int) tea.Cmd {
	s.ctrl.ChooseDialogue(idx)
	s.rebuildDialogueChoice()
	return nil
}

func (s *AssessmentScreen) chooseBranch(idx int) tea.Cmd {
	s.ctrl.ChooseBranch(idx)
	if !s.ctrl.BranchEnded() {
		s.rebuildBranchChoice()
	}
	return nil
}

func (s *AssessmentScreen) chooseListening(idx int) tea.Cmd {
	s.answers = append(s.answers, idx)
	p := s.ctrl.Scene().Listening
	if len(s.answers) < len(p.Questions) {
		s.rebuildListeningChoice()
		return nil
	}
	res, recorded := s.ctrl.SubmitListening(s.answers)
	if !recorded {
		return nil
	}
	return s.persistResult(res)
}

func (s *AssessmentScreen) chooseJudgment(idx int) tea.Cmd {
	res, recorded := s.ctrl.ChooseJudgment(idx)
	if !recorded {
		return nil
	}
	return s.persistResult(res)
}

func (s *AssessmentScreen) submitQuickfire() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	s.ctrl.SubmitQuickfire(text)

	scene := s.ctrl.Scene()
	visitID := s.ctrl.BeginEvaluation()
	return s, func() tea.Msg {
		res := evaluate.Quickfire(context.Background(), s.provider, scene, text)
		return evaluationDoneMsg{VisitID: visitID, Result: res}
	}
}

// narrateCmd speaks text through the narrator, superseding any active
// utterance. Narration failure is not an error the subject can act on.
func (s *AssessmentScreen) narrateCmd(text string) tea.Cmd {
	return func() tea.Msg {
		_ = s.narrator.Speak(context.Background(), text)
		return nil
	}
}

// forwardToWidget routes messages to whichever input widget is live.
func (s *AssessmentScreen) forwardToWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.ctrl.Scene().Kind {
	case catalog.KindWritten:
		s.editor, cmd = s.editor.Update(msg)
	case catalog.KindQuickfire:
		s.input, cmd = s.input.Update(msg)
	case catalog.KindVoice:
		if s.micDenied {
			s.input, cmd = s.input.Update(msg)
		}
	}
	return s, cmd
}

// tickCmd returns a 1-second tick stamped with the visit epoch.
func tickCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{At: t, Epoch: epoch}
	})
}
