package player

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lecto/internal/answers"
	"github.com/abhisek/lecto/internal/bus"
	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/lecture"
	"github.com/abhisek/lecto/internal/llm"
	"github.com/abhisek/lecto/internal/playback"
	"github.com/abhisek/lecto/internal/responses"
	"github.com/abhisek/lecto/internal/router"
	"github.com/abhisek/lecto/internal/scheduler"
	"github.com/abhisek/lecto/internal/screen"
	"github.com/abhisek/lecto/internal/screens/review"
	"github.com/abhisek/lecto/internal/screens/summary"
	"github.com/abhisek/lecto/internal/store"
	"github.com/abhisek/lecto/internal/struggle"
	"github.com/abhisek/lecto/internal/telemetry"
	"github.com/abhisek/lecto/internal/tutor"
	"github.com/abhisek/lecto/internal/ui/components"
	"github.com/abhisek/lecto/internal/ui/layout"
)

const tickInterval = 250 * time.Millisecond

// skipStep is the relative seek distance for arrow keys.
const skipStep = 10.0

var speedSteps = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}

// tabID identifies the side panel tabs.
type tabID int

const (
	tabTranscript tabID = iota
	tabCheckpoints
	tabNotes
)

func tabByName(name string) (tabID, bool) {
	switch name {
	case "transcript":
		return tabTranscript, true
	case "checkpoints":
		return tabCheckpoints, true
	case "notes":
		return tabNotes, true
	}
	return 0, false
}

// Deps are the injected collaborators for a viewing session. EventRepo,
// SnapRepo, and Provider may each be nil; the player degrades to in-memory
// operation without them.
type Deps struct {
	Lecture   *lecture.Lecture
	UserID    string
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Provider  llm.Provider
	StartAt   float64
}

// PlayerScreen is the viewing session: simulated playback, checkpoint
// orchestration, telemetry, struggle detection, and the tutor panel, all
// driven by a single coarse tick.
type PlayerScreen struct {
	deps Deps
	lec  *lecture.Lecture
	cps  []checkpoint.Checkpoint

	clock     *playback.Clock
	bus       *bus.Bus
	log       *telemetry.Log
	respStore *responses.Store
	sched     *scheduler.Scheduler
	detector  *struggle.Detector

	watchID string
	started time.Time

	ctrl        *controls
	session     *tutor.Session
	syncer      *tutor.Synchronizer
	tutorEvents chan tutor.Event
	hydrated    chan []checkpoint.Key

	// panel state
	tab       tabID
	announce  string
	strug     *struggle.Result
	panelOpen bool
	chat      []tutor.Message
	chatInput components.TextInput
	tutorBusy bool
	tutorNote string

	// engagement overlay state
	opts       components.OptionList
	textIn     components.TextInput
	useText    bool
	feedback   *answers.Outcome
	feedbackCP checkpoint.Checkpoint
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New builds a viewing session for the lecture.
func New(deps Deps) *PlayerScreen {
	lec := deps.Lecture
	cps := checkpoint.Normalize(lec.Checkpoints)

	p := &PlayerScreen{
		deps:     deps,
		lec:      lec,
		cps:      cps,
		clock:    playback.NewClock(lec.DurationSeconds),
		bus:      bus.New(),
		log:      telemetry.NewLog(),
		detector: struggle.New(struggle.DefaultConfig()),
		watchID:  uuid.New().String(),
		started:  time.Now(),
		hydrated: make(chan []checkpoint.Key, 1),
	}

	if deps.StartAt > 0 {
		p.clock.Seek(deps.StartAt)
	}

	var persistence responses.Persistence = noopPersistence{}
	if deps.EventRepo != nil {
		persistence = deps.EventRepo
		p.log.AddSink(store.InteractionSink(deps.EventRepo, p.watchID, lec.ID))
	}
	p.respStore = responses.NewStore(persistence, deps.UserID, lec.ID)

	cfg := scheduler.DefaultConfig()
	p.sched = scheduler.New(cfg, p.clock, cps, p.bus, p.log, p.respStore)

	// Overlay and banner state keys off the scheduler's signals.
	p.bus.Subscribe(bus.SignalCheckpointEngaged, func(bus.Event) { p.openCheckpointOverlay() })
	p.bus.Subscribe(bus.SignalCheckpointReengaged, func(bus.Event) { p.openCheckpointOverlay() })
	p.bus.Subscribe(bus.SignalAnnounceUpcoming, func(ev bus.Event) {
		if ts, ok := ev.Payload["timestamp"].(float64); ok {
			p.announce = fmt.Sprintf("Checkpoint coming up at %s", formatTime(ts))
		}
	})
	p.bus.Subscribe(bus.SignalNudgeShown, func(bus.Event) { p.announce = "" })

	if deps.Provider != nil {
		p.ctrl = newControls(cps, cfg.ReopenTolerance)
		registry := tutor.NewRegistry()
		tutor.RegisterPlayerTools(registry, p.ctrl)
		p.tutorEvents = make(chan tutor.Event, 32)
		p.session = tutor.NewSession(deps.Provider, registry, func(ev tutor.Event) {
			p.tutorEvents <- ev
		})
		p.syncer = tutor.NewSynchronizer()
	}

	p.chatInput = components.NewTextInput("Ask the tutor...", false, 0)
	return p
}

func (p *PlayerScreen) Init() tea.Cmd {
	p.respStore.Hydrate(context.Background(), func(keys []checkpoint.Key) {
		p.hydrated <- keys
	})

	if p.deps.EventRepo != nil {
		go func() {
			_ = p.deps.EventRepo.AppendViewing(context.Background(), store.ViewingEventData{
				WatchID:   p.watchID,
				LectureID: p.lec.ID,
				Action:    "start",
			})
		}()
	}

	p.clock.Play()

	cmds := []tea.Cmd{
		tickCmd(),
		func() tea.Msg { return hydratedMsg{Keys: <-p.hydrated} },
	}
	if p.session != nil {
		cmds = append(cmds, p.waitTutorEvent())
	}
	return tea.Batch(cmds...)
}

func (p *PlayerScreen) Title() string {
	return p.lec.Title
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playTickMsg:
		return p.handleTick(time.Time(msg))
	case hydratedMsg:
		p.sched.MarkCompleted(msg.Keys)
		return p, nil
	case tutorEventMsg:
		return p.handleTutorEvent(tutor.Event(msg))
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.panelOpen {
		var cmd tea.Cmd
		p.chatInput, cmd = p.chatInput.Update(msg)
		return p, cmd
	}
	return p, nil
}

// handleTick is the session heartbeat: queued tutor tool actions drain
// first so the scheduler pass sees their effect, then the scheduler runs,
// then the derived state (struggle, context sync) refreshes.
func (p *PlayerScreen) handleTick(now time.Time) (screen.Screen, tea.Cmd) {
	if p.ctrl != nil {
		for _, fn := range p.ctrl.drain() {
			fn(p)
		}
	}

	p.sched.Tick(now)

	// Natural end of the lecture: the clock clamps at the duration and
	// stops. Let an engaged checkpoint finish first.
	if p.sched.Active() == nil && p.feedback == nil &&
		p.lec.DurationSeconds > 0 && p.clock.CurrentTime() >= p.lec.DurationSeconds {
		return p.finish()
	}

	if p.sched.Active() == nil {
		res := p.detector.Evaluate(p.log, p.clock.CurrentTime(), now)
		if res.Struggling && p.strug == nil {
			p.strug = &res
		}
	}

	p.syncTutorContext(now)
	return p, tickCmd()
}

// syncTutorContext refreshes the tool-served context and pushes a snapshot
// to the live session when the synchronizer allows it.
func (p *PlayerScreen) syncTutorContext(now time.Time) {
	if p.session == nil {
		return
	}

	snap := tutor.BuildSnapshot(tutor.SnapshotInput{
		Lecture:     p.lec,
		Checkpoints: p.cps,
		Telemetry:   p.log,
		Responses:   p.respStore,
		Messages:    p.chat,
		CurrentTime: p.clock.CurrentTime(),
		Now:         now,
	})
	full := snap.Render()
	brief := fmt.Sprintf("%s at %s, %d answered",
		p.lec.Title, formatTime(p.clock.CurrentTime()), p.respStore.Len())
	p.ctrl.setState(full, brief, p.sched.Active() != nil)

	connected := p.session.State() == tutor.StateConnected
	textMode := p.session.Mode() == tutor.ModeText
	if p.syncer.ShouldPush(snap, p.panelOpen, connected, textMode) {
		p.session.PushContext(full)
	}
}

func (p *PlayerScreen) handleTutorEvent(ev tutor.Event) (screen.Screen, tea.Cmd) {
	switch ev.Kind {
	case tutor.EventConnected:
		p.tutorNote = ""
		p.syncer.Reset()
	case tutor.EventDisconnected:
		p.tutorBusy = false
		p.tutorNote = "tutor disconnected"
	case tutor.EventReply:
		p.tutorBusy = false
		p.chat = append(p.chat, tutor.Message{Role: "tutor", Content: ev.Reply})
	case tutor.EventError:
		p.tutorBusy = false
		if ev.Err != nil {
			p.tutorNote = ev.Err.Error()
		}
	case tutor.EventModeFallback:
		p.tutorNote = "voice unstable, switched to text"
	}
	return p, p.waitTutorEvent()
}

func (p *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Feedback overlay: w rewatches, anything else resumes.
	if p.feedback != nil {
		if key == "w" && p.feedback.SelectedIndex >= 0 && !p.feedback.IsCorrect {
			p.feedback = nil
			p.sched.RewatchResolved(p.feedbackCP.Key)
			return p, nil
		}
		p.feedback = nil
		return p, nil
	}

	// Engaged checkpoint overlay.
	if p.sched.Active() != nil {
		return p.handleCheckpointKey(msg)
	}

	// Tutor panel captures typing.
	if p.panelOpen {
		switch key {
		case "tab", "esc":
			p.panelOpen = false
			return p, nil
		case "enter":
			return p.sendChat()
		}
		var cmd tea.Cmd
		p.chatInput, cmd = p.chatInput.Update(msg)
		return p, cmd
	}

	// Struggle banner.
	if p.strug != nil {
		switch key {
		case "y":
			section := p.strug.Section
			p.strug = nil
			p.detector.Dismiss(time.Now())
			p.sched.UserSeek(section)
			return p, nil
		case "n":
			p.strug = nil
			p.detector.Dismiss(time.Now())
			return p, nil
		}
	}

	// Nudge banner.
	if p.sched.Nudged() != nil {
		switch key {
		case "enter", "e":
			p.sched.EngageNudge()
			return p, nil
		case "d":
			p.sched.DismissNudge()
			return p, nil
		}
	}

	switch key {
	case " ", "space":
		if p.clock.Playing() {
			p.sched.UserPause()
		} else {
			p.sched.UserPlay()
		}
	case "left":
		p.sched.UserSkipBack(skipStep)
	case "right":
		p.sched.UserSkipForward(skipStep)
	case "[":
		p.sched.UserSetRate(prevSpeed(p.clock.Rate()))
	case "]":
		p.sched.UserSetRate(nextSpeed(p.clock.Rate()))
	case "1":
		p.tab = tabTranscript
	case "2":
		p.tab = tabCheckpoints
	case "3":
		p.tab = tabNotes
	case "tab":
		return p.toggleTutorPanel()
	case "r":
		return p.openReview()
	case "q", "esc":
		p.endSession()
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return p, nil
}

func (p *PlayerScreen) handleCheckpointKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "s" && !p.useText {
		p.sched.SkipActive()
		return p, nil
	}

	if p.useText {
		switch key {
		case "enter":
			text := p.textIn.Value()
			if text == "" {
				return p, nil
			}
			return p.resolve(answers.Input{Text: text})
		case "esc":
			p.sched.SkipActive()
			return p, nil
		}
		var cmd tea.Cmd
		p.textIn, cmd = p.textIn.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.opts, cmd = p.opts.Update(msg)
	if p.opts.Submitted && p.opts.ChosenIndex >= 0 && p.feedback == nil {
		idx := p.opts.ChosenIndex
		return p.resolve(answers.Input{SelectedIndex: &idx})
	}
	return p, cmd
}

// resolve submits the answer for the engaged checkpoint and raises the
// feedback overlay.
func (p *PlayerScreen) resolve(in answers.Input) (screen.Screen, tea.Cmd) {
	active := p.sched.Active()
	if active == nil {
		return p, nil
	}
	cp := active.Checkpoint

	out, ok := p.sched.ResolveAnswer(context.Background(), in)
	if !ok {
		return p, nil
	}

	if len(cp.Options) > 0 {
		p.opts.SetOutcome(out.SelectedIndex, answers.CorrectIndex(cp))
	}
	p.feedback = &out
	p.feedbackCP = cp
	return p, nil
}

// answerFromTutor applies an answerCheckpoint tool call.
func (p *PlayerScreen) answerFromTutor(selection string) {
	active := p.sched.Active()
	if active == nil {
		return
	}
	cp := active.Checkpoint
	out, ok := p.sched.ResolveAnswer(context.Background(), answers.Input{Text: selection})
	if ok {
		if len(cp.Options) > 0 {
			p.opts.SetOutcome(out.SelectedIndex, answers.CorrectIndex(cp))
		}
		p.feedback = &out
		p.feedbackCP = cp
	}
}

// openCheckpointOverlay prepares the input widget for the engaged
// checkpoint.
func (p *PlayerScreen) openCheckpointOverlay() {
	active := p.sched.Active()
	if active == nil {
		return
	}
	cp := active.Checkpoint
	p.feedback = nil
	if len(cp.Options) > 0 {
		p.useText = false
		p.opts = components.NewOptionList(cp.Prompt(), cp.Options)
	} else {
		p.useText = true
		p.textIn = components.NewTextInput("Your thoughts...", false, 0)
	}
}

func (p *PlayerScreen) toggleTutorPanel() (screen.Screen, tea.Cmd) {
	if p.session == nil {
		p.tutorNote = "tutor unavailable: no provider configured"
		return p, nil
	}
	p.panelOpen = !p.panelOpen
	if p.panelOpen && p.session.State() == tutor.StateDisconnected {
		if err := p.session.Connect(tutor.ModeText); err != nil {
			p.tutorNote = err.Error()
		}
	}
	if p.panelOpen {
		return p, p.chatInput.Init()
	}
	return p, nil
}

func (p *PlayerScreen) sendChat() (screen.Screen, tea.Cmd) {
	text := p.chatInput.Value()
	if text == "" || p.session == nil {
		return p, nil
	}
	p.chat = append(p.chat, tutor.Message{Role: "student", Content: text})
	p.chatInput = components.NewTextInput("Ask the tutor...", false, 0)
	p.tutorBusy = true
	if err := p.session.Send(context.Background(), text); err != nil {
		p.tutorBusy = false
		p.tutorNote = err.Error()
	}
	return p, p.chatInput.Init()
}

func (p *PlayerScreen) openReview() (screen.Screen, tea.Cmd) {
	dismissed, completed := p.sched.Sets()
	items := responses.ReviewList(p.cps, dismissed, completed, p.respStore)
	rs := review.New(items, func(cp checkpoint.Checkpoint) tea.Cmd {
		// Reopen runs after the review screen pops back to the player.
		return func() tea.Msg {
			p.sched.Reopen(cp.Timestamp(), cp.Type(), cp.Prompt())
			return router.PopScreenMsg{}
		}
	})
	return p, func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
}

// finish flushes the session and swaps the player for the end-of-lecture
// summary.
func (p *PlayerScreen) finish() (screen.Screen, tea.Cmd) {
	answered, correct := 0, 0
	for _, rec := range p.respStore.Snapshot() {
		answered++
		if rec.IsCorrect {
			correct++
		}
	}
	dismissed, _ := p.sched.Sets()

	sum := &summary.Summary{
		LectureTitle: p.lec.Title,
		Duration:     time.Since(p.started),
		WatchedSecs:  p.clock.CurrentTime(),
		Answered:     answered,
		Correct:      correct,
		Skipped:      len(dismissed),
	}

	p.endSession()
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// endSession flushes session-end persistence. Failures are dropped;
// quitting must never block on the network.
func (p *PlayerScreen) endSession() {
	if p.session != nil {
		p.session.Disconnect()
	}

	current := p.clock.CurrentTime()
	_, completed := p.sched.Sets()
	elapsed := int(time.Since(p.started).Seconds())

	if p.deps.EventRepo != nil {
		repo := p.deps.EventRepo
		watchID, lectureID := p.watchID, p.lec.ID
		n := len(completed)
		go func() {
			_ = repo.AppendViewing(context.Background(), store.ViewingEventData{
				WatchID:              watchID,
				LectureID:            lectureID,
				Action:               "end",
				WatchedSecs:          current,
				CompletedCheckpoints: n,
				DurationSecs:         elapsed,
			})
		}()
	}

	if p.deps.SnapRepo != nil {
		repo := p.deps.SnapRepo
		lectureID := p.lec.ID
		go func() {
			ctx := context.Background()
			data := store.SnapshotData{Version: 1}
			if prev, err := repo.Latest(ctx); err == nil && prev != nil {
				data = prev.Data
			}
			if data.Positions == nil {
				data.Positions = make(map[string]store.ResumePosition)
			}
			data.Positions[lectureID] = store.ResumePosition{
				VideoTime: current,
				UpdatedAt: time.Now(),
			}
			_ = repo.Save(ctx, &store.Snapshot{Timestamp: time.Now(), Data: data})
		}()
	}
}

func (p *PlayerScreen) waitTutorEvent() tea.Cmd {
	return func() tea.Msg { return tutorEventMsg(<-p.tutorEvents) }
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	if p.feedback != nil {
		return []layout.KeyHint{
			{Key: "W", Description: "Rewatch section"},
			{Key: "any key", Description: "Continue"},
		}
	}
	if p.sched.Active() != nil {
		if p.useText {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Skip"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "S", Description: "Skip"},
		}
	}
	if p.sched.Nudged() != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open checkpoint"},
			{Key: "D", Description: "Dismiss"},
		}
	}
	if p.panelOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Tab", Description: "Close tutor"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "←→", Description: "Skip 10s"},
		{Key: "[ ]", Description: "Speed"},
		{Key: "Tab", Description: "Tutor"},
		{Key: "R", Description: "Review"},
		{Key: "Q", Description: "Quit"},
	}
}

func nextSpeed(rate float64) float64 {
	for _, s := range speedSteps {
		if s > rate+1e-9 {
			return s
		}
	}
	return speedSteps[len(speedSteps)-1]
}

func prevSpeed(rate float64) float64 {
	for i := len(speedSteps) - 1; i >= 0; i-- {
		if speedSteps[i] < rate-1e-9 {
			return speedSteps[i]
		}
	}
	return speedSteps[0]
}

func formatTime(seconds float64) string {
	s := int(seconds)
	if s < 0 {
		s = 0
	}
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// noopPersistence backs sessions that run without a database.
type noopPersistence struct{}

func (noopPersistence) SaveResponse(context.Context, string, string, responses.Record) error {
	return nil
}

func (noopPersistence) ResponsesForLecture(context.Context, string, string) ([]responses.Record, error) {
	return nil, nil
}

// tickCmd returns the next heartbeat.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}
