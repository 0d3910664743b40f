// Package play drives an active practice session: it serves note prompts,
// collects valve-combination answers, and hands the finished session to the
// summary screen.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valvo/internal/coach"
	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	"github.com/abhisek/valvo/internal/screens/summary"
	"github.com/abhisek/valvo/internal/scoring"
	sess "github.com/abhisek/valvo/internal/session"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
	"github.com/abhisek/valvo/internal/ui/components"
	"github.com/abhisek/valvo/internal/ui/layout"
)

const (
	// speedTickInterval is how often the per-note countdown redraws.
	speedTickInterval = 100 * time.Millisecond
	// speedFeedbackDelay is how long the verdict stays up in speed mode
	// before the next prompt is served automatically.
	speedFeedbackDelay = 900 * time.Millisecond
	// hardestNotesLimit caps how many trouble notes seed the prompt picker.
	hardestNotesLimit = 5
)

// Options selects what this session practices.
type Options struct {
	Instrument fingering.Instrument
	Written    fingering.Pitch
	Mode       scoring.Mode
	Tier       proficiency.PlayerTier
	Scoring    scoring.Config
}

// Screen implements screen.Screen for an active practice session.
type Screen struct {
	opts     Options
	chart    *fingering.Chart
	registry *transposition.Registry
	tracks   proficiency.Repo
	events   store.EventRepo
	coach    *coach.Service

	sess        *sess.Session
	valves      components.ValveInput
	lastNote    string
	remainingMs int
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a practice screen. The session gets its own tracker wired
// for the selected tier and mode; the shared read-side registry keeps the
// configured defaults. events and coachSvc may be nil.
func New(opts Options, chart *fingering.Chart, playerID string, tracks proficiency.Repo, events store.EventRepo, coachSvc *coach.Service) *Screen {
	tracker := proficiency.NewTracker(tracks, proficiency.ConfigForTier(
		opts.Tier, opts.Mode == scoring.ModeLearning, chart.VocabularySize()))
	return &Screen{
		opts:     opts,
		chart:    chart,
		registry: transposition.NewRegistry(tracker, playerID),
		tracks:   tracks,
		events:   events,
		coach:    coachSvc,
		valves:   components.NewValveInput(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.initSession()
}

func (s *Screen) Title() string {
	return "Practice"
}

// ClaimsEsc keeps the root model from popping the screen: esc opens the
// quit confirmation instead.
func (s *Screen) ClaimsEsc() bool {
	return s.sess != nil && s.errMsg == ""
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.sess == nil {
		return nil
	}
	switch s.sess.Phase {
	case sess.PhaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case sess.PhaseFeedback:
		if s.opts.Mode == scoring.ModeSpeed {
			return nil
		}
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1 2 3", Description: "Valves"},
			{Key: "Enter", Description: "Play"},
			{Key: "Backspace", Description: "Release"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// initSession loads the track's coverage and trouble notes, then builds the
// session.
func (s *Screen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		instrPitch := s.opts.Instrument.NativePitch()
		trackKey := s.registry.TrackKey(instrPitch, s.opts.Written)

		covered := make(map[string]bool)
		if s.tracks != nil {
			if rec, err := s.tracks.LoadTrack(ctx, trackKey); err == nil && rec != nil {
				for n := range rec.NotesCovered {
					covered[n] = true
				}
			}
		}

		var hardest []string
		if s.events != nil {
			hardest, _ = s.events.HardestNotes(ctx, trackKey, hardestNotesLimit)
		}

		game, err := sess.New(ctx, sess.StartConfig{
			Instrument: instrPitch,
			Written:    s.opts.Written,
			Mode:       s.opts.Mode,
			Tier:       s.opts.Tier,
			Scoring:    s.opts.Scoring,
			Chart:      s.chart,
			Registry:   s.registry,
			Events:     s.events,
			Covered:    covered,
			Hardest:    hardest,
		})
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{Session: game}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case speedTickMsg:
		return s.handleSpeedTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s, s.finishSession()

	case finishedMsg:
		return s.handleFinished(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sess = msg.Session
	return s, s.serveNext()
}

// serveNext advances to the next prompt and re-arms the countdown in speed
// mode.
func (s *Screen) serveNext() tea.Cmd {
	s.valves.Reset()
	s.sess.ServeNext()
	if s.opts.Mode == scoring.ModeSpeed {
		s.remainingMs = s.sess.Config.IntervalMs
		return speedTickCmd()
	}
	return nil
}

func (s *Screen) handleSpeedTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Phase != sess.PhaseActive || s.sess.CurrentNote == "" {
		return s, nil
	}

	elapsed := int(time.Since(s.sess.PromptStartTime).Milliseconds())
	s.remainingMs = s.sess.Config.IntervalMs - elapsed
	if s.remainingMs > 0 {
		return s, speedTickCmd()
	}

	// Deadline missed: scored as an incorrect answer.
	s.remainingMs = 0
	s.lastNote = s.sess.CurrentNote
	_ = s.sess.Timeout(context.Background())
	s.valves.ShowVerdict(false, s.primaryExpected())
	return s, feedbackDelayCmd()
}

func (s *Screen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, nil
	}
	if s.sess.Done() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, s.serveNext()
}

func (s *Screen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Summary == nil {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(msg.Summary, s.coach)}
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.sess == nil {
		return s, nil
	}

	switch s.sess.Phase {
	case sess.PhaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.sess.Phase = sess.PhaseActive
		}
		return s, nil

	case sess.PhaseFeedback:
		// Speed mode dismisses its own feedback on a timer.
		if s.opts.Mode != scoring.ModeSpeed {
			return s, func() tea.Msg { return feedbackDoneMsg{} }
		}
		return s, nil

	case sess.PhaseActive:
		switch key {
		case "esc":
			s.sess.Phase = sess.PhaseQuitConfirm
			return s, nil
		case "1":
			s.valves.Toggle(1)
		case "2":
			s.valves.Toggle(2)
		case "3":
			s.valves.Toggle(3)
		case "0", "backspace":
			s.valves.Clear()
		case "enter":
			return s.submitAnswer()
		}
	}
	return s, nil
}

// submitAnswer plays the current combination.
func (s *Screen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.sess.CurrentNote == "" {
		return s, nil
	}

	s.lastNote = s.sess.CurrentNote
	correct, _ := s.sess.Answer(context.Background(), s.valves.Combination())
	s.valves.ShowVerdict(correct, s.primaryExpected())

	if s.opts.Mode == scoring.ModeSpeed {
		return s, feedbackDelayCmd()
	}
	return s, nil
}

// primaryExpected returns the primary combination for the last prompt.
func (s *Screen) primaryExpected() fingering.Fingering {
	if len(s.sess.LastExpected) > 0 {
		return s.sess.LastExpected[0]
	}
	return nil
}

// finishSession closes the session, requests a coach tip, and builds the
// summary.
func (s *Screen) finishSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out, err := s.sess.Finish(ctx)
		if out == nil {
			return finishedMsg{Err: err}
		}
		sum := sess.BuildSummary(s.sess, out)

		if s.coach != nil {
			var hardest []string
			if s.events != nil {
				hardest, _ = s.events.HardestNotes(ctx, sum.TrackKey, 3)
			}
			s.coach.RequestTip(context.Background(), coach.TipInput{
				Instrument:   s.opts.Instrument.DisplayName(),
				WrittenKey:   s.opts.Written.DisplayName(),
				Mode:         string(sum.Mode),
				Tier:         s.opts.Tier.String(),
				Accuracy:     sum.Accuracy,
				AvgSpeedSecs: sum.AvgSpeedSecs,
				BandName:     sum.BandName,
				HardestNotes: hardest,
			})
		}
		return finishedMsg{Summary: sum}
	}
}

// speedTickCmd returns the countdown redraw command.
func speedTickCmd() tea.Cmd {
	return tea.Tick(speedTickInterval, func(t time.Time) tea.Msg {
		return speedTickMsg(t)
	})
}

// feedbackDelayCmd schedules automatic feedback dismissal in speed mode.
func feedbackDelayCmd() tea.Cmd {
	return tea.Tick(speedFeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
