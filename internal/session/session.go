package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/scoring"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
)

// StartConfig carries everything needed to begin a game session.
type StartConfig struct {
	Instrument fingering.Pitch
	Written    fingering.Pitch
	Mode       scoring.Mode
	Tier       proficiency.PlayerTier
	Scoring    scoring.Config
	Chart      *fingering.Chart
	Registry   *transposition.Registry
	// Events is optional; nil disables event logging.
	Events store.EventRepo
	// Covered and Hardest seed the prompt picker's priority order.
	Covered map[string]bool
	Hardest []string
	// Seed fixes the prompt order; 0 means derive from the clock.
	Seed int64
}

// Session drives one run of one mode on one track: it serves prompts,
// checks answers against the fingering chart, accumulates the score, and at
// the end hands the finished metric tuple to the proficiency tracker.
type Session struct {
	State

	picker     *Picker
	now        func() time.Time
	ended      bool
	lastPrompt string
}

// New starts a game session and appends its start event.
func New(ctx context.Context, cfg StartConfig) (*Session, error) {
	if cfg.Chart == nil || cfg.Registry == nil {
		return nil, fmt.Errorf("session: chart and registry are required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		State: State{
			SessionID:      uuid.NewString(),
			Instrument:     cfg.Instrument,
			Written:        cfg.Written,
			Mode:           cfg.Mode,
			Tier:           cfg.Tier,
			Config:         cfg.Scoring,
			Scorer:         scoring.New(cfg.Mode, cfg.Tier, cfg.Scoring),
			Chart:          cfg.Chart,
			StartTime:      time.Now(),
			NotesPracticed: make(map[string]bool),
			Phase:          PhaseActive,
			Events:         cfg.Events,
			Registry:       cfg.Registry,
		},
		picker: NewPicker(cfg.Chart, cfg.Instrument, cfg.Written, cfg.Covered, cfg.Hardest, seed),
		now:    time.Now,
	}

	if s.Events != nil {
		err := s.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.SessionID,
			Action:    "start",
			TrackKey:  s.TrackKey(),
			Mode:      string(s.Mode),
			Tier:      s.Tier.String(),
		})
		if err != nil {
			return nil, fmt.Errorf("log session start: %w", err)
		}
	}
	return s, nil
}

// WithClock overrides the session clock for deterministic timing in tests.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

// ServeNext advances to the next prompt and starts its response timer.
// Returns an empty string if the session is already over.
func (s *Session) ServeNext() string {
	if s.Done() {
		return ""
	}
	s.CurrentNote = s.picker.Next()
	s.PromptStartTime = s.now()
	s.NotesPracticed[s.CurrentNote] = true
	s.Phase = PhaseActive
	return s.CurrentNote
}

// Answer checks a valve combination against the current prompt, updates the
// score, and appends the answer event. The returned bool reports whether
// the answer was correct.
func (s *Session) Answer(ctx context.Context, answer fingering.Fingering) (bool, error) {
	if s.CurrentNote == "" {
		return false, fmt.Errorf("session: no active prompt")
	}

	elapsed := int(s.now().Sub(s.PromptStartTime).Milliseconds())
	correct := s.Chart.Matches(s.CurrentNote, answer, s.Instrument, s.Written)
	s.record(correct, elapsed)

	if err := s.logAnswer(ctx, answer.String(), correct, elapsed); err != nil {
		return correct, err
	}
	return correct, nil
}

// Timeout records a missed per-note deadline in speed mode. It scores as an
// incorrect answer with the full interval as the response time.
func (s *Session) Timeout(ctx context.Context) error {
	if s.CurrentNote == "" {
		return fmt.Errorf("session: no active prompt")
	}
	s.record(false, s.Config.IntervalMs)
	// "-" marks a timeout; "0" would read as an open-horn answer.
	return s.logAnswer(ctx, "-", false, s.Config.IntervalMs)
}

func (s *Session) record(correct bool, elapsedMs int) {
	s.lastPrompt = s.CurrentNote
	s.TotalAnswers++
	s.AnswerTimesMs = append(s.AnswerTimesMs, elapsedMs)
	s.LastAnswerCorrect = correct
	s.LastExpected, _ = s.Chart.Resolve(s.CurrentNote, s.Instrument, s.Written)
	if correct {
		s.TotalCorrect++
		s.Scorer.MarkCorrect()
	} else {
		s.Scorer.MarkIncorrect()
	}
	s.CurrentNote = ""
	s.Phase = PhaseFeedback
}

func (s *Session) logAnswer(ctx context.Context, answered string, correct bool, elapsedMs int) error {
	if s.Events == nil {
		return nil
	}
	expected := "?"
	if len(s.LastExpected) > 0 {
		expected = s.LastExpected[0].String()
	}
	err := s.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:         s.SessionID,
		TrackKey:          s.TrackKey(),
		Note:              s.lastPrompt,
		ExpectedFingering: expected,
		AnsweredFingering: answered,
		Correct:           correct,
		TimeMs:            elapsedMs,
		Mode:              string(s.Mode),
	})
	if err != nil {
		return fmt.Errorf("log answer: %w", err)
	}
	return nil
}

// Done reports whether the session's end condition has been reached:
// the configured question count for learning and speed, zero lives for
// marathon.
func (s *Session) Done() bool {
	if s.ended {
		return true
	}
	switch s.Mode {
	case scoring.ModeMarathon:
		if m, ok := s.Scorer.(interface{ LivesRemaining() int }); ok {
			return m.LivesRemaining() <= 0
		}
		return false
	default:
		questions := s.Config.Questions
		if questions <= 0 {
			questions = scoring.DefaultQuestions
		}
		return s.TotalAnswers >= questions
	}
}

// Outcome is the end-of-session bundle handed to the summary screen.
type Outcome struct {
	Score       scoring.Result
	Proficiency *proficiency.SessionResult
	Duration    time.Duration
	NotesCount  int
}

// Finish closes the session: it computes the final score, feeds the metric
// tuple into the track's competency, and appends the end and proficiency
// events. Safe to call once; later calls return the same outcome shape
// recomputed from frozen state.
func (s *Session) Finish(ctx context.Context) (*Outcome, error) {
	s.ended = true
	s.Phase = PhaseSummary
	duration := s.now().Sub(s.StartTime)

	result := s.Scorer.Result()

	notes := make([]string, 0, len(s.NotesPracticed))
	for n := range s.NotesPracticed {
		notes = append(notes, n)
	}

	var before float64
	if status, err := s.Registry.Current(ctx, s.Instrument, s.Written); err == nil && status != nil {
		before = status.Competency
	}

	prof, err := s.Registry.RecordSession(ctx, s.Instrument, s.Written, proficiency.SessionInput{
		CorrectCount:   s.TotalCorrect,
		TotalCount:     s.TotalAnswers,
		AvgSpeedSecs:   s.avgSpeedSecs(),
		NotesPracticed: notes,
		Difficulty:     s.Config.Difficulty,
		Mode:           string(s.Mode),
	})
	if err != nil && prof == nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	if s.Events != nil {
		endErr := s.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.SessionID,
			Action:          "end",
			TrackKey:        s.TrackKey(),
			Mode:            string(s.Mode),
			Tier:            s.Tier.String(),
			QuestionsServed: s.TotalAnswers,
			CorrectAnswers:  s.TotalCorrect,
			DurationSecs:    int(duration.Seconds()),
		})
		if endErr == nil && prof != nil {
			endErr = s.Events.AppendProficiencyEvent(ctx, store.ProficiencyEventData{
				TrackKey:            s.TrackKey(),
				SessionID:           s.SessionID,
				RawPerformance:      result.Proficiency,
				WeightedPerformance: prof.WeightedPerformance,
				CompetencyBefore:    before,
				CompetencyAfter:     prof.Competency,
				Band:                prof.Band.Name(),
			})
		}
		if err == nil {
			err = endErr
		}
	}

	return &Outcome{
		Score:       result,
		Proficiency: prof,
		Duration:    duration,
		NotesCount:  len(s.NotesPracticed),
	}, err
}

func (s *Session) avgSpeedSecs() float64 {
	if len(s.AnswerTimesMs) == 0 {
		return 0
	}
	total := 0
	for _, ms := range s.AnswerTimesMs {
		total += ms
	}
	return float64(total) / float64(len(s.AnswerTimesMs)) / 1000
}
