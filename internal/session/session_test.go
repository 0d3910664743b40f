package session

import (
	"context"
	"testing"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/scoring"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
)

// memRepo is an in-memory proficiency.Repo for session tests.
type memRepo struct {
	records map[string]*proficiency.CompetencyRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*proficiency.CompetencyRecord)}
}

func (m *memRepo) LoadTrack(_ context.Context, key string) (*proficiency.CompetencyRecord, error) {
	return m.records[key], nil
}

func (m *memRepo) SaveTrack(_ context.Context, rec *proficiency.CompetencyRecord) error {
	m.records[rec.TrackKey] = rec
	return nil
}

// memEvents captures appended events for assertions.
type memEvents struct {
	answers     []store.AnswerEventData
	sessions    []store.SessionEventData
	proficiency []store.ProficiencyEventData
}

func (m *memEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	m.answers = append(m.answers, d)
	return nil
}

func (m *memEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.sessions = append(m.sessions, d)
	return nil
}

func (m *memEvents) AppendProficiencyEvent(_ context.Context, d store.ProficiencyEventData) error {
	m.proficiency = append(m.proficiency, d)
	return nil
}

func (m *memEvents) TrackAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

func (m *memEvents) HardestNotes(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

func (m *memEvents) RecentSessions(_ context.Context, _ int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func newTestSession(t *testing.T, mode scoring.Mode, cfg scoring.Config, events store.EventRepo) *Session {
	t.Helper()
	chart, err := fingering.Default()
	if err != nil {
		t.Fatalf("load chart: %v", err)
	}
	tracker := proficiency.NewTracker(newMemRepo(), proficiency.ConfigForTier(
		proficiency.TierBeginner, mode == scoring.ModeLearning, chart.VocabularySize()))
	registry := transposition.NewRegistry(tracker, "test-player")

	s, err := New(context.Background(), StartConfig{
		Instrument: fingering.PitchBb,
		Written:    fingering.PitchBb,
		Mode:       mode,
		Tier:       proficiency.TierBeginner,
		Scoring:    cfg,
		Chart:      chart,
		Registry:   registry,
		Events:     events,
		Seed:       1,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return s
}

// correctAnswer returns the primary fingering for the session's current prompt.
func correctAnswer(t *testing.T, s *Session) fingering.Fingering {
	t.Helper()
	combos, ok := s.Chart.Resolve(s.CurrentNote, s.Instrument, s.Written)
	if !ok {
		t.Fatalf("prompt %q not on chart", s.CurrentNote)
	}
	return combos[0]
}

// wrongAnswer returns a valve combination that is not accepted for the prompt.
func wrongAnswer(t *testing.T, s *Session) fingering.Fingering {
	t.Helper()
	combos, ok := s.Chart.Resolve(s.CurrentNote, s.Instrument, s.Written)
	if !ok {
		t.Fatalf("prompt %q not on chart", s.CurrentNote)
	}
	candidates := []fingering.Fingering{
		{}, {1}, {2}, {3}, {1, 2}, {1, 3}, {2, 3}, {1, 2, 3},
	}
	for _, c := range candidates {
		accepted := false
		for _, combo := range combos {
			if combo.Equal(c) {
				accepted = true
				break
			}
		}
		if !accepted {
			return c
		}
	}
	t.Fatal("every combination accepted, chart is broken")
	return nil
}

func TestLearningSessionFullFlow(t *testing.T) {
	ctx := context.Background()
	events := &memEvents{}
	s := newTestSession(t, scoring.ModeLearning, scoring.Config{
		Questions:  5,
		Difficulty: proficiency.DifficultyNovice,
	}, events)

	for !s.Done() {
		note := s.ServeNext()
		if note == "" {
			t.Fatal("ServeNext returned empty prompt before session end")
		}
		correct, err := s.Answer(ctx, correctAnswer(t, s))
		if err != nil {
			t.Fatalf("answer: %v", err)
		}
		if !correct {
			t.Fatalf("primary fingering for %q judged wrong", note)
		}
	}

	if s.TotalAnswers != 5 || s.TotalCorrect != 5 {
		t.Fatalf("answers = %d/%d, want 5/5", s.TotalCorrect, s.TotalAnswers)
	}

	out, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if out.Score.CorrectCount != 5 {
		t.Errorf("score correct = %d, want 5", out.Score.CorrectCount)
	}
	if out.Proficiency == nil {
		t.Fatal("expected proficiency result")
	}
	if out.Proficiency.Competency <= proficiency.SeedCompetency {
		t.Errorf("perfect session left competency at %f, want above seed %f",
			out.Proficiency.Competency, proficiency.SeedCompetency)
	}
	if out.NotesCount != 5 {
		t.Errorf("NotesCount = %d, want 5 distinct prompts", out.NotesCount)
	}

	// start + end, 5 answers, 1 proficiency update.
	if len(events.sessions) != 2 {
		t.Errorf("session events = %d, want 2", len(events.sessions))
	}
	if events.sessions[0].Action != "start" || events.sessions[1].Action != "end" {
		t.Errorf("session actions = %s/%s", events.sessions[0].Action, events.sessions[1].Action)
	}
	if len(events.answers) != 5 {
		t.Errorf("answer events = %d, want 5", len(events.answers))
	}
	if len(events.proficiency) != 1 {
		t.Errorf("proficiency events = %d, want 1", len(events.proficiency))
	}
	if events.proficiency[0].CompetencyAfter != out.Proficiency.Competency {
		t.Errorf("proficiency event after = %f, want %f",
			events.proficiency[0].CompetencyAfter, out.Proficiency.Competency)
	}
}

func TestWrongAnswerIsJudgedIncorrect(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, scoring.ModeLearning, scoring.Config{Questions: 5}, nil)

	s.ServeNext()
	correct, err := s.Answer(ctx, wrongAnswer(t, s))
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if correct {
		t.Fatal("wrong combination judged correct")
	}
	if s.LastAnswerCorrect {
		t.Error("LastAnswerCorrect = true after a miss")
	}
	if len(s.LastExpected) == 0 {
		t.Error("LastExpected empty, feedback overlay has nothing to show")
	}
	if s.TotalCorrect != 0 || s.TotalAnswers != 1 {
		t.Errorf("counts = %d/%d, want 0/1", s.TotalCorrect, s.TotalAnswers)
	}
}

func TestAlternateFingeringAccepted(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, scoring.ModeLearning, scoring.Config{Questions: 40}, nil)

	// Walk prompts until one with an alternate fingering comes up.
	for i := 0; i < 40; i++ {
		note := s.ServeNext()
		combos, _ := s.Chart.Resolve(note, s.Instrument, s.Written)
		if len(combos) > 1 {
			correct, err := s.Answer(ctx, combos[1])
			if err != nil {
				t.Fatalf("answer: %v", err)
			}
			if !correct {
				t.Fatalf("alternate fingering for %q rejected", note)
			}
			return
		}
		if _, err := s.Answer(ctx, combos[0]); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	t.Fatal("no prompt with an alternate fingering in 40 serves")
}

func TestMarathonEndsWhenLivesRunOut(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, scoring.ModeMarathon, scoring.Config{Lives: 2}, nil)

	for i := 0; i < 2; i++ {
		if s.Done() {
			t.Fatalf("session over after %d misses, lives budget is 2", i)
		}
		s.ServeNext()
		if _, err := s.Answer(ctx, wrongAnswer(t, s)); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if !s.Done() {
		t.Fatal("session still active with zero lives")
	}
	if s.ServeNext() != "" {
		t.Error("ServeNext handed out a prompt after session end")
	}
}

func TestSpeedTimeoutScoresAsIncorrect(t *testing.T) {
	ctx := context.Background()
	events := &memEvents{}
	s := newTestSession(t, scoring.ModeSpeed, scoring.Config{
		Questions:  3,
		IntervalMs: 1000,
	}, events)

	s.ServeNext()
	if err := s.Timeout(ctx); err != nil {
		t.Fatalf("timeout: %v", err)
	}
	if s.TotalAnswers != 1 || s.TotalCorrect != 0 {
		t.Errorf("counts = %d/%d, want 0/1", s.TotalCorrect, s.TotalAnswers)
	}
	if len(events.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answers))
	}
	if events.answers[0].AnsweredFingering != "-" {
		t.Errorf("timeout logged as %q, want \"-\"", events.answers[0].AnsweredFingering)
	}
	if events.answers[0].TimeMs != 1000 {
		t.Errorf("timeout TimeMs = %d, want full interval 1000", events.answers[0].TimeMs)
	}
}

func TestFinishWithNoAnswers(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, scoring.ModeLearning, scoring.Config{Questions: 5}, nil)

	out, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if out.Score.CorrectCount != 0 {
		t.Errorf("score correct = %d, want 0", out.Score.CorrectCount)
	}
	if out.Proficiency == nil {
		t.Fatal("expected proficiency result even for an empty session")
	}
}

func TestBuildSummary(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, scoring.ModeLearning, scoring.Config{
		Questions:  3,
		Difficulty: proficiency.DifficultyIntermediate,
	}, nil)

	for !s.Done() {
		s.ServeNext()
		if _, err := s.Answer(ctx, correctAnswer(t, s)); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	out, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	sum := BuildSummary(s, out)
	if sum.TotalAnswers != 3 || sum.TotalCorrect != 3 {
		t.Errorf("summary counts = %d/%d, want 3/3", sum.TotalCorrect, sum.TotalAnswers)
	}
	if sum.Accuracy != 1.0 {
		t.Errorf("accuracy = %f, want 1.0", sum.Accuracy)
	}
	if len(sum.NotesPracticed) != 3 {
		t.Errorf("notes practiced = %d, want 3", len(sum.NotesPracticed))
	}
	if sum.BandName == "" {
		t.Error("summary band name empty")
	}
	if sum.TrackKey != "test-player/Bb/Bb" {
		t.Errorf("track key = %q", sum.TrackKey)
	}
}
