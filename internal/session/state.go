package session

import (
	"time"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/scoring"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
)

// Phase represents the current phase of a game session.
type Phase int

const (
	PhaseActive      Phase = iota // Serving prompts
	PhaseFeedback                 // Showing answer feedback
	PhaseQuitConfirm              // Quit confirmation dialog displayed
	PhaseSummary                  // Showing the summary screen
)

// State tracks the runtime state of an active game session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Instrument and Written identify the track this session practices.
	Instrument fingering.Pitch
	Written    fingering.Pitch

	// Mode is the game mode for this session.
	Mode scoring.Mode

	// Tier selects the beginner or advanced scoring variant.
	Tier proficiency.PlayerTier

	// Config carries the session parameters (questions, lives, interval).
	Config scoring.Config

	// Scorer accumulates the running score.
	Scorer scoring.Scorer

	// Chart resolves prompts to valid valve combinations.
	Chart *fingering.Chart

	// CurrentNote is the prompt being displayed, written in the session's
	// written key. Empty between prompts.
	CurrentNote string

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// LastExpected holds the accepted combinations for the last prompt,
	// primary first, for the feedback overlay.
	LastExpected []fingering.Fingering

	// StartTime is when the session began.
	StartTime time.Time

	// PromptStartTime is when the current prompt was first displayed.
	PromptStartTime time.Time

	// AnswerTimesMs records per-answer response times for the speed metric.
	AnswerTimesMs []int

	// NotesPracticed is the set of distinct prompts served, in the written
	// key. Feeds the tracker's coverage signal.
	NotesPracticed map[string]bool

	// TotalAnswers and TotalCorrect count answers including timeouts.
	TotalAnswers int
	TotalCorrect int

	// Phase is the current session phase.
	Phase Phase

	// Events receives per-answer and session lifecycle events. Nil disables
	// event logging.
	Events store.EventRepo

	// Registry applies the finished session to the track's competency.
	Registry *transposition.Registry
}

// TrackKey returns the composite key for this session's combination.
func (s *State) TrackKey() string {
	return s.Registry.TrackKey(s.Instrument, s.Written)
}
