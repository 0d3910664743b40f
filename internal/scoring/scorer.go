// Package scoring implements the per-session score accumulators for the
// three game modes, each with a beginner and an advanced variant. A scorer
// is ephemeral: one instance per active game session, discarded at session
// end after its Result feeds the proficiency tracker.
package scoring

import "github.com/abhisek/valvo/internal/proficiency"

// Mode identifies a game session mode.
type Mode string

const (
	ModeLearning Mode = "learning"
	ModeMarathon Mode = "marathon"
	ModeSpeed    Mode = "speed"
)

// Mode weights reflect how strong a fluency signal each mode provides.
// Speed play under a per-note timer is the strongest.
const (
	learningModeWeight = 1.0
	marathonModeWeight = 1.2
	speedModeWeight    = 1.5
)

// Default session parameters.
const (
	DefaultQuestions  = 20
	DefaultLives      = 3
	DefaultIntervalMs = 2000
)

// Config carries the per-session parameters. Fields irrelevant to the
// selected mode are ignored.
type Config struct {
	// Questions is the fixed question count for learning mode.
	Questions int
	// Lives is the starting lives budget for marathon mode.
	Lives int
	// IntervalMs is the per-note time budget for speed mode.
	IntervalMs int
	// Difficulty weights the session's proficiency contribution.
	Difficulty proficiency.Difficulty
}

// Result is the uniform outcome shape shared by all six variants.
type Result struct {
	// DisplayScore is the number shown to the player at session end.
	DisplayScore int
	// Proficiency is the session's contribution fed to the tracker.
	Proficiency float64
	// Stars is the 1-3 star rating.
	Stars int
	// CorrectCount is the number of correct answers.
	CorrectCount int
	// Secondary is the mode-specific counter: configured question count
	// for learning, lives remaining for marathon, incorrect answers for
	// speed.
	Secondary int
}

// Scorer accumulates raw correct/incorrect events during one session.
type Scorer interface {
	// MarkCorrect records a correct answer.
	MarkCorrect()
	// MarkIncorrect records a wrong answer or, in speed mode, a timeout.
	MarkIncorrect()
	// Result computes the current session outcome. It may be called at
	// any time; scorers hold no hidden end-of-session state.
	Result() Result
	// Reset returns the scorer to its zero state for a session restart.
	Reset()
	// Mode reports which game mode this scorer serves.
	Mode() Mode
}

// New builds the scorer variant for a (mode, tier) pair. Unknown modes fall
// back to learning, matching the game's default mode.
func New(mode Mode, tier proficiency.PlayerTier, cfg Config) Scorer {
	switch mode {
	case ModeMarathon:
		return newMarathonScorer(tier, cfg)
	case ModeSpeed:
		return newSpeedScorer(tier, cfg)
	default:
		return newLearningScorer(tier, cfg)
	}
}

// accuracyPct converts a correct/total pair to a percentage, with a zero
// total yielding 0 rather than dividing.
func accuracyPct(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}
