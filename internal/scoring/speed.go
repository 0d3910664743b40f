package scoring

import (
	"math"

	"github.com/abhisek/valvo/internal/proficiency"
)

const (
	speedPointsPerCorrect   = 100
	speedPenaltyPerWrong    = 50
	speedReferenceIntervalMs = 1000

	// Star point thresholds at the 1000ms reference interval. Faster
	// intervals raise them proportionally, slower intervals lower them,
	// keeping every speed setting comparably reachable.
	speedBeginnerThreeStar = 1500
	speedBeginnerTwoStar   = 750
	speedAdvancedThreeStar = 3000
	speedAdvancedTwoStar   = 1500
)

// speedScorer scores a timed session. The game loop enforces the per-note
// timeout and calls MarkIncorrect on expiry.
type speedScorer struct {
	tier       proficiency.PlayerTier
	intervalMs int
	difficulty proficiency.Difficulty

	correct   int
	incorrect int
}

func newSpeedScorer(tier proficiency.PlayerTier, cfg Config) *speedScorer {
	interval := cfg.IntervalMs
	if interval <= 0 {
		interval = DefaultIntervalMs
	}
	return &speedScorer{
		tier:       tier,
		intervalMs: interval,
		difficulty: cfg.Difficulty,
	}
}

func (s *speedScorer) MarkCorrect() { s.correct++ }

func (s *speedScorer) MarkIncorrect() { s.incorrect++ }

func (s *speedScorer) Result() Result {
	points := s.correct*speedPointsPerCorrect - s.incorrect*speedPenaltyPerWrong
	if points < 0 {
		points = 0
	}
	pct := accuracyPct(s.correct, s.correct+s.incorrect)
	return Result{
		DisplayScore: points,
		Proficiency:  pct * s.difficulty.Weight() * speedModeWeight,
		Stars:        s.stars(points),
		CorrectCount: s.correct,
		Secondary:    s.incorrect,
	}
}

func (s *speedScorer) stars(points int) int {
	three, two := s.thresholds()
	switch {
	case points >= three:
		return 3
	case points >= two:
		return 2
	default:
		return 1
	}
}

// thresholds scales the reference star thresholds inversely with the
// configured interval: doubling the interval halves both thresholds.
func (s *speedScorer) thresholds() (three, two int) {
	scale := float64(speedReferenceIntervalMs) / float64(s.intervalMs)
	three, two = speedBeginnerThreeStar, speedBeginnerTwoStar
	if s.tier == proficiency.TierAdvanced {
		three, two = speedAdvancedThreeStar, speedAdvancedTwoStar
	}
	return int(math.Round(float64(three) * scale)), int(math.Round(float64(two) * scale))
}

func (s *speedScorer) Reset() {
	s.correct = 0
	s.incorrect = 0
}

func (s *speedScorer) Mode() Mode { return ModeSpeed }
