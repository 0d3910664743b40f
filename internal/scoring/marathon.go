package scoring

import "github.com/abhisek/valvo/internal/proficiency"

const (
	// marathonPointsPerCorrect is the display score per correct answer.
	marathonPointsPerCorrect = 100

	// marathonProficiencyCap bounds the answer window that feeds
	// proficiency, so a 200-answer run cannot out-rank a 30-answer one
	// purely on volume.
	marathonProficiencyCap = 30
)

// marathonScorer scores an open-ended run with a lives budget. The game
// loop ends the session when LivesRemaining reaches zero.
type marathonScorer struct {
	tier       proficiency.PlayerTier
	startLives int
	difficulty proficiency.Difficulty

	correct int
	total   int
	lives   int
}

func newMarathonScorer(tier proficiency.PlayerTier, cfg Config) *marathonScorer {
	lives := cfg.Lives
	if lives <= 0 {
		lives = DefaultLives
	}
	return &marathonScorer{
		tier:       tier,
		startLives: lives,
		difficulty: cfg.Difficulty,
		lives:      lives,
	}
}

func (s *marathonScorer) MarkCorrect() {
	s.correct++
	s.total++
}

func (s *marathonScorer) MarkIncorrect() {
	s.total++
	if s.lives > 0 {
		s.lives--
	}
}

// LivesRemaining reports the lives budget left; the session ends at zero.
func (s *marathonScorer) LivesRemaining() int { return s.lives }

func (s *marathonScorer) Result() Result {
	points := s.correct * marathonPointsPerCorrect
	return Result{
		DisplayScore: points,
		Proficiency:  s.cappedAccuracyPct() * s.difficulty.Weight() * marathonModeWeight,
		Stars:        s.stars(points),
		CorrectCount: s.correct,
		Secondary:    s.lives,
	}
}

// cappedAccuracyPct normalizes long and short runs by capping both counts
// at the proficiency window: min(correct,30)/min(total,30).
func (s *marathonScorer) cappedAccuracyPct() float64 {
	correct := s.correct
	if correct > marathonProficiencyCap {
		correct = marathonProficiencyCap
	}
	total := s.total
	if total > marathonProficiencyCap {
		total = marathonProficiencyCap
	}
	return accuracyPct(correct, total)
}

func (s *marathonScorer) stars(points int) int {
	if s.tier == proficiency.TierBeginner {
		switch {
		case points >= 1000:
			return 3
		case points >= 500:
			return 2
		default:
			return 1
		}
	}
	switch {
	case points >= 2000:
		return 3
	case points > 1000:
		return 2
	default:
		return 1
	}
}

func (s *marathonScorer) Reset() {
	s.correct = 0
	s.total = 0
	s.lives = s.startLives
}

func (s *marathonScorer) Mode() Mode { return ModeMarathon }
