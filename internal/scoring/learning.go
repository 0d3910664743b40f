package scoring

import (
	"math"

	"github.com/abhisek/valvo/internal/proficiency"
)

// learningScorer scores a fixed-length learning session. Only correctness
// out of the configured total matters: wrong attempts are not separately
// counted, so MarkIncorrect is a no-op.
type learningScorer struct {
	tier       proficiency.PlayerTier
	questions  int
	difficulty proficiency.Difficulty
	correct    int
}

func newLearningScorer(tier proficiency.PlayerTier, cfg Config) *learningScorer {
	questions := cfg.Questions
	if questions <= 0 {
		questions = DefaultQuestions
	}
	return &learningScorer{
		tier:       tier,
		questions:  questions,
		difficulty: cfg.Difficulty,
	}
}

func (s *learningScorer) MarkCorrect() {
	if s.correct < s.questions {
		s.correct++
	}
}

func (s *learningScorer) MarkIncorrect() {}

func (s *learningScorer) Result() Result {
	pct := accuracyPct(s.correct, s.questions)
	return Result{
		DisplayScore: int(math.Round(pct)),
		Proficiency:  pct * s.difficulty.Weight() * learningModeWeight,
		Stars:        s.stars(pct),
		CorrectCount: s.correct,
		Secondary:    s.questions,
	}
}

func (s *learningScorer) stars(pct float64) int {
	if s.tier == proficiency.TierBeginner {
		switch {
		case pct >= 80:
			return 3
		case pct >= 60:
			return 2
		default:
			return 1
		}
	}
	switch {
	case pct >= 90:
		return 3
	case pct > 70:
		return 2
	default:
		return 1
	}
}

func (s *learningScorer) Reset() { s.correct = 0 }

func (s *learningScorer) Mode() Mode { return ModeLearning }
