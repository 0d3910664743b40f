package scoring

import (
	"testing"

	"github.com/abhisek/valvo/internal/proficiency"
)

func TestSpeed_PenaltyAndFloor(t *testing.T) {
	s := New(ModeSpeed, proficiency.TierBeginner, Config{IntervalMs: 1000})
	mark(s, 8, 3)
	// 8*100 - 3*50 = 650
	if got := s.Result().DisplayScore; got != 650 {
		t.Errorf("DisplayScore = %d, want 650", got)
	}

	s.Reset()
	mark(s, 1, 10)
	// 100 - 500 floors at 0.
	if got := s.Result().DisplayScore; got != 0 {
		t.Errorf("DisplayScore = %d, want 0 (floored)", got)
	}
}

func TestSpeed_SecondaryCountsTimeouts(t *testing.T) {
	s := New(ModeSpeed, proficiency.TierBeginner, Config{IntervalMs: 1000})
	mark(s, 5, 4)
	if got := s.Result().Secondary; got != 4 {
		t.Errorf("Secondary = %d, want 4", got)
	}
}

func TestSpeed_ThresholdsScaleInverselyWithInterval(t *testing.T) {
	fast := newSpeedScorer(proficiency.TierBeginner, Config{IntervalMs: 1000})
	slow := newSpeedScorer(proficiency.TierBeginner, Config{IntervalMs: 2000})

	fastThree, fastTwo := fast.thresholds()
	slowThree, slowTwo := slow.thresholds()

	// Doubling the interval halves both thresholds.
	if slowThree*2 != fastThree || slowTwo*2 != fastTwo {
		t.Errorf("thresholds did not halve: fast (%d,%d) slow (%d,%d)",
			fastThree, fastTwo, slowThree, slowTwo)
	}
}

func TestSpeed_HardIntervalRaisesThresholds(t *testing.T) {
	hard := newSpeedScorer(proficiency.TierBeginner, Config{IntervalMs: 500})
	three, two := hard.thresholds()
	if three != 3000 || two != 1500 {
		t.Errorf("500ms thresholds = (%d,%d), want (3000,1500)", three, two)
	}
}

func TestSpeed_Stars(t *testing.T) {
	// At 1000ms the beginner thresholds are 1500/750.
	cases := []struct {
		correct, incorrect, want int
	}{
		{15, 0, 3}, // 1500
		{8, 1, 2},  // 750
		{7, 0, 1},  // 700
	}
	for _, c := range cases {
		s := New(ModeSpeed, proficiency.TierBeginner, Config{IntervalMs: 1000})
		mark(s, c.correct, c.incorrect)
		if got := s.Result().Stars; got != c.want {
			t.Errorf("%d/%d: stars = %d, want %d", c.correct, c.incorrect, got, c.want)
		}
	}
}

func TestSpeed_AdvancedThresholdsDouble(t *testing.T) {
	s := newSpeedScorer(proficiency.TierAdvanced, Config{IntervalMs: 1000})
	three, two := s.thresholds()
	if three != 3000 || two != 1500 {
		t.Errorf("advanced thresholds = (%d,%d), want (3000,1500)", three, two)
	}
}

func TestSpeed_ProficiencyUsesHighestModeWeight(t *testing.T) {
	s := New(ModeSpeed, proficiency.TierAdvanced, Config{
		IntervalMs: 1000,
		Difficulty: proficiency.DifficultyNovice,
	})
	mark(s, 9, 1)
	// 90% * 1.0 * 1.5 = 135
	if got := s.Result().Proficiency; !almostEqual(got, 135) {
		t.Errorf("Proficiency = %f, want 135", got)
	}
}

func TestSpeed_ZeroAnswers(t *testing.T) {
	s := New(ModeSpeed, proficiency.TierBeginner, Config{})
	res := s.Result()
	if res.DisplayScore != 0 || res.Proficiency != 0 {
		t.Errorf("empty session: %+v", res)
	}
}
