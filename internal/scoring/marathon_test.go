package scoring

import (
	"testing"

	"github.com/abhisek/valvo/internal/proficiency"
)

func TestMarathon_PointsPerCorrect(t *testing.T) {
	s := New(ModeMarathon, proficiency.TierBeginner, Config{Lives: 3})
	mark(s, 12, 1)

	res := s.Result()
	if res.DisplayScore != 1200 {
		t.Errorf("DisplayScore = %d, want 1200", res.DisplayScore)
	}
	if res.Secondary != 2 {
		t.Errorf("lives remaining = %d, want 2", res.Secondary)
	}
}

func TestMarathon_LivesFloorAtZero(t *testing.T) {
	s := newMarathonScorer(proficiency.TierBeginner, Config{Lives: 2})
	mark(s, 0, 5)
	if got := s.LivesRemaining(); got != 0 {
		t.Errorf("LivesRemaining = %d, want 0", got)
	}
}

func TestMarathon_CappedProficiencyWindow(t *testing.T) {
	// 45 answers with 40 correct: the proficiency window caps both counts
	// at 30, so the contribution is min(40,30)/min(45,30) = 30/30 = 100%.
	long := New(ModeMarathon, proficiency.TierAdvanced, Config{Lives: 10, Difficulty: proficiency.DifficultyNovice})
	mark(long, 40, 5)

	capped := New(ModeMarathon, proficiency.TierAdvanced, Config{Lives: 10, Difficulty: proficiency.DifficultyNovice})
	mark(capped, 30, 0)

	if !almostEqual(long.Result().Proficiency, capped.Result().Proficiency) {
		t.Errorf("long run proficiency %f != capped run %f",
			long.Result().Proficiency, capped.Result().Proficiency)
	}
	// 100% * 1.0 * 1.2 = 120
	if got := long.Result().Proficiency; !almostEqual(got, 120) {
		t.Errorf("Proficiency = %f, want 120", got)
	}
}

func TestMarathon_VolumeDoesNotOutrankShortRuns(t *testing.T) {
	// A 200-answer run at 90% must not beat a 30-answer run at 100%.
	long := New(ModeMarathon, proficiency.TierAdvanced, Config{Lives: 100})
	mark(long, 180, 20)

	short := New(ModeMarathon, proficiency.TierAdvanced, Config{Lives: 100})
	mark(short, 30, 0)

	if long.Result().Proficiency >= short.Result().Proficiency {
		t.Errorf("volume out-ranked accuracy: %f >= %f",
			long.Result().Proficiency, short.Result().Proficiency)
	}
}

func TestMarathon_BeginnerStars(t *testing.T) {
	cases := []struct {
		correct int
		want    int
	}{
		{10, 3}, // 1000 points
		{5, 2},  // 500 points
		{4, 1},
	}
	for _, c := range cases {
		s := New(ModeMarathon, proficiency.TierBeginner, Config{Lives: 3})
		mark(s, c.correct, 0)
		if got := s.Result().Stars; got != c.want {
			t.Errorf("beginner %d correct: stars = %d, want %d", c.correct, got, c.want)
		}
	}
}

func TestMarathon_AdvancedStarsRoughlyDouble(t *testing.T) {
	cases := []struct {
		correct int
		want    int
	}{
		{20, 3}, // 2000 points
		{11, 2}, // 1100 points
		{10, 1}, // exactly 1000: advanced needs strictly more
	}
	for _, c := range cases {
		s := New(ModeMarathon, proficiency.TierAdvanced, Config{Lives: 3})
		mark(s, c.correct, 0)
		if got := s.Result().Stars; got != c.want {
			t.Errorf("advanced %d correct: stars = %d, want %d", c.correct, got, c.want)
		}
	}
}

func TestMarathon_ZeroAnswers(t *testing.T) {
	s := New(ModeMarathon, proficiency.TierBeginner, Config{})
	res := s.Result()
	if res.DisplayScore != 0 || res.Proficiency != 0 || res.Stars != 1 {
		t.Errorf("empty session: %+v", res)
	}
}

func TestMarathon_ResetRestoresLives(t *testing.T) {
	s := newMarathonScorer(proficiency.TierBeginner, Config{Lives: 3})
	mark(s, 4, 2)
	s.Reset()

	if s.LivesRemaining() != 3 {
		t.Errorf("lives after reset = %d, want 3", s.LivesRemaining())
	}
	if res := s.Result(); res.CorrectCount != 0 {
		t.Errorf("correct after reset = %d, want 0", res.CorrectCount)
	}
}
