package scoring

import (
	"math"
	"testing"

	"github.com/abhisek/valvo/internal/proficiency"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func mark(s Scorer, correct, incorrect int) {
	for i := 0; i < correct; i++ {
		s.MarkCorrect()
	}
	for i := 0; i < incorrect; i++ {
		s.MarkIncorrect()
	}
}

func TestLearning_AccuracyIsDisplayScore(t *testing.T) {
	s := New(ModeLearning, proficiency.TierBeginner, Config{Questions: 20})
	mark(s, 15, 0)

	res := s.Result()
	if res.DisplayScore != 75 {
		t.Errorf("DisplayScore = %d, want 75", res.DisplayScore)
	}
	if res.CorrectCount != 15 {
		t.Errorf("CorrectCount = %d, want 15", res.CorrectCount)
	}
	if res.Secondary != 20 {
		t.Errorf("Secondary = %d, want 20 (question count)", res.Secondary)
	}
}

func TestLearning_IncorrectIsNoOp(t *testing.T) {
	s := New(ModeLearning, proficiency.TierBeginner, Config{Questions: 20})
	mark(s, 10, 7)

	res := s.Result()
	if res.DisplayScore != 50 {
		t.Errorf("DisplayScore = %d, want 50 (wrong attempts are not counted)", res.DisplayScore)
	}
}

func TestLearning_DefaultQuestionCount(t *testing.T) {
	s := New(ModeLearning, proficiency.TierBeginner, Config{})
	mark(s, 20, 0)
	if got := s.Result().DisplayScore; got != 100 {
		t.Errorf("DisplayScore = %d, want 100 with default count %d", got, DefaultQuestions)
	}
}

func TestLearning_BeginnerStars(t *testing.T) {
	cases := []struct {
		correct int
		want    int
	}{
		{16, 3}, // 80%
		{12, 2}, // 60%
		{11, 1}, // 55%
		{0, 1},
	}
	for _, c := range cases {
		s := New(ModeLearning, proficiency.TierBeginner, Config{Questions: 20})
		mark(s, c.correct, 0)
		if got := s.Result().Stars; got != c.want {
			t.Errorf("beginner %d/20: stars = %d, want %d", c.correct, got, c.want)
		}
	}
}

func TestLearning_AdvancedStars(t *testing.T) {
	cases := []struct {
		correct int
		want    int
	}{
		{18, 3}, // 90%
		{17, 2}, // 85%
		{15, 2}, // 75%
		{14, 1}, // 70%: advanced needs strictly more than 70 for 2 stars
	}
	for _, c := range cases {
		s := New(ModeLearning, proficiency.TierAdvanced, Config{Questions: 20})
		mark(s, c.correct, 0)
		if got := s.Result().Stars; got != c.want {
			t.Errorf("advanced %d/20: stars = %d, want %d", c.correct, got, c.want)
		}
	}
}

func TestLearning_ProficiencyWeighting(t *testing.T) {
	s := New(ModeLearning, proficiency.TierAdvanced, Config{
		Questions:  20,
		Difficulty: proficiency.DifficultyProficient,
	})
	mark(s, 16, 0)
	// 80% * 2.5 * 1.0 = 200
	if got := s.Result().Proficiency; !almostEqual(got, 200) {
		t.Errorf("Proficiency = %f, want 200", got)
	}
}

func TestLearning_Reset(t *testing.T) {
	s := New(ModeLearning, proficiency.TierBeginner, Config{Questions: 20})
	mark(s, 13, 2)
	s.Reset()

	res := s.Result()
	if res.CorrectCount != 0 || res.DisplayScore != 0 {
		t.Errorf("after Reset: %+v, want zero state", res)
	}
}

func TestFactory_ModeSelection(t *testing.T) {
	for _, mode := range []Mode{ModeLearning, ModeMarathon, ModeSpeed} {
		s := New(mode, proficiency.TierBeginner, Config{})
		if s.Mode() != mode {
			t.Errorf("New(%s).Mode() = %s", mode, s.Mode())
		}
	}
	// Unknown modes fall back to learning.
	if got := New(Mode("arcade"), proficiency.TierBeginner, Config{}).Mode(); got != ModeLearning {
		t.Errorf("unknown mode -> %s, want learning", got)
	}
}
