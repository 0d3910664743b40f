package proficiency

import "testing"

func TestDifficultyWeights(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want float64
	}{
		{DifficultyNovice, 1.0},
		{DifficultyIntermediate, 1.5},
		{DifficultyProficient, 2.5},
		{DifficultyVirtuoso, 4.0},
	}
	for _, c := range cases {
		if got := c.d.Weight(); got != c.want {
			t.Errorf("Weight(%s) = %f, want %f", c.d, got, c.want)
		}
	}
}

func TestDifficultyWeight_UnknownFallsBack(t *testing.T) {
	if got := Difficulty(99).Weight(); got != 1.0 {
		t.Errorf("Weight(99) = %f, want 1.0", got)
	}
	if got := Difficulty(-1).Weight(); got != 1.0 {
		t.Errorf("Weight(-1) = %f, want 1.0", got)
	}
}

func TestWeightedPerformance_HarderPracticeWorthMore(t *testing.T) {
	// Perfect raw performance at the easiest difficulty maps to 1.0/4.0.
	if got := WeightedPerformance(1.0, DifficultyNovice); !almostEqual(got, 0.25) {
		t.Errorf("WeightedPerformance = %f, want 0.25", got)
	}
	// Perfect raw performance at the hardest difficulty maps to 1.0.
	if got := WeightedPerformance(1.0, DifficultyVirtuoso); !almostEqual(got, 1.0) {
		t.Errorf("WeightedPerformance = %f, want 1.0", got)
	}
}

func TestWeightedPerformance_EquivalenceAcrossDifficulties(t *testing.T) {
	// 1.0 * 1.0 == 0.4 * 2.5, so both sessions contribute identically.
	novice := WeightedPerformance(1.0, DifficultyNovice)
	proficient := WeightedPerformance(0.4, DifficultyProficient)
	if !almostEqual(novice, proficient) {
		t.Errorf("weighted performances differ: %f vs %f", novice, proficient)
	}
	if !almostEqual(1.0*DifficultyNovice.Weight(), 0.4*DifficultyProficient.Weight()) {
		t.Error("pre-normalization products must be equal")
	}
}

func TestDifficultyStringRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyNovice, DifficultyIntermediate, DifficultyProficient, DifficultyVirtuoso} {
		if got := DifficultyFromString(d.String()); got != d {
			t.Errorf("round trip %s -> %d, want %d", d.String(), got, d)
		}
	}
	if got := DifficultyFromString("garbage"); got != DifficultyNovice {
		t.Errorf("DifficultyFromString(garbage) = %d, want novice", got)
	}
}
