package proficiency

import "testing"

func TestBandOf_Boundaries(t *testing.T) {
	cases := []struct {
		competency float64
		want       Band
	}{
		{0.0, BandEarlyLearning},
		{0.19, BandEarlyLearning},
		{0.2, BandDeveloping},
		{0.39, BandDeveloping},
		{0.4, BandFunctional},
		{0.59, BandFunctional},
		{0.6, BandIndependent},
		{0.79, BandIndependent},
		{0.8, BandMastered},
		{1.0, BandMastered},
	}
	for _, c := range cases {
		if got := BandOf(c.competency); got != c.want {
			t.Errorf("BandOf(%f) = %s, want %s", c.competency, got.Name(), c.want.Name())
		}
	}
}

func TestBandOf_ClampsOutOfRange(t *testing.T) {
	if got := BandOf(-0.5); got != BandEarlyLearning {
		t.Errorf("BandOf(-0.5) = %s, want Early Learning", got.Name())
	}
	if got := BandOf(1.5); got != BandMastered {
		t.Errorf("BandOf(1.5) = %s, want Mastered", got.Name())
	}
}

func TestBandNamesAndDescriptions(t *testing.T) {
	for _, b := range []Band{BandEarlyLearning, BandDeveloping, BandFunctional, BandIndependent, BandMastered} {
		if b.Name() == "" {
			t.Errorf("band %d has empty name", b)
		}
		if b.Description() == "" {
			t.Errorf("band %d has empty description", b)
		}
	}
}
