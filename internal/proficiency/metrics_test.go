package proficiency

import (
	"math"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEvaluate_StandardAllPerfect(t *testing.T) {
	m := Metrics{Accuracy: 1.0, AvgSpeedSecs: 0, Coverage: 1.0, Consistency: 1.0}
	// 0.5*1 + 0.2*1 + 0.2*1 + 0.1*1 = 1.0
	got := Evaluate(m, ProfileStandard)
	if !almostEqual(got, 1.0) {
		t.Errorf("Evaluate = %f, want 1.0", got)
	}
}

func TestEvaluate_StandardMixed(t *testing.T) {
	// normSpeed = 1 - 1.5/3.0 = 0.5
	m := Metrics{Accuracy: 0.8, AvgSpeedSecs: 1.5, Coverage: 0.5, Consistency: 0.5}
	// 0.5*0.8 + 0.2*0.5 + 0.2*0.5 + 0.1*0.5 = 0.65
	got := Evaluate(m, ProfileStandard)
	if !almostEqual(got, 0.65) {
		t.Errorf("Evaluate = %f, want 0.65", got)
	}
}

func TestEvaluate_StandardSlowSpeedFloorsAtZero(t *testing.T) {
	// 10s per answer against a 3s baseline must clamp the speed term to 0,
	// not go negative.
	m := Metrics{Accuracy: 1.0, AvgSpeedSecs: 10, Coverage: 0, Consistency: 0}
	got := Evaluate(m, ProfileStandard)
	if !almostEqual(got, 0.5) {
		t.Errorf("Evaluate = %f, want 0.5", got)
	}
}

func TestEvaluate_LenientScalesEarlyProgress(t *testing.T) {
	// normSpeed = 0 at the 5s baseline.
	m := Metrics{Accuracy: 0.5, AvgSpeedSecs: 5.0, Coverage: 0.5, Consistency: 0.5}
	// (0.7*0.5 + 0.1*0 + 0.15*0.5 + 0.05*0.5) * 1.3 = 0.45 * 1.3 = 0.585
	got := Evaluate(m, ProfileLenient)
	if !almostEqual(got, 0.585) {
		t.Errorf("Evaluate = %f, want 0.585", got)
	}
}

func TestEvaluate_LenientClampsAtOne(t *testing.T) {
	m := Metrics{Accuracy: 1.0, AvgSpeedSecs: 0, Coverage: 1.0, Consistency: 1.0}
	got := Evaluate(m, ProfileLenient)
	if !almostEqual(got, 1.0) {
		t.Errorf("Evaluate = %f, want 1.0 (clamped)", got)
	}
}

func TestEvaluate_MasteryIgnoresCoverageAndConsistency(t *testing.T) {
	low := Metrics{Accuracy: 0.7, AvgSpeedSecs: 1.5, Coverage: 0, Consistency: 0}
	high := Metrics{Accuracy: 0.7, AvgSpeedSecs: 1.5, Coverage: 1, Consistency: 1}
	if Evaluate(low, ProfileMastery) != Evaluate(high, ProfileMastery) {
		t.Error("mastery profile must not depend on coverage or consistency")
	}
	// 0.8*0.7 + 0.2*0.5 = 0.66
	got := Evaluate(low, ProfileMastery)
	if !almostEqual(got, 0.66) {
		t.Errorf("Evaluate = %f, want 0.66", got)
	}
}

func TestEvaluate_MasteryBoostsHighScores(t *testing.T) {
	// normSpeed = 1 - 0.3/3.0 = 0.9; score = 0.8*0.85 + 0.2*0.9 = 0.86,
	// boosted: 0.86 * 1.15 = 0.989.
	m := Metrics{Accuracy: 0.85, AvgSpeedSecs: 0.3}
	got := Evaluate(m, ProfileMastery)
	if !almostEqual(got, 0.989) {
		t.Errorf("Evaluate = %f, want 0.989", got)
	}
}

func TestEvaluate_MasteryNoBoostBelowFloor(t *testing.T) {
	// score = 0.8*0.9 + 0.2*0.5 = 0.82 < 0.85, no boost.
	m := Metrics{Accuracy: 0.9, AvgSpeedSecs: 1.5}
	got := Evaluate(m, ProfileMastery)
	if !almostEqual(got, 0.82) {
		t.Errorf("Evaluate = %f, want 0.82", got)
	}
}

func TestEvaluate_AlwaysInUnitInterval(t *testing.T) {
	cases := []Metrics{
		{Accuracy: -1, AvgSpeedSecs: -5, Coverage: -1, Consistency: -1},
		{Accuracy: 2, AvgSpeedSecs: 0, Coverage: 2, Consistency: 2},
		{Accuracy: 0.5, AvgSpeedSecs: 1000, Coverage: 0.5, Consistency: 0.5},
	}
	for _, p := range []Profile{ProfileStandard, ProfileLenient, ProfileMastery} {
		for _, m := range cases {
			got := Evaluate(m, p)
			if got < 0 || got > 1 {
				t.Errorf("Evaluate(%+v, %d) = %f, out of [0,1]", m, p, got)
			}
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	m := Metrics{Accuracy: 0.73, AvgSpeedSecs: 2.1, Coverage: 0.4, Consistency: 0.6}
	first := Evaluate(m, ProfileStandard)
	for i := 0; i < 5; i++ {
		if got := Evaluate(m, ProfileStandard); got != first {
			t.Fatalf("Evaluate not deterministic: %f vs %f", got, first)
		}
	}
}

func TestClampUnit(t *testing.T) {
	if got := clampUnit(-0.1); got != 0 {
		t.Errorf("clampUnit(-0.1) = %f, want 0", got)
	}
	if got := clampUnit(1.1); got != 1 {
		t.Errorf("clampUnit(1.1) = %f, want 1", got)
	}
	if got := clampUnit(0.42); got != 0.42 {
		t.Errorf("clampUnit(0.42) = %f, want 0.42", got)
	}
}
