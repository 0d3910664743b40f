package proficiency

import "testing"

func TestDecay_ZeroDaysIsIdentity(t *testing.T) {
	for _, c := range []float64{0, 0.2, 0.5, 1.0} {
		if got := Decay(c, 0, DecayRateStandard); got != c {
			t.Errorf("Decay(%f, 0) = %f, want identity", c, got)
		}
	}
}

func TestDecay_NegativeDaysIsIdentity(t *testing.T) {
	if got := Decay(0.8, -3, DecayRateStandard); got != 0.8 {
		t.Errorf("Decay(0.8, -3) = %f, want 0.8", got)
	}
}

func TestDecay_MonotonicallyNonIncreasing(t *testing.T) {
	prev := Decay(0.9, 0, DecayRateStandard)
	for days := 1.0; days <= 365; days++ {
		got := Decay(0.9, days, DecayRateStandard)
		if got > prev {
			t.Fatalf("Decay increased at day %f: %f > %f", days, got, prev)
		}
		prev = got
	}
}

func TestDecay_ThirtyDaysStandard(t *testing.T) {
	// 0.8 * e^(-0.02*30) = 0.8 * e^-0.6 ≈ 0.43905
	got := Decay(0.8, 30, DecayRateStandard)
	if !almostEqual(got, 0.43905) {
		t.Errorf("Decay = %f, want 0.43905", got)
	}
}

func TestDecay_LenientIsSlower(t *testing.T) {
	standard := Decay(0.8, 30, DecayRateStandard)
	lenient := Decay(0.8, 30, DecayRateLenient)
	if lenient <= standard {
		t.Errorf("lenient decay %f should retain more than standard %f", lenient, standard)
	}
}

func TestSmooth_SameValueIsIdentity(t *testing.T) {
	for _, alpha := range []float64{AlphaGlobal, AlphaBeginner, AlphaMastery} {
		if got := Smooth(0.6, 0.6, alpha); !almostEqual(got, 0.6) {
			t.Errorf("Smooth(0.6, 0.6, %f) = %f, want 0.6", alpha, got)
		}
	}
}

func TestSmooth_Blend(t *testing.T) {
	// 0.5*(1-0.4) + 1.0*0.4 = 0.7
	got := Smooth(0.5, 1.0, AlphaBeginner)
	if !almostEqual(got, 0.7) {
		t.Errorf("Smooth = %f, want 0.7", got)
	}
}

func TestSmooth_HigherAlphaTracksFaster(t *testing.T) {
	slow := Smooth(0.2, 1.0, AlphaGlobal)
	fast := Smooth(0.2, 1.0, AlphaMastery)
	if fast <= slow {
		t.Errorf("alpha %f should move further than %f: %f vs %f", AlphaMastery, AlphaGlobal, fast, slow)
	}
}

func TestDecayThenSmooth_OrderMatters(t *testing.T) {
	// A 60-day absence must be fully discounted before blending, so the
	// composed result is strictly below smoothing the undecayed prior.
	prior, current := 0.9, 0.5
	composed := DecayThenSmooth(prior, current, 60, DecayRateStandard, AlphaBeginner)
	undedecayed := Smooth(prior, current, AlphaBeginner)
	if composed >= undedecayed {
		t.Errorf("DecayThenSmooth = %f, want < %f", composed, undedecayed)
	}

	// decay(0.9, 60, 0.02) = 0.9*e^-1.2 ≈ 0.271075; blend at 0.4:
	// 0.271075*0.6 + 0.5*0.4 ≈ 0.362645
	if !almostEqual(composed, 0.362645) {
		t.Errorf("DecayThenSmooth = %f, want 0.362645", composed)
	}
}

func TestDecayThenSmooth_NoTimeNoEvidenceIsIdentity(t *testing.T) {
	got := DecayThenSmooth(0.55, 0.55, 0, DecayRateStandard, AlphaMastery)
	if !almostEqual(got, 0.55) {
		t.Errorf("DecayThenSmooth = %f, want 0.55", got)
	}
}
