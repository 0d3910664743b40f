package coach

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func waitForTip(t *testing.T, s *Service) (*Tip, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if tip, ok := s.ConsumeTip(); ok {
			return tip, true
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("tip never became ready")
	return nil, false
}

func TestServiceDeliversTip(t *testing.T) {
	mock := &MockProvider{Tip: &Tip{
		Headline: "Smooth out the low register",
		Advice:   "Slow down on the valve changes below the staff.",
		Drill:    "Play F3 to Bb3 four times, slurred.",
	}}
	s := NewService(mock)

	s.RequestTip(context.Background(), TipInput{
		Instrument:   "trumpet",
		WrittenKey:   "C",
		Mode:         "learning",
		Accuracy:     0.7,
		HardestNotes: []string{"F#4"},
	})

	tip, ok := waitForTip(t, s)
	if !ok || tip == nil {
		t.Fatal("expected a tip")
	}
	if tip.Headline != "Smooth out the low register" {
		t.Errorf("headline = %q", tip.Headline)
	}
	if mock.LastInput.Instrument != "trumpet" {
		t.Errorf("provider saw instrument %q", mock.LastInput.Instrument)
	}
}

func TestConsumeBeforeReady(t *testing.T) {
	s := NewService(&MockProvider{Tip: &Tip{Headline: "x"}})
	if tip, ok := s.ConsumeTip(); ok || tip != nil {
		t.Fatal("consume before any request must report not ready")
	}
}

func TestFailedGenerationConsumesAsNoTip(t *testing.T) {
	s := NewService(&MockProvider{Err: errors.New("network down")})
	s.RequestTip(context.Background(), TipInput{})

	tip, ok := waitForTip(t, s)
	if !ok {
		t.Fatal("failed generation should still become ready")
	}
	if tip != nil {
		t.Errorf("tip = %+v, want nil on failure", tip)
	}

	// The slot is cleared after consumption.
	if _, ok := s.ConsumeTip(); ok {
		t.Error("slot not cleared after consumption")
	}
}

func TestConsumeClearsSlot(t *testing.T) {
	s := NewService(&MockProvider{Tip: &Tip{Headline: "once"}})
	s.RequestTip(context.Background(), TipInput{})

	if _, ok := waitForTip(t, s); !ok {
		t.Fatal("expected tip")
	}
	if _, ok := s.ConsumeTip(); ok {
		t.Error("second consume returned ready")
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(TipInput{
		Instrument:   "euphonium",
		WrittenKey:   "Bb",
		Mode:         "speed",
		Tier:         "advanced",
		Accuracy:     0.85,
		AvgSpeedSecs: 1.2,
		BandName:     "Functional",
		HardestNotes: []string{"C#5", "E4"},
	})

	for _, want := range []string{"euphonium", "Bb", "speed", "85%", "1.2s", "Functional", "C#5, E4"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
