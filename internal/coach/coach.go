// Package coach generates an optional post-session practice tip from the
// session's results. Generation is asynchronous so the summary screen never
// blocks on the network; the tip appears when it is ready or not at all.
package coach

import (
	"context"
	"sync"
)

// TipInput is the session telemetry the coach reasons over.
type TipInput struct {
	Instrument   string
	WrittenKey   string
	Mode         string
	Tier         string
	Accuracy     float64
	AvgSpeedSecs float64
	BandName     string
	// HardestNotes are the most-missed prompts on this track, most-missed
	// first.
	HardestNotes []string
}

// Tip is one practice suggestion for the next session.
type Tip struct {
	Headline string
	Advice   string
	// Drill is a concrete exercise, e.g. "slur F4 to A4 holding valve 1".
	Drill string
}

// Provider generates a tip from session telemetry.
type Provider interface {
	Generate(ctx context.Context, input TipInput) (*Tip, error)
}

// Service generates tips asynchronously. Only one tip is in-flight at a
// time; new requests replace pending ones.
type Service struct {
	provider Provider

	mu      sync.Mutex
	pending *Tip
	err     error
	ready   bool
}

// NewService creates a tip generation service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// RequestTip starts async tip generation.
func (s *Service) RequestTip(ctx context.Context, input TipInput) {
	go func() {
		tip, err := s.provider.Generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = tip
		s.err = err
		s.ready = true
	}()
}

// ConsumeTip returns the pending tip if one is ready. Returns (nil, false)
// if generation is still running. After consumption the pending slot is
// cleared; a failed generation consumes as (nil, true) with no tip shown.
func (s *Service) ConsumeTip() (*Tip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	tip := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return tip, true
}
