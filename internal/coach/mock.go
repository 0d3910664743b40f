package coach

import "context"

// MockProvider returns a fixed tip or error, for tests and offline use.
type MockProvider struct {
	Tip *Tip
	Err error
	// Calls counts Generate invocations.
	Calls int
	// LastInput records the most recent input.
	LastInput TipInput
}

func (m *MockProvider) Generate(_ context.Context, input TipInput) (*Tip, error) {
	m.Calls++
	m.LastInput = input
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tip, nil
}
