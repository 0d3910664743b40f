package fingering

// Instrument identifies a supported three-valve brass instrument.
type Instrument string

const (
	InstrumentTrumpet    Instrument = "trumpet"
	InstrumentCornet     Instrument = "cornet"
	InstrumentFlugelhorn Instrument = "flugelhorn"
	InstrumentAltoHorn   Instrument = "alto-horn"
	InstrumentFrenchHorn Instrument = "french-horn"
	InstrumentBaritone   Instrument = "baritone"
	InstrumentEuphonium  Instrument = "euphonium"
	InstrumentTuba       Instrument = "tuba"
)

// AllInstruments returns the supported instruments in display order.
func AllInstruments() []Instrument {
	return []Instrument{
		InstrumentTrumpet,
		InstrumentCornet,
		InstrumentFlugelhorn,
		InstrumentAltoHorn,
		InstrumentFrenchHorn,
		InstrumentBaritone,
		InstrumentEuphonium,
		InstrumentTuba,
	}
}

// NativePitch returns the instrument's own transposition key. The track for
// (instrument, its native pitch) is the distinguished default track whose
// competency is shown as the headline score.
func (i Instrument) NativePitch() Pitch {
	switch i {
	case InstrumentAltoHorn:
		return PitchEb
	case InstrumentFrenchHorn:
		return PitchF
	case InstrumentBaritone, InstrumentEuphonium, InstrumentTuba:
		return PitchC
	default:
		// Trumpet, cornet and flugelhorn are B♭ instruments.
		return PitchBb
	}
}

// DisplayName returns the human-readable instrument name.
func (i Instrument) DisplayName() string {
	switch i {
	case InstrumentCornet:
		return "Cornet"
	case InstrumentFlugelhorn:
		return "Flugelhorn"
	case InstrumentAltoHorn:
		return "Alto Horn"
	case InstrumentFrenchHorn:
		return "French Horn"
	case InstrumentBaritone:
		return "Baritone"
	case InstrumentEuphonium:
		return "Euphonium"
	case InstrumentTuba:
		return "Tuba"
	default:
		return "Trumpet"
	}
}
