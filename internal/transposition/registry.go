// Package transposition multiplexes the competency tracker across every
// (instrument pitch, written key) combination. Each combination evolves as
// an independent track — the "separate language" model — so heavy practice
// in one key never inflates the displayed score of a key the player has
// not touched, and decay applies per combination.
package transposition

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
)

// ErrUnknownPitch reports a combination outside the fixed pitch set.
var ErrUnknownPitch = errors.New("transposition: unknown pitch")

// Registry owns the fan-out over the pitch cross product. The tracker
// underneath stays agnostic to transposition and sees only opaque keys;
// this package is the only code aware of the combination space.
type Registry struct {
	tracker  *proficiency.Tracker
	playerID string
}

// NewRegistry creates a registry for one player over a configured tracker.
func NewRegistry(tracker *proficiency.Tracker, playerID string) *Registry {
	return &Registry{tracker: tracker, playerID: playerID}
}

// TrackKey formats the composite key for a combination. Keys are namespaced
// by player so profiles on a shared device stay independent.
func (r *Registry) TrackKey(instrument, written fingering.Pitch) string {
	return fmt.Sprintf("%s/%s/%s", r.playerID, instrument, written)
}

// RecordSession applies a completed session to the combination's track.
func (r *Registry) RecordSession(ctx context.Context, instrument, written fingering.Pitch, in proficiency.SessionInput) (*proficiency.SessionResult, error) {
	if err := r.validate(instrument, written); err != nil {
		return nil, err
	}
	return r.tracker.RecordSession(ctx, r.TrackKey(instrument, written), in)
}

// Current reads the combination's competency without recording practice.
func (r *Registry) Current(ctx context.Context, instrument, written fingering.Pitch) (*proficiency.TrackStatus, error) {
	if err := r.validate(instrument, written); err != nil {
		return nil, err
	}
	return r.tracker.CurrentCompetency(ctx, r.TrackKey(instrument, written))
}

// DefaultTrack returns the competency for the distinguished native
// combination (the instrument's own key), used as the headline score.
func (r *Registry) DefaultTrack(ctx context.Context, instrument fingering.Pitch) (*proficiency.TrackStatus, error) {
	return r.Current(ctx, instrument, instrument)
}

// AllTracks returns a snapshot for every combination in the cross product.
// Diagonal entries where instrument == written are nil: the native
// combination is tracked by the default track and not duplicated here.
func (r *Registry) AllTracks(ctx context.Context) (map[fingering.Pitch]map[fingering.Pitch]*proficiency.TrackStatus, error) {
	out := make(map[fingering.Pitch]map[fingering.Pitch]*proficiency.TrackStatus)
	for _, instrument := range fingering.AllPitches() {
		row := make(map[fingering.Pitch]*proficiency.TrackStatus)
		for _, written := range fingering.AllPitches() {
			if instrument == written {
				row[written] = nil
				continue
			}
			status, err := r.Current(ctx, instrument, written)
			if err != nil {
				return nil, err
			}
			row[written] = status
		}
		out[instrument] = row
	}
	return out, nil
}

func (r *Registry) validate(instrument, written fingering.Pitch) error {
	if !instrument.Valid() {
		return fmt.Errorf("%w: instrument %q", ErrUnknownPitch, instrument)
	}
	if !written.Valid() {
		return fmt.Errorf("%w: written key %q", ErrUnknownPitch, written)
	}
	return nil
}
