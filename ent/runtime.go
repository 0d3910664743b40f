// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/valvo/ent/answerevent"
	"github.com/abhisek/valvo/ent/proficiencyevent"
	"github.com/abhisek/valvo/ent/schema"
	"github.com/abhisek/valvo/ent/sessionevent"
	"github.com/abhisek/valvo/ent/snapshot"
	"github.com/abhisek/valvo/ent/trackrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescTrackKey is the schema descriptor for track_key field.
	answereventDescTrackKey := answereventFields[1].Descriptor()
	// answerevent.TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	answerevent.TrackKeyValidator = answereventDescTrackKey.Validators[0].(func(string) error)
	// answereventDescNote is the schema descriptor for note field.
	answereventDescNote := answereventFields[2].Descriptor()
	// answerevent.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	answerevent.NoteValidator = answereventDescNote.Validators[0].(func(string) error)
	// answereventDescExpectedFingering is the schema descriptor for expected_fingering field.
	answereventDescExpectedFingering := answereventFields[3].Descriptor()
	// answerevent.ExpectedFingeringValidator is a validator for the "expected_fingering" field. It is called by the builders before save.
	answerevent.ExpectedFingeringValidator = answereventDescExpectedFingering.Validators[0].(func(string) error)
	// answereventDescAnsweredFingering is the schema descriptor for answered_fingering field.
	answereventDescAnsweredFingering := answereventFields[4].Descriptor()
	// answerevent.AnsweredFingeringValidator is a validator for the "answered_fingering" field. It is called by the builders before save.
	answerevent.AnsweredFingeringValidator = answereventDescAnsweredFingering.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[7].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	proficiencyeventMixin := schema.ProficiencyEvent{}.Mixin()
	proficiencyeventMixinFields0 := proficiencyeventMixin[0].Fields()
	_ = proficiencyeventMixinFields0
	proficiencyeventFields := schema.ProficiencyEvent{}.Fields()
	_ = proficiencyeventFields
	// proficiencyeventDescTimestamp is the schema descriptor for timestamp field.
	proficiencyeventDescTimestamp := proficiencyeventMixinFields0[1].Descriptor()
	// proficiencyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	proficiencyevent.DefaultTimestamp = proficiencyeventDescTimestamp.Default.(func() time.Time)
	// proficiencyeventDescTrackKey is the schema descriptor for track_key field.
	proficiencyeventDescTrackKey := proficiencyeventFields[0].Descriptor()
	// proficiencyevent.TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	proficiencyevent.TrackKeyValidator = proficiencyeventDescTrackKey.Validators[0].(func(string) error)
	// proficiencyeventDescBand is the schema descriptor for band field.
	proficiencyeventDescBand := proficiencyeventFields[5].Descriptor()
	// proficiencyevent.BandValidator is a validator for the "band" field. It is called by the builders before save.
	proficiencyevent.BandValidator = proficiencyeventDescBand.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTrackKey is the schema descriptor for track_key field.
	sessioneventDescTrackKey := sessioneventFields[2].Descriptor()
	// sessionevent.TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	sessionevent.TrackKeyValidator = sessioneventDescTrackKey.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescTier is the schema descriptor for tier field.
	sessioneventDescTier := sessioneventFields[4].Descriptor()
	// sessionevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	sessionevent.TierValidator = sessioneventDescTier.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	trackrecordFields := schema.TrackRecord{}.Fields()
	_ = trackrecordFields
	// trackrecordDescTrackKey is the schema descriptor for track_key field.
	trackrecordDescTrackKey := trackrecordFields[0].Descriptor()
	// trackrecord.TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	trackrecord.TrackKeyValidator = trackrecordDescTrackKey.Validators[0].(func(string) error)
	// trackrecordDescCreatedAt is the schema descriptor for created_at field.
	trackrecordDescCreatedAt := trackrecordFields[5].Descriptor()
	// trackrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	trackrecord.DefaultCreatedAt = trackrecordDescCreatedAt.Default.(func() time.Time)
}
