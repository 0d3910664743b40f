// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTrackKey holds the string denoting the track_key field in the database.
	FieldTrackKey = "track_key"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldExpectedFingering holds the string denoting the expected_fingering field in the database.
	FieldExpectedFingering = "expected_fingering"
	// FieldAnsweredFingering holds the string denoting the answered_fingering field in the database.
	FieldAnsweredFingering = "answered_fingering"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTrackKey,
	FieldNote,
	FieldExpectedFingering,
	FieldAnsweredFingering,
	FieldCorrect,
	FieldTimeMs,
	FieldMode,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	TrackKeyValidator func(string) error
	// NoteValidator is a validator for the "note" field. It is called by the builders before save.
	NoteValidator func(string) error
	// ExpectedFingeringValidator is a validator for the "expected_fingering" field. It is called by the builders before save.
	ExpectedFingeringValidator func(string) error
	// AnsweredFingeringValidator is a validator for the "answered_fingering" field. It is called by the builders before save.
	AnsweredFingeringValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTrackKey orders the results by the track_key field.
func ByTrackKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackKey, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByExpectedFingering orders the results by the expected_fingering field.
func ByExpectedFingering(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedFingering, opts...).ToFunc()
}

// ByAnsweredFingering orders the results by the answered_fingering field.
func ByAnsweredFingering(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredFingering, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}
