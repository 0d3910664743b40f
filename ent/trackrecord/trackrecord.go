// Code generated by ent, DO NOT EDIT.

package trackrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trackrecord type in the database.
	Label = "track_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTrackKey holds the string denoting the track_key field in the database.
	FieldTrackKey = "track_key"
	// FieldCompetency holds the string denoting the competency field in the database.
	FieldCompetency = "competency"
	// FieldLastPractice holds the string denoting the last_practice field in the database.
	FieldLastPractice = "last_practice"
	// FieldSessionHistory holds the string denoting the session_history field in the database.
	FieldSessionHistory = "session_history"
	// FieldNotesCovered holds the string denoting the notes_covered field in the database.
	FieldNotesCovered = "notes_covered"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the trackrecord in the database.
	Table = "track_records"
)

// Columns holds all SQL columns for trackrecord fields.
var Columns = []string{
	FieldID,
	FieldTrackKey,
	FieldCompetency,
	FieldLastPractice,
	FieldSessionHistory,
	FieldNotesCovered,
	FieldCreatedAt,
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
	// TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	TrackKeyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TrackRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTrackKey orders the results by the track_key field.
func ByTrackKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackKey, opts...).ToFunc()
}

// ByCompetency orders the results by the competency field.
func ByCompetency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetency, opts...).ToFunc()
}

// ByLastPractice orders the results by the last_practice field.
func ByLastPractice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPractice, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
