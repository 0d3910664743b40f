// Code generated by ent, DO NOT EDIT.

package proficiencyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proficiencyevent type in the database.
	Label = "proficiency_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTrackKey holds the string denoting the track_key field in the database.
	FieldTrackKey = "track_key"
	// FieldRawPerformance holds the string denoting the raw_performance field in the database.
	FieldRawPerformance = "raw_performance"
	// FieldWeightedPerformance holds the string denoting the weighted_performance field in the database.
	FieldWeightedPerformance = "weighted_performance"
	// FieldCompetencyBefore holds the string denoting the competency_before field in the database.
	FieldCompetencyBefore = "competency_before"
	// FieldCompetencyAfter holds the string denoting the competency_after field in the database.
	FieldCompetencyAfter = "competency_after"
	// FieldBand holds the string denoting the band field in the database.
	FieldBand = "band"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the proficiencyevent in the database.
	Table = "proficiency_events"
)

// Columns holds all SQL columns for proficiencyevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTrackKey,
	FieldRawPerformance,
	FieldWeightedPerformance,
	FieldCompetencyBefore,
	FieldCompetencyAfter,
	FieldBand,
	FieldSessionID,
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
	// TrackKeyValidator is a validator for the "track_key" field. It is called by the builders before save.
	TrackKeyValidator func(string) error
	// BandValidator is a validator for the "band" field. It is called by the builders before save.
	BandValidator func(string) error
)

// OrderOption defines the ordering options for the ProficiencyEvent queries.
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

// ByTrackKey orders the results by the track_key field.
func ByTrackKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackKey, opts...).ToFunc()
}

// ByRawPerformance orders the results by the raw_performance field.
func ByRawPerformance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawPerformance, opts...).ToFunc()
}

// ByWeightedPerformance orders the results by the weighted_performance field.
func ByWeightedPerformance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightedPerformance, opts...).ToFunc()
}

// ByCompetencyBefore orders the results by the competency_before field.
func ByCompetencyBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetencyBefore, opts...).ToFunc()
}

// ByCompetencyAfter orders the results by the competency_after field.
func ByCompetencyAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetencyAfter, opts...).ToFunc()
}

// ByBand orders the results by the band field.
func ByBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBand, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
