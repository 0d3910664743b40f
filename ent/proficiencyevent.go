// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/valvo/ent/proficiencyevent"
)

// ProficiencyEvent is the model entity for the ProficiencyEvent schema.
type ProficiencyEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// TrackKey holds the value of the "track_key" field.
	TrackKey string `json:"track_key,omitempty"`
	// RawPerformance holds the value of the "raw_performance" field.
	RawPerformance float64 `json:"raw_performance,omitempty"`
	// WeightedPerformance holds the value of the "weighted_performance" field.
	WeightedPerformance float64 `json:"weighted_performance,omitempty"`
	// CompetencyBefore holds the value of the "competency_before" field.
	CompetencyBefore float64 `json:"competency_before,omitempty"`
	// CompetencyAfter holds the value of the "competency_after" field.
	CompetencyAfter float64 `json:"competency_after,omitempty"`
	// Band holds the value of the "band" field.
	Band string `json:"band,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProficiencyEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proficiencyevent.FieldRawPerformance, proficiencyevent.FieldWeightedPerformance, proficiencyevent.FieldCompetencyBefore, proficiencyevent.FieldCompetencyAfter:
			values[i] = new(sql.NullFloat64)
		case proficiencyevent.FieldID, proficiencyevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case proficiencyevent.FieldTrackKey, proficiencyevent.FieldBand, proficiencyevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case proficiencyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProficiencyEvent fields.
func (_m *ProficiencyEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proficiencyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case proficiencyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case proficiencyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case proficiencyevent.FieldTrackKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track_key", values[i])
			} else if value.Valid {
				_m.TrackKey = value.String
			}
		case proficiencyevent.FieldRawPerformance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_performance", values[i])
			} else if value.Valid {
				_m.RawPerformance = value.Float64
			}
		case proficiencyevent.FieldWeightedPerformance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weighted_performance", values[i])
			} else if value.Valid {
				_m.WeightedPerformance = value.Float64
			}
		case proficiencyevent.FieldCompetencyBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field competency_before", values[i])
			} else if value.Valid {
				_m.CompetencyBefore = value.Float64
			}
		case proficiencyevent.FieldCompetencyAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field competency_after", values[i])
			} else if value.Valid {
				_m.CompetencyAfter = value.Float64
			}
		case proficiencyevent.FieldBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band", values[i])
			} else if value.Valid {
				_m.Band = value.String
			}
		case proficiencyevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProficiencyEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProficiencyEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProficiencyEvent.
// Note that you need to call ProficiencyEvent.Unwrap() before calling this method if this ProficiencyEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProficiencyEvent) Update() *ProficiencyEventUpdateOne {
	return NewProficiencyEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProficiencyEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProficiencyEvent) Unwrap() *ProficiencyEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProficiencyEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProficiencyEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProficiencyEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("track_key=")
	builder.WriteString(_m.TrackKey)
	builder.WriteString(", ")
	builder.WriteString("raw_performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPerformance))
	builder.WriteString(", ")
	builder.WriteString("weighted_performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightedPerformance))
	builder.WriteString(", ")
	builder.WriteString("competency_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetencyBefore))
	builder.WriteString(", ")
	builder.WriteString("competency_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetencyAfter))
	builder.WriteString(", ")
	builder.WriteString("band=")
	builder.WriteString(_m.Band)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// ProficiencyEvents is a parsable slice of ProficiencyEvent.
type ProficiencyEvents []*ProficiencyEvent
