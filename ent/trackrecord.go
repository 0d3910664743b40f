// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/valvo/ent/schema"
	"github.com/abhisek/valvo/ent/trackrecord"
)

// TrackRecord is the model entity for the TrackRecord schema.
type TrackRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Composite (player, instrument pitch, written key) identifier
	TrackKey string `json:"track_key,omitempty"`
	// Normalized proficiency in [0,1]
	Competency float64 `json:"competency,omitempty"`
	// Instant of the most recent recorded session
	LastPractice time.Time `json:"last_practice,omitempty"`
	// Most recent sessions, capped at 30, oldest first
	SessionHistory []schema.SessionRecordData `json:"session_history,omitempty"`
	// Distinct written notes ever practiced on this track
	NotesCovered []string `json:"notes_covered,omitempty"`
	// Instant of first record creation
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrackRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trackrecord.FieldSessionHistory, trackrecord.FieldNotesCovered:
			values[i] = new([]byte)
		case trackrecord.FieldCompetency:
			values[i] = new(sql.NullFloat64)
		case trackrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case trackrecord.FieldTrackKey:
			values[i] = new(sql.NullString)
		case trackrecord.FieldLastPractice, trackrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrackRecord fields.
func (_m *TrackRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trackrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trackrecord.FieldTrackKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track_key", values[i])
			} else if value.Valid {
				_m.TrackKey = value.String
			}
		case trackrecord.FieldCompetency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field competency", values[i])
			} else if value.Valid {
				_m.Competency = value.Float64
			}
		case trackrecord.FieldLastPractice:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practice", values[i])
			} else if value.Valid {
				_m.LastPractice = value.Time
			}
		case trackrecord.FieldSessionHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionHistory); err != nil {
					return fmt.Errorf("unmarshal field session_history: %w", err)
				}
			}
		case trackrecord.FieldNotesCovered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notes_covered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NotesCovered); err != nil {
					return fmt.Errorf("unmarshal field notes_covered: %w", err)
				}
			}
		case trackrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrackRecord.
// This includes values selected through modifiers, order, etc.
func (_m *TrackRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrackRecord.
// Note that you need to call TrackRecord.Unwrap() before calling this method if this TrackRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrackRecord) Update() *TrackRecordUpdateOne {
	return NewTrackRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrackRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrackRecord) Unwrap() *TrackRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrackRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrackRecord) String() string {
	var builder strings.Builder
	builder.WriteString("TrackRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("track_key=")
	builder.WriteString(_m.TrackKey)
	builder.WriteString(", ")
	builder.WriteString("competency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Competency))
	builder.WriteString(", ")
	builder.WriteString("last_practice=")
	builder.WriteString(_m.LastPractice.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionHistory))
	builder.WriteString(", ")
	builder.WriteString("notes_covered=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotesCovered))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrackRecords is a parsable slice of TrackRecord.
type TrackRecords []*TrackRecord
