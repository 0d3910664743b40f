// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "track_key", Type: field.TypeString},
		{Name: "note", Type: field.TypeString},
		{Name: "expected_fingering", Type: field.TypeString},
		{Name: "answered_fingering", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "mode", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_track_key",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// ProficiencyEventsColumns holds the columns for the "proficiency_events" table.
	ProficiencyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "track_key", Type: field.TypeString},
		{Name: "raw_performance", Type: field.TypeFloat64},
		{Name: "weighted_performance", Type: field.TypeFloat64},
		{Name: "competency_before", Type: field.TypeFloat64},
		{Name: "competency_after", Type: field.TypeFloat64},
		{Name: "band", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ProficiencyEventsTable holds the schema information for the "proficiency_events" table.
	ProficiencyEventsTable = &schema.Table{
		Name:       "proficiency_events",
		Columns:    ProficiencyEventsColumns,
		PrimaryKey: []*schema.Column{ProficiencyEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proficiencyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyEventsColumns[1]},
			},
			{
				Name:    "proficiencyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyEventsColumns[2]},
			},
			{
				Name:    "proficiencyevent_track_key",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "track_key", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_track_key",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TrackRecordsColumns holds the columns for the "track_records" table.
	TrackRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "track_key", Type: field.TypeString, Unique: true},
		{Name: "competency", Type: field.TypeFloat64},
		{Name: "last_practice", Type: field.TypeTime},
		{Name: "session_history", Type: field.TypeJSON, Nullable: true},
		{Name: "notes_covered", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrackRecordsTable holds the schema information for the "track_records" table.
	TrackRecordsTable = &schema.Table{
		Name:       "track_records",
		Columns:    TrackRecordsColumns,
		PrimaryKey: []*schema.Column{TrackRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trackrecord_track_key",
				Unique:  false,
				Columns: []*schema.Column{TrackRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ProficiencyEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		TrackRecordsTable,
	}
)

func init() {
}
