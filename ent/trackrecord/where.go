// Code generated by ent, DO NOT EDIT.

package trackrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/valvo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLTE(FieldID, id))
}

// TrackKey applies equality check predicate on the "track_key" field. It's identical to TrackKeyEQ.
func TrackKey(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldTrackKey, v))
}

// Competency applies equality check predicate on the "competency" field. It's identical to CompetencyEQ.
func Competency(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldCompetency, v))
}

// LastPractice applies equality check predicate on the "last_practice" field. It's identical to LastPracticeEQ.
func LastPractice(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldLastPractice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// TrackKeyEQ applies the EQ predicate on the "track_key" field.
func TrackKeyEQ(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldTrackKey, v))
}

// TrackKeyNEQ applies the NEQ predicate on the "track_key" field.
func TrackKeyNEQ(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNEQ(FieldTrackKey, v))
}

// TrackKeyIn applies the In predicate on the "track_key" field.
func TrackKeyIn(vs ...string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIn(FieldTrackKey, vs...))
}

// TrackKeyNotIn applies the NotIn predicate on the "track_key" field.
func TrackKeyNotIn(vs ...string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotIn(FieldTrackKey, vs...))
}

// TrackKeyGT applies the GT predicate on the "track_key" field.
func TrackKeyGT(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGT(FieldTrackKey, v))
}

// TrackKeyGTE applies the GTE predicate on the "track_key" field.
func TrackKeyGTE(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGTE(FieldTrackKey, v))
}

// TrackKeyLT applies the LT predicate on the "track_key" field.
func TrackKeyLT(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLT(FieldTrackKey, v))
}

// TrackKeyLTE applies the LTE predicate on the "track_key" field.
func TrackKeyLTE(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLTE(FieldTrackKey, v))
}

// TrackKeyContains applies the Contains predicate on the "track_key" field.
func TrackKeyContains(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldContains(FieldTrackKey, v))
}

// TrackKeyHasPrefix applies the HasPrefix predicate on the "track_key" field.
func TrackKeyHasPrefix(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldHasPrefix(FieldTrackKey, v))
}

// TrackKeyHasSuffix applies the HasSuffix predicate on the "track_key" field.
func TrackKeyHasSuffix(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldHasSuffix(FieldTrackKey, v))
}

// TrackKeyEqualFold applies the EqualFold predicate on the "track_key" field.
func TrackKeyEqualFold(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEqualFold(FieldTrackKey, v))
}

// TrackKeyContainsFold applies the ContainsFold predicate on the "track_key" field.
func TrackKeyContainsFold(v string) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldContainsFold(FieldTrackKey, v))
}

// CompetencyEQ applies the EQ predicate on the "competency" field.
func CompetencyEQ(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldCompetency, v))
}

// CompetencyNEQ applies the NEQ predicate on the "competency" field.
func CompetencyNEQ(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNEQ(FieldCompetency, v))
}

// CompetencyIn applies the In predicate on the "competency" field.
func CompetencyIn(vs ...float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIn(FieldCompetency, vs...))
}

// CompetencyNotIn applies the NotIn predicate on the "competency" field.
func CompetencyNotIn(vs ...float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotIn(FieldCompetency, vs...))
}

// CompetencyGT applies the GT predicate on the "competency" field.
func CompetencyGT(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGT(FieldCompetency, v))
}

// CompetencyGTE applies the GTE predicate on the "competency" field.
func CompetencyGTE(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGTE(FieldCompetency, v))
}

// CompetencyLT applies the LT predicate on the "competency" field.
func CompetencyLT(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLT(FieldCompetency, v))
}

// CompetencyLTE applies the LTE predicate on the "competency" field.
func CompetencyLTE(v float64) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLTE(FieldCompetency, v))
}

// LastPracticeEQ applies the EQ predicate on the "last_practice" field.
func LastPracticeEQ(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldLastPractice, v))
}

// LastPracticeNEQ applies the NEQ predicate on the "last_practice" field.
func LastPracticeNEQ(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNEQ(FieldLastPractice, v))
}

// LastPracticeIn applies the In predicate on the "last_practice" field.
func LastPracticeIn(vs ...time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIn(FieldLastPractice, vs...))
}

// LastPracticeNotIn applies the NotIn predicate on the "last_practice" field.
func LastPracticeNotIn(vs ...time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotIn(FieldLastPractice, vs...))
}

// LastPracticeGT applies the GT predicate on the "last_practice" field.
func LastPracticeGT(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGT(FieldLastPractice, v))
}

// LastPracticeGTE applies the GTE predicate on the "last_practice" field.
func LastPracticeGTE(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGTE(FieldLastPractice, v))
}

// LastPracticeLT applies the LT predicate on the "last_practice" field.
func LastPracticeLT(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLT(FieldLastPractice, v))
}

// LastPracticeLTE applies the LTE predicate on the "last_practice" field.
func LastPracticeLTE(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLTE(FieldLastPractice, v))
}

// SessionHistoryIsNil applies the IsNil predicate on the "session_history" field.
func SessionHistoryIsNil() predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIsNull(FieldSessionHistory))
}

// SessionHistoryNotNil applies the NotNil predicate on the "session_history" field.
func SessionHistoryNotNil() predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotNull(FieldSessionHistory))
}

// NotesCoveredIsNil applies the IsNil predicate on the "notes_covered" field.
func NotesCoveredIsNil() predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIsNull(FieldNotesCovered))
}

// NotesCoveredNotNil applies the NotNil predicate on the "notes_covered" field.
func NotesCoveredNotNil() predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotNull(FieldNotesCovered))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrackRecord {
	return predicate.TrackRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrackRecord) predicate.TrackRecord {
	return predicate.TrackRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrackRecord) predicate.TrackRecord {
	return predicate.TrackRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrackRecord) predicate.TrackRecord {
	return predicate.TrackRecord(sql.NotPredicates(p))
}
