package play

import (
	"time"

	sess "github.com/abhisek/valvo/internal/session"
)

// sessionReadyMsg is sent when the session has been built and its start
// event persisted.
type sessionReadyMsg struct {
	Session *sess.Session
	Err     error
}

// speedTickMsg drives the per-note countdown in speed mode.
type speedTickMsg time.Time

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{}

// sessionEndMsg triggers the session finish flow.
type sessionEndMsg struct{}

// finishedMsg carries the finished session's summary to the navigation
// step.
type finishedMsg struct {
	Summary *sess.Summary
	Err     error
}
