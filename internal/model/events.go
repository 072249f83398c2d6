package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventSessionCreated EventType = "session_created"
	EventSessionDeleted EventType = "session_deleted"
	EventClockUpdated   EventType = "clock_updated"
	EventRosterUpdated  EventType = "roster_updated"
)

// Event notifies listeners that a session changed.
// Session is a snapshot taken after the change; nil for deletions.
type Event struct {
	Type        EventType
	Timestamp   time.Time
	SessionCode SessionCode
	Session     *Session
}
