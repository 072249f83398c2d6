package model

import (
	"time"

	"github.com/mcoot/stopwatch/internal/stopwatch"
)

// MaxPenalty is the largest selectable penalty, in seconds
const MaxPenalty = 30

// SessionCode is a human-readable identifier for a stopwatch session
type SessionCode string

// Session owns one stopwatch clock and the roster of people timed with it
type Session struct {
	Code      SessionCode
	Clock     *stopwatch.Clock
	Roster    *stopwatch.Roster
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the session, safe to read without locking
func (s *Session) Clone() *Session {
	cp := *s
	cp.Clock = s.Clock.Clone()
	cp.Roster = s.Roster.Clone()
	return &cp
}
