package response

import (
	"time"

	"github.com/mcoot/stopwatch/internal/model"
	"github.com/mcoot/stopwatch/internal/stopwatch"
)

// Duration is a time value as seconds plus its MM:SS:hh display form
type Duration struct {
	Seconds float64 `json:"seconds"`
	Display string  `json:"display"`
}

// DurationFrom converts a time.Duration
func DurationFrom(d time.Duration) Duration {
	return Duration{
		Seconds: d.Seconds(),
		Display: stopwatch.FormatDuration(d),
	}
}

func durationPtr(d *time.Duration) *Duration {
	if d == nil {
		return nil
	}
	v := DurationFrom(*d)
	return &v
}

// Clock represents the stopwatch clock
type Clock struct {
	Elapsed        Duration `json:"elapsed"`
	Running        bool     `json:"running"`
	PenaltySeconds int      `json:"penalty_seconds"`
	Recorded       Duration `json:"recorded"`
	Recordable     bool     `json:"recordable"`
}

// ClockFromModel converts a stopwatch.Clock
func ClockFromModel(c *stopwatch.Clock) Clock {
	return Clock{
		Elapsed:        DurationFrom(c.Elapsed()),
		Running:        c.Running(),
		PenaltySeconds: c.Penalty(),
		Recorded:       DurationFrom(c.RecordedValue()),
		Recordable:     c.Recordable(),
	}
}

// Summary holds a person's statistics; absent values are null
type Summary struct {
	MostRecent       *Duration `json:"most_recent"`
	SecondMostRecent *Duration `json:"second_most_recent"`
	Fastest          *Duration `json:"fastest"`
}

// SummaryFromModel converts a stopwatch.Summary
func SummaryFromModel(s stopwatch.Summary) Summary {
	return Summary{
		MostRecent:       durationPtr(s.MostRecent),
		SecondMostRecent: durationPtr(s.SecondMostRecent),
		Fastest:          durationPtr(s.Fastest),
	}
}

// Person represents a tracked person with their times
type Person struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Times   []Duration `json:"times"`
	Summary Summary    `json:"summary"`
}

// PersonFromModel converts a stopwatch.Person
func PersonFromModel(p stopwatch.Person) Person {
	times := make([]Duration, len(p.Times))
	for i, t := range p.Times {
		times[i] = DurationFrom(t)
	}
	return Person{
		ID:      string(p.ID),
		Name:    p.Name,
		Times:   times,
		Summary: SummaryFromModel(p.Summary()),
	}
}

// PeopleFromModel converts a roster to its people in insertion order
func PeopleFromModel(r *stopwatch.Roster) []Person {
	people := r.People()
	resp := make([]Person, len(people))
	for i, p := range people {
		resp[i] = PersonFromModel(p)
	}
	return resp
}

// Session represents a stopwatch session in API responses
type Session struct {
	Code      string    `json:"code"`
	Clock     Clock     `json:"clock"`
	People    []Person  `json:"people"`
	Names     []string  `json:"names"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		Code:      string(s.Code),
		Clock:     ClockFromModel(s.Clock),
		People:    PeopleFromModel(s.Roster),
		Names:     s.Roster.DistinctNames(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// AddPersonResponse is the response after adding a person
type AddPersonResponse struct {
	PersonID string  `json:"person_id"`
	Session  Session `json:"session"`
}

// RecordResponse is the response after recording a time
type RecordResponse struct {
	Recorded bool    `json:"recorded"`
	Session  Session `json:"session"`
}

// NamesResponse lists the names a time can be recorded against
type NamesResponse struct {
	Names []string `json:"names"`
}

// PeopleResponse lists the people of a session
type PeopleResponse struct {
	People []Person `json:"people"`
}

// SessionDeleted is the event payload sent when a session is deleted
type SessionDeleted struct {
	Code string `json:"code"`
}
