package stopwatch

import "time"

// PersonID identifies a person independently of their name
type PersonID string

// Person is someone whose recorded times are tracked
type Person struct {
	ID    PersonID
	Name  string
	Times []time.Duration // insertion order, most recent last
}

// Summary holds per-person statistics.
// A nil field means the statistic is undefined for the recorded times.
type Summary struct {
	MostRecent       *time.Duration
	SecondMostRecent *time.Duration
	Fastest          *time.Duration
}

// Summary returns the statistics for this person's times
func (p Person) Summary() Summary {
	return SummaryFor(p)
}

// Clone returns a copy that shares no memory with p
func (p Person) Clone() Person {
	times := make([]time.Duration, len(p.Times))
	copy(times, p.Times)
	p.Times = times
	return p
}

// SummaryFor computes the summary of a person's recorded times
func SummaryFor(p Person) Summary {
	return Summarize(p.Times)
}

// Summarize computes most recent, second most recent and fastest of times
func Summarize(times []time.Duration) Summary {
	var s Summary
	n := len(times)
	if n == 0 {
		return s
	}

	last := times[n-1]
	s.MostRecent = &last

	if n >= 2 {
		second := times[n-2]
		s.SecondMostRecent = &second
	}

	fastest := times[0]
	for _, t := range times[1:] {
		if t < fastest {
			fastest = t
		}
	}
	s.Fastest = &fastest

	return s
}
