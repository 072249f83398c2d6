package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Clock:
		o.printClock(v)
	case Person:
		o.printPerson(v)
	case PeopleResult:
		o.printPeople(v.People)
	case NamesResult:
		o.printNames(v)
	case AddPersonResult:
		o.printAddPersonResult(v)
	case RecordResult:
		o.printRecordResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Duration response type: seconds plus the MM:SS:hh display string
type Duration struct {
	Seconds float64 `json:"seconds"`
	Display string  `json:"display"`
}

// Clock response type
type Clock struct {
	Elapsed        Duration `json:"elapsed"`
	Running        bool     `json:"running"`
	PenaltySeconds int      `json:"penalty_seconds"`
	Recorded       Duration `json:"recorded"`
	Recordable     bool     `json:"recordable"`
}

// Summary response type; absent statistics are nil
type Summary struct {
	MostRecent       *Duration `json:"most_recent"`
	SecondMostRecent *Duration `json:"second_most_recent"`
	Fastest          *Duration `json:"fastest"`
}

// Person response type
type Person struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Times   []Duration `json:"times"`
	Summary Summary    `json:"summary"`
}

// Session response type
type Session struct {
	Code   string   `json:"code"`
	Clock  Clock    `json:"clock"`
	People []Person `json:"people"`
	Names  []string `json:"names"`
}

// PeopleResult response type
type PeopleResult struct {
	People []Person `json:"people"`
}

// NamesResult response type
type NamesResult struct {
	Names []string `json:"names"`
}

// AddPersonResult response type
type AddPersonResult struct {
	PersonID string  `json:"person_id"`
	Session  Session `json:"session"`
}

// RecordResult response type
type RecordResult struct {
	Recorded bool    `json:"recorded"`
	Session  Session `json:"session"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.Code)
	o.printClock(s.Clock)
	if len(s.People) > 0 {
		fmt.Println()
		o.printPeople(s.People)
	}
}

func (o *Output) printClock(c Clock) {
	state := "paused"
	if c.Running {
		state = "running"
	}
	fmt.Printf("Clock: %s (%s)\n", c.Elapsed.Display, state)
	if c.PenaltySeconds > 0 {
		fmt.Printf("Penalty: +%ds (records %s)\n", c.PenaltySeconds, c.Recorded.Display)
	}
}

func (o *Output) printPerson(p Person) {
	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	times := make([]string, len(p.Times))
	for i, t := range p.Times {
		times[i] = t.Display
	}
	fmt.Printf("  Times: %s\n", strings.Join(times, ", "))
	fmt.Printf("  Most recent: %s\n", displayOrDash(p.Summary.MostRecent))
	fmt.Printf("  Second most recent: %s\n", displayOrDash(p.Summary.SecondMostRecent))
	fmt.Printf("  Fastest: %s\n", displayOrDash(p.Summary.Fastest))
}

func (o *Output) printPeople(people []Person) {
	if len(people) == 0 {
		fmt.Println("No people recorded")
		return
	}
	fmt.Printf("People (%d):\n", len(people))
	for _, p := range people {
		fmt.Printf("  - %s (%s): last %s, previous %s, fastest %s\n",
			p.Name, p.ID,
			displayOrDash(p.Summary.MostRecent),
			displayOrDash(p.Summary.SecondMostRecent),
			displayOrDash(p.Summary.Fastest))
	}
}

func (o *Output) printNames(n NamesResult) {
	for _, name := range n.Names {
		fmt.Println(name)
	}
}

func (o *Output) printAddPersonResult(a AddPersonResult) {
	fmt.Printf("Added person %s\n", a.PersonID)
	o.printSession(a.Session)
}

func (o *Output) printRecordResult(r RecordResult) {
	if r.Recorded {
		fmt.Println("Time recorded")
	} else {
		fmt.Println("No person with that name; clock left unchanged")
	}
	o.printClock(r.Session.Clock)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func displayOrDash(d *Duration) string {
	if d == nil {
		return "-"
	}
	return d.Display
}
