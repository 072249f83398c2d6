package stopwatch

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput is returned when a person is added without a name
var ErrInvalidInput = errors.New("invalid input")

// IDFunc generates a fresh person identity
type IDFunc func() PersonID

// NewUUID returns a random UUID-based person identity
func NewUUID() PersonID {
	return PersonID(uuid.NewString())
}

// Roster is the ordered collection of tracked people.
// Insertion order is preserved for display. Roster does no locking.
type Roster struct {
	people []Person
	newID  IDFunc
}

// NewRoster creates an empty roster. A nil newID uses NewUUID.
func NewRoster(newID IDFunc) *Roster {
	if newID == nil {
		newID = NewUUID
	}
	return &Roster{newID: newID}
}

// AddPerson appends a new person with a single initial time and returns
// their identity
func (r *Roster) AddPerson(name string, initial time.Duration) (PersonID, error) {
	if name == "" {
		return "", ErrInvalidInput
	}

	id := r.newID()
	r.people = append(r.people, Person{
		ID:    id,
		Name:  name,
		Times: []time.Duration{initial},
	})
	return id, nil
}

// RecordTime appends value to the first person named name.
// An unknown name is a silent no-op; the result reports whether a person
// was found.
func (r *Roster) RecordTime(name string, value time.Duration) bool {
	for i := range r.people {
		if r.people[i].Name == name {
			r.people[i].Times = append(r.people[i].Times, value)
			return true
		}
	}
	return false
}

// RemovePerson deletes the person with the given id, if present
func (r *Roster) RemovePerson(id PersonID) bool {
	for i := range r.people {
		if r.people[i].ID == id {
			r.people = slices.Delete(r.people, i, i+1)
			return true
		}
	}
	return false
}

// DistinctNames returns the sorted set of names in the roster
func (r *Roster) DistinctNames() []string {
	names := make([]string, 0, len(r.people))
	for _, p := range r.people {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Get returns a copy of the person with the given id
func (r *Roster) Get(id PersonID) (Person, bool) {
	for _, p := range r.people {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Person{}, false
}

// People returns copies of all people in insertion order
func (r *Roster) People() []Person {
	people := make([]Person, len(r.people))
	for i, p := range r.people {
		people[i] = p.Clone()
	}
	return people
}

// Len returns the number of people
func (r *Roster) Len() int {
	return len(r.people)
}

// Clone returns an independent copy of the roster
func (r *Roster) Clone() *Roster {
	return &Roster{
		people: r.People(),
		newID:  r.newID,
	}
}
