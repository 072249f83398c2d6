package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/stopwatch/internal/dependencies/clock"
	"github.com/mcoot/stopwatch/internal/dependencies/random"
	"github.com/mcoot/stopwatch/internal/model"
	"github.com/mcoot/stopwatch/internal/stopwatch"
	"github.com/mcoot/stopwatch/internal/storage"
)

const (
	// CodeLength is the length of generated session codes
	CodeLength = 6
	// CodeAlphabet is the characters used in session codes (avoid confusing chars)
	CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Notifier receives an event after every change to a session
type Notifier interface {
	Notify(ctx context.Context, event model.Event)
}

// Controller owns all stopwatch sessions.
// Every read and write of session state goes through mu, so clock ticks and
// user commands are applied strictly one at a time.
// Methods return snapshots that are safe to use after the call returns.
type Controller struct {
	mu       sync.Mutex
	storage  storage.Storage
	clock    clock.Clock
	random   random.Random
	notifier Notifier
	logger   *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "session")),
	}
}

// SetNotifier registers the receiver of session events
func (c *Controller) SetNotifier(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifier = n
}

// CreateSession starts a new session with a stopped clock and empty roster
func (c *Controller) CreateSession(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()

	var code model.SessionCode
	for {
		code = model.SessionCode(c.random.String(CodeLength, CodeAlphabet))
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			c.mu.Unlock()
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	sess := &model.Session{
		Code:      code,
		Clock:     stopwatch.NewClock(),
		Roster:    stopwatch.NewRoster(c.newPersonID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		c.mu.Unlock()
		c.logger.Error("failed to save session",
			slog.String("session", string(code)),
			slog.String("error", err.Error()))
		return nil, err
	}
	snapshot := sess.Clone()
	c.mu.Unlock()

	c.logger.Info("session created", slog.String("session", string(code)))
	c.notify(ctx, model.EventSessionCreated, code, snapshot)
	return snapshot, nil
}

// GetSession returns a snapshot of the session
func (c *Controller) GetSession(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	return sess.Clone(), nil
}

// DeleteSession discards a session and everything recorded in it
func (c *Controller) DeleteSession(ctx context.Context, code model.SessionCode) error {
	c.mu.Lock()
	exists, err := c.storage.SessionExists(ctx, code)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if !exists {
		c.mu.Unlock()
		return model.ErrSessionNotFound
	}
	if err := c.storage.DeleteSession(ctx, code); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	c.logger.Info("session deleted", slog.String("session", string(code)))
	c.notify(ctx, model.EventSessionDeleted, code, nil)
	return nil
}

// Start sets the session clock running
func (c *Controller) Start(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	return c.update(ctx, code, model.EventClockUpdated, func(s *model.Session) error {
		s.Clock.Start()
		return nil
	})
}

// Pause stops the session clock
func (c *Controller) Pause(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	return c.update(ctx, code, model.EventClockUpdated, func(s *model.Session) error {
		s.Clock.Pause()
		return nil
	})
}

// Toggle flips the session clock between running and paused
func (c *Controller) Toggle(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	return c.update(ctx, code, model.EventClockUpdated, func(s *model.Session) error {
		s.Clock.Toggle()
		return nil
	})
}

// Reset zeroes the session clock and its penalty
func (c *Controller) Reset(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	return c.update(ctx, code, model.EventClockUpdated, func(s *model.Session) error {
		s.Clock.Reset()
		return nil
	})
}

// SetPenalty selects a penalty of 0..MaxPenalty seconds.
// A penalty can only be chosen while the clock is paused with elapsed time.
func (c *Controller) SetPenalty(ctx context.Context, code model.SessionCode, seconds int) (*model.Session, error) {
	if seconds < 0 || seconds > model.MaxPenalty {
		return nil, model.ErrInvalidPenalty
	}
	return c.update(ctx, code, model.EventClockUpdated, func(s *model.Session) error {
		if err := checkRecordable(s.Clock); err != nil {
			return err
		}
		s.Clock.SetPenalty(seconds)
		return nil
	})
}

// RecordToPerson logs the clock's recorded value against the first person
// named name and resets the clock. An unknown name records nothing and
// leaves the clock untouched; recorded reports which happened.
func (c *Controller) RecordToPerson(ctx context.Context, code model.SessionCode, name string) (sess *model.Session, recorded bool, err error) {
	sess, err = c.update(ctx, code, model.EventRosterUpdated, func(s *model.Session) error {
		if err := checkRecordable(s.Clock); err != nil {
			return err
		}
		recorded = s.Roster.RecordTime(name, s.Clock.RecordedValue())
		if recorded {
			s.Clock.Reset()
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !recorded {
		c.logger.Debug("record ignored for unknown name",
			slog.String("session", string(code)),
			slog.String("name", name))
	}
	return sess, recorded, nil
}

// AddPerson creates a person whose first time is the clock's recorded value,
// then resets the clock
func (c *Controller) AddPerson(ctx context.Context, code model.SessionCode, name string) (*model.Session, stopwatch.PersonID, error) {
	if name == "" {
		return nil, "", model.ErrInvalidInput
	}

	var id stopwatch.PersonID
	sess, err := c.update(ctx, code, model.EventRosterUpdated, func(s *model.Session) error {
		if err := checkRecordable(s.Clock); err != nil {
			return err
		}
		var err error
		id, err = s.Roster.AddPerson(name, s.Clock.RecordedValue())
		if err != nil {
			return err
		}
		s.Clock.Reset()
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return sess, id, nil
}

// RemovePerson deletes a person from the roster. Unknown ids are ignored.
func (c *Controller) RemovePerson(ctx context.Context, code model.SessionCode, id stopwatch.PersonID) (*model.Session, error) {
	return c.update(ctx, code, model.EventRosterUpdated, func(s *model.Session) error {
		s.Roster.RemovePerson(id)
		return nil
	})
}

// DistinctNames returns the sorted names a time can be recorded against
func (c *Controller) DistinctNames(ctx context.Context, code model.SessionCode) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	return sess.Roster.DistinctNames(), nil
}

// GetPerson returns one person of a session with their recorded times
func (c *Controller) GetPerson(ctx context.Context, code model.SessionCode, id stopwatch.PersonID) (stopwatch.Person, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return stopwatch.Person{}, err
	}
	p, ok := sess.Roster.Get(id)
	if !ok {
		return stopwatch.Person{}, model.ErrPersonNotFound
	}
	return p, nil
}

// TickAll advances every running clock by delta and returns how many
// clocks were advanced. Ticks do not emit events.
func (c *Controller) TickAll(ctx context.Context, delta time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sessions, err := c.storage.ListSessions(ctx)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, s := range sessions {
		if !s.Clock.Running() {
			continue
		}
		s.Clock.Tick(delta)
		if err := c.storage.SaveSession(ctx, s); err != nil {
			return advanced, err
		}
		advanced++
	}
	return advanced, nil
}

// update applies fn to a session under the lock, saves it and notifies
func (c *Controller) update(ctx context.Context, code model.SessionCode, eventType model.EventType, fn func(*model.Session) error) (*model.Session, error) {
	c.mu.Lock()

	sess, err := c.storage.GetSession(ctx, code)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	if err := fn(sess); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		c.mu.Unlock()
		c.logger.Error("failed to save session",
			slog.String("session", string(code)),
			slog.String("error", err.Error()))
		return nil, err
	}
	snapshot := sess.Clone()
	c.mu.Unlock()

	c.notify(ctx, eventType, code, snapshot)
	return snapshot, nil
}

func (c *Controller) notify(ctx context.Context, eventType model.EventType, code model.SessionCode, snapshot *model.Session) {
	c.mu.Lock()
	n := c.notifier
	c.mu.Unlock()
	if n == nil {
		return
	}
	n.Notify(ctx, model.Event{
		Type:        eventType,
		Timestamp:   c.clock.Now(),
		SessionCode: code,
		Session:     snapshot,
	})
}

func (c *Controller) newPersonID() stopwatch.PersonID {
	return stopwatch.PersonID(c.random.UUID())
}

func checkRecordable(clk *stopwatch.Clock) error {
	if clk.Running() {
		return model.ErrClockRunning
	}
	if clk.Elapsed() == 0 {
		return model.ErrNothingToRecord
	}
	return nil
}
