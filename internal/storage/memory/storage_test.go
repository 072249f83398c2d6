package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/stopwatch/internal/model"
	"github.com/mcoot/stopwatch/internal/stopwatch"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newSession(code string, createdAt time.Time) *model.Session {
	return &model.Session{
		Code:      model.SessionCode(code),
		Clock:     stopwatch.NewClock(),
		Roster:    stopwatch.NewRoster(nil),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("ABC123", time.Now())

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(session.Code, retrieved.Code)
	s.Same(session, retrieved)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "NONEXISTENT")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, newSession("ABC123", time.Now()))

	err := s.storage.DeleteSession(s.ctx, "ABC123")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionMissingIsNoop() {
	s.NoError(s.storage.DeleteSession(s.ctx, "NONEXISTENT"))
}

func (s *StorageSuite) TestSessionExists() {
	_ = s.storage.SaveSession(s.ctx, newSession("ABC123", time.Now()))

	exists, err := s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.storage.SessionExists(s.ctx, "XYZ789")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestListSessionsOrderedByCreation() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSession(s.ctx, newSession("CCC333", base.Add(2*time.Minute)))
	_ = s.storage.SaveSession(s.ctx, newSession("AAA111", base))
	_ = s.storage.SaveSession(s.ctx, newSession("BBB222", base.Add(time.Minute)))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal(model.SessionCode("AAA111"), sessions[0].Code)
	s.Equal(model.SessionCode("BBB222"), sessions[1].Code)
	s.Equal(model.SessionCode("CCC333"), sessions[2].Code)
}

func (s *StorageSuite) TestListSessionsEmpty() {
	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}
