package storage

import (
	"context"

	"github.com/mcoot/stopwatch/internal/model"
)

// Storage defines the interface for holding session state
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, code model.SessionCode) (*model.Session, error)
	DeleteSession(ctx context.Context, code model.SessionCode) error
	SessionExists(ctx context.Context, code model.SessionCode) (bool, error)

	// ListSessions returns all sessions ordered by creation time
	ListSessions(ctx context.Context) ([]*model.Session, error)
}
