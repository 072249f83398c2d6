package sse

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mcoot/stopwatch/internal/api/response"
	"github.com/mcoot/stopwatch/internal/model"
)

// SSE event names sent to clients
const (
	EventNameClockUpdate    = "clock-update"
	EventNameRosterUpdate   = "roster-update"
	EventNameSessionDeleted = "session-deleted"
)

// Broadcaster relays session events to the session's SSE clients
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Notify broadcasts the event as JSON to everyone watching the session.
// Events for sessions nobody is watching are dropped.
func (b *Broadcaster) Notify(_ context.Context, event model.Event) {
	if event.Type == model.EventSessionDeleted {
		b.broadcastDeleted(event.SessionCode)
		return
	}

	hub := b.hubManager.GetHub(event.SessionCode)
	if hub == nil || event.Session == nil {
		return
	}

	var name string
	switch event.Type {
	case model.EventClockUpdated:
		name = EventNameClockUpdate
	case model.EventRosterUpdated:
		name = EventNameRosterUpdate
	default:
		return
	}

	data, err := json.Marshal(response.SessionFromModel(event.Session))
	if err != nil {
		b.logger.Error("sse failed to encode session",
			slog.String("session", string(event.SessionCode)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(name, string(data))
}

// broadcastDeleted tells clients the session is gone and closes its hub
func (b *Broadcaster) broadcastDeleted(code model.SessionCode) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}

	data, _ := json.Marshal(response.SessionDeleted{Code: string(code)})
	hub.BroadcastEvent(EventNameSessionDeleted, string(data))
	b.hubManager.RemoveHub(code)
}
