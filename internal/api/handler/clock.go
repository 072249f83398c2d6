package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mcoot/stopwatch/internal/api/request"
	"github.com/mcoot/stopwatch/internal/api/response"
	"github.com/mcoot/stopwatch/internal/model"
	"github.com/mcoot/stopwatch/internal/services/session"
)

// ClockHandler handles the stopwatch controls of a session
type ClockHandler struct {
	sessions *session.Controller
}

// NewClockHandler creates a new clock handler
func NewClockHandler(sessions *session.Controller) *ClockHandler {
	return &ClockHandler{sessions: sessions}
}

type clockCommand func(ctx context.Context, code model.SessionCode) (*model.Session, error)

func (h *ClockHandler) run(w http.ResponseWriter, r *http.Request, cmd clockCommand) {
	sess, err := cmd(r.Context(), sessionCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Start handles POST /api/v1/sessions/{code}/clock/start
func (h *ClockHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.sessions.Start)
}

// Pause handles POST /api/v1/sessions/{code}/clock/pause
func (h *ClockHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.sessions.Pause)
}

// Toggle handles POST /api/v1/sessions/{code}/clock/toggle
func (h *ClockHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.sessions.Toggle)
}

// Reset handles POST /api/v1/sessions/{code}/clock/reset
func (h *ClockHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.sessions.Reset)
}

// Penalty handles PUT /api/v1/sessions/{code}/clock/penalty
func (h *ClockHandler) Penalty(w http.ResponseWriter, r *http.Request) {
	var req request.SetPenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Seconds == nil {
		WriteError(w, NewInvalidRequestError("seconds is required"))
		return
	}

	sess, err := h.sessions.SetPenalty(r.Context(), sessionCode(r), *req.Seconds)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}
