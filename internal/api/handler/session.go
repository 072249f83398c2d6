package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mcoot/stopwatch/internal/api/response"
	"github.com/mcoot/stopwatch/internal/api/sse"
	"github.com/mcoot/stopwatch/internal/model"
	"github.com/mcoot/stopwatch/internal/services/session"
)

// SessionHandler handles session lifecycle and event stream endpoints
type SessionHandler struct {
	sessions   *session.Controller
	hubManager *sse.HubManager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Controller, hubManager *sse.HubManager) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		hubManager: hubManager,
	}
}

// sessionCode reads the {code} path variable
func sessionCode(r *http.Request) model.SessionCode {
	return model.SessionCode(mux.Vars(r)["code"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// Get handles GET /api/v1/sessions/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.GetSession(r.Context(), sessionCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Delete handles DELETE /api/v1/sessions/{code}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.DeleteSession(r.Context(), sessionCode(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Events handles GET /api/v1/sessions/{code}/events
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	code := sessionCode(r)

	// Verify the session exists before opening a stream
	if _, err := h.sessions.GetSession(r.Context(), code); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub, uuid.NewString())
}
