package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/stopwatch/internal/api/request"
	"github.com/mcoot/stopwatch/internal/api/response"
	"github.com/mcoot/stopwatch/internal/services/session"
	"github.com/mcoot/stopwatch/internal/stopwatch"
)

// PersonHandler handles roster endpoints
type PersonHandler struct {
	sessions *session.Controller
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(sessions *session.Controller) *PersonHandler {
	return &PersonHandler{sessions: sessions}
}

// List handles GET /api/v1/sessions/{code}/people
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.GetSession(r.Context(), sessionCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PeopleResponse{People: response.PeopleFromModel(sess.Roster)})
}

// Get handles GET /api/v1/sessions/{code}/people/{id}
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := stopwatch.PersonID(mux.Vars(r)["id"])

	p, err := h.sessions.GetPerson(r.Context(), sessionCode(r), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PersonFromModel(p))
}

// Add handles POST /api/v1/sessions/{code}/people
func (h *PersonHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, id, err := h.sessions.AddPerson(r.Context(), sessionCode(r), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AddPersonResponse{
		PersonID: string(id),
		Session:  response.SessionFromModel(sess),
	})
}

// Names handles GET /api/v1/sessions/{code}/people/names
func (h *PersonHandler) Names(w http.ResponseWriter, r *http.Request) {
	names, err := h.sessions.DistinctNames(r.Context(), sessionCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NamesResponse{Names: names})
}

// Record handles POST /api/v1/sessions/{code}/people/record
func (h *PersonHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, recorded, err := h.sessions.RecordToPerson(r.Context(), sessionCode(r), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordResponse{
		Recorded: recorded,
		Session:  response.SessionFromModel(sess),
	})
}

// Remove handles DELETE /api/v1/sessions/{code}/people/{id}
func (h *PersonHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := stopwatch.PersonID(mux.Vars(r)["id"])

	if _, err := h.sessions.RemovePerson(r.Context(), sessionCode(r), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
