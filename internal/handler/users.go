package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/mockapi"
)

// UserHandler exposes the mock user API over HTTP.
type UserHandler struct {
	api    *mockapi.UserAPI
	logger *slog.Logger
}

func NewUserHandler(api *mockapi.UserAPI, logger *slog.Logger) *UserHandler {
	return &UserHandler{api: api, logger: logger}
}

// Routes registers the user endpoints on r:
//
//	GET    /users
//	POST   /users
//	GET    /users/{id}
//	PUT    /users/{id}
//	DELETE /users/{id}
func (h *UserHandler) Routes(r chi.Router) {
	r.Get("/users", h.HandleList)
	r.Post("/users", h.HandleCreate)
	r.Get("/users/{id}", h.HandleGetByID)
	r.Put("/users/{id}", h.HandleUpdate)
	r.Delete("/users/{id}", h.HandleDelete)
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.api.All())
}

func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResponse(w, h.api.Get(id))
}

// HandleCreate adds a user.
//
// HTTP: POST /api/users
// REQUEST BODY: {"name": "Alice", "email": "alice@example.com", "role": "user"}
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in mockapi.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		h.logger.Warn("invalid user JSON", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	res := h.api.Create(in)
	if res.Success {
		h.logger.Info("mock user created", slog.Int("id", res.Data.ID))
	}
	writeResponse(w, res)
}

// HandleUpdate applies a partial update. Fields missing from the body keep
// their current values.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch mockapi.ContactPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	writeResponse(w, h.api.Update(id, patch))
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res := h.api.Delete(id)
	if res.Success {
		h.logger.Info("mock user deleted", slog.Int("id", id))
	}
	writeResponse(w, res)
}

// userID reads the numeric {id} URL parameter set by chi.
func userID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.ValidationFailed("id", "User ID must be a number")
	}
	return id, nil
}
