package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dpolyakov/planmate/internal/common"
	"github.com/dpolyakov/planmate/internal/server/middleware"
	"github.com/dpolyakov/planmate/internal/server/models"
	"github.com/dpolyakov/planmate/internal/server/store"
)

type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

// Create adds a task to a project owned by the caller.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projectID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req models.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		sendError(w, http.StatusBadRequest, "title is required")
		return
	}

	task, err := h.store.CreateTask(claims.UserID, projectID, req.Title, req.DueDate)
	if errors.Is(err, common.ErrNotFound) {
		sendError(w, http.StatusNotFound, "project not found")
		return
	}
	sendJSON(w, http.StatusCreated, task)
}

// Update applies a partial update; absent fields are left as they were.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req models.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			sendError(w, http.StatusBadRequest, "title cannot be empty")
			return
		}
		req.Title = &trimmed
	}

	task, err := h.store.UpdateTask(claims.UserID, id, req)
	if errors.Is(err, common.ErrNotFound) {
		sendError(w, http.StatusNotFound, "task not found")
		return
	}
	sendJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.store.DeleteTask(claims.UserID, id); errors.Is(err, common.ErrNotFound) {
		sendError(w, http.StatusNotFound, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
