package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/dpolyakov/planmate/internal/common"
	"github.com/dpolyakov/planmate/internal/server/middleware"
	"github.com/dpolyakov/planmate/internal/server/models"
	"github.com/dpolyakov/planmate/internal/server/store"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(s *store.Store) *ProjectHandler {
	return &ProjectHandler{store: s}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projects := h.store.Projects(claims.UserID)
	if projects == nil {
		projects = []models.Project{}
	}
	sendJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.store.Project(claims.UserID, id)
	if errors.Is(err, common.ErrNotFound) {
		sendError(w, http.StatusNotFound, "project not found")
		return
	}
	sendJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(req.Title) < 3 {
		sendError(w, http.StatusBadRequest, "title must be at least 3 characters")
		return
	}

	project := h.store.CreateProject(claims.UserID, req.Title, strings.TrimSpace(req.Description))
	sendJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.store.DeleteProject(claims.UserID, id); errors.Is(err, common.ErrNotFound) {
		sendError(w, http.StatusNotFound, "project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
