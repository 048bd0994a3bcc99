package api

import (
	"encoding/json"
	"net/http"

	"github.com/errands-sys/portfolio-backend/database"
	"github.com/errands-sys/portfolio-backend/errs"
	"github.com/errands-sys/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// validateProject enforces the full-replace contract: every text field must
// be present and non-empty, on create and update alike.
func validateProject(project *models.Project) error {
	if project.Title == "" || project.Description == "" || project.Image == "" || project.Category == "" {
		return errs.NewBadRequestError("All fields are required")
	}
	return nil
}

// getAllProjects retrieves all projects, newest first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(chi.URLParam(r, "projectID"), "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

// createProject creates a new project and returns it re-fetched by its new identity
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateProject(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.projectRepo.Add(r.Context(), &project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, created)
	}
}

// updateProject replaces every field of an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(chi.URLParam(r, "projectID"), "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateProject(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.projectRepo.Update(r.Context(), projectID, &project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		updated, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, updated)
	}
}

// deleteProject deletes a project by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(chi.URLParam(r, "projectID"), "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.projectRepo.Delete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Project deleted successfully",
		})
	}
}
