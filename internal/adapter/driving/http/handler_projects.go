package httphandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// ListProjects returns all portfolio projects, newest first.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		resp = append(resp, toProjectResponse(project))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateProject adds a portfolio project from a multipart form with an
// optional screenshot upload.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	title, _ := formField(r, "title")
	link, _ := formField(r, "link")
	if strings.TrimSpace(title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(link) == "" {
		writeError(w, http.StatusBadRequest, "link is required")
		return
	}

	description, _ := formField(r, "description")

	image, err := h.storeFormFile(r, "image")
	if err != nil {
		h.logger.Error("failed to store image upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	id, err := h.projects.Create(r.Context(), model.Project{
		Title:       title,
		Description: description,
		Link:        link,
		Image:       image,
	})
	if err != nil {
		h.logger.Error("failed to create project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Project added successfully"})
}

// UpdateProject applies a partial update to a project.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var upd model.ProjectUpdate
	if title, ok := formField(r, "title"); ok {
		if strings.TrimSpace(title) == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}
		upd.Title = &title
	}
	if link, ok := formField(r, "link"); ok {
		if strings.TrimSpace(link) == "" {
			writeError(w, http.StatusBadRequest, "link is required")
			return
		}
		upd.Link = &link
	}
	if description, ok := formField(r, "description"); ok {
		upd.Description = &description
	}

	image, err := h.storeFormFile(r, "image")
	if err != nil {
		h.logger.Error("failed to store image upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if image != "" {
		upd.Image = &image
	}

	err = h.projects.Update(r.Context(), id, upd)
	if errors.Is(err, driven.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Project updated successfully"})
}

// DeleteProject removes a project by id.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.projects.Delete(r.Context(), id)
	if errors.Is(err, driven.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Project deleted successfully"})
}
