package httphandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// ListExperience returns all work history entries, newest first.
func (h *Handler) ListExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := h.experience.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list experience", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ExperienceResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toExperienceResponse(entry))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateExperience adds a work history entry from a multipart form with an
// optional logo upload.
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	title, _ := formField(r, "title")
	company, _ := formField(r, "company")
	if strings.TrimSpace(title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(company) == "" {
		writeError(w, http.StatusBadRequest, "company is required")
		return
	}

	location, _ := formField(r, "location")
	startDate, _ := formField(r, "start_date")
	endDate, _ := formField(r, "end_date")
	rawDescription, _ := formField(r, "description")

	logo, err := h.storeFormFile(r, "logo")
	if err != nil {
		h.logger.Error("failed to store logo upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	id, err := h.experience.Create(r.Context(), model.Experience{
		Title:       title,
		Company:     company,
		Location:    location,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: splitDescription(rawDescription),
		Logo:        logo,
	})
	if err != nil {
		h.logger.Error("failed to create experience", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Experience added successfully"})
}

// UpdateExperience applies a partial update. Only fields present in the
// form change; a new logo upload replaces the stored reference.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var upd model.ExperienceUpdate
	if title, ok := formField(r, "title"); ok {
		if strings.TrimSpace(title) == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}
		upd.Title = &title
	}
	if company, ok := formField(r, "company"); ok {
		if strings.TrimSpace(company) == "" {
			writeError(w, http.StatusBadRequest, "company is required")
			return
		}
		upd.Company = &company
	}
	if location, ok := formField(r, "location"); ok {
		upd.Location = &location
	}
	if startDate, ok := formField(r, "start_date"); ok {
		upd.StartDate = &startDate
	}
	if endDate, ok := formField(r, "end_date"); ok {
		upd.EndDate = &endDate
	}
	if raw, ok := formField(r, "description"); ok {
		description := splitDescription(raw)
		upd.Description = &description
	}

	logo, err := h.storeFormFile(r, "logo")
	if err != nil {
		h.logger.Error("failed to store logo upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if logo != "" {
		upd.Logo = &logo
	}

	err = h.experience.Update(r.Context(), id, upd)
	if errors.Is(err, driven.ErrNotFound) {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update experience", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Experience updated successfully"})
}

// DeleteExperience removes a work history entry by id.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.experience.Delete(r.Context(), id)
	if errors.Is(err, driven.ErrNotFound) {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete experience", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Experience deleted successfully"})
}
