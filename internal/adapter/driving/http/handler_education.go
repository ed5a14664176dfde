package httphandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// ListEducation returns all education entries, newest first.
func (h *Handler) ListEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := h.education.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list education", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]EducationResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toEducationResponse(entry))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateEducation adds an education entry from a multipart form with an
// optional logo upload.
func (h *Handler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	degree, _ := formField(r, "degree")
	institution, _ := formField(r, "institution")
	if strings.TrimSpace(degree) == "" {
		writeError(w, http.StatusBadRequest, "degree is required")
		return
	}
	if strings.TrimSpace(institution) == "" {
		writeError(w, http.StatusBadRequest, "institution is required")
		return
	}

	location, _ := formField(r, "location")
	year, _ := formField(r, "year")

	logo, err := h.storeFormFile(r, "logo")
	if err != nil {
		h.logger.Error("failed to store logo upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	id, err := h.education.Create(r.Context(), model.Education{
		Degree:      degree,
		Institution: institution,
		Location:    location,
		Year:        year,
		Logo:        logo,
	})
	if err != nil {
		h.logger.Error("failed to create education", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Education added successfully"})
}

// UpdateEducation applies a partial update to an education entry.
func (h *Handler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var upd model.EducationUpdate
	if degree, ok := formField(r, "degree"); ok {
		if strings.TrimSpace(degree) == "" {
			writeError(w, http.StatusBadRequest, "degree is required")
			return
		}
		upd.Degree = &degree
	}
	if institution, ok := formField(r, "institution"); ok {
		if strings.TrimSpace(institution) == "" {
			writeError(w, http.StatusBadRequest, "institution is required")
			return
		}
		upd.Institution = &institution
	}
	if location, ok := formField(r, "location"); ok {
		upd.Location = &location
	}
	if year, ok := formField(r, "year"); ok {
		upd.Year = &year
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

	err = h.education.Update(r.Context(), id, upd)
	if errors.Is(err, driven.ErrNotFound) {
		writeError(w, http.StatusNotFound, "education not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update education", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Education updated successfully"})
}

// DeleteEducation removes an education entry by id.
func (h *Handler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.education.Delete(r.Context(), id)
	if errors.Is(err, driven.ErrNotFound) {
		writeError(w, http.StatusNotFound, "education not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete education", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Education deleted successfully"})
}
