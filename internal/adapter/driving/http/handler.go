// Package httphandler is the HTTP driving adapter serving the REST API.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/foliopanel/internal/application"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// maxUploadBytes bounds the in-memory portion of a multipart form parse.
const maxUploadBytes = 32 << 20

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	experience driven.ExperienceStore
	education  driven.EducationStore
	projects   driven.ProjectStore
	files      driven.FileStore
	auth       *application.AuthService
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	experience driven.ExperienceStore,
	education driven.EducationStore,
	projects driven.ProjectStore,
	files driven.FileStore,
	auth *application.AuthService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		experience: experience,
		education:  education,
		projects:   projects,
		files:      files,
		auth:       auth,
		logger:     logger,
	}
}

// RegisterAPIRoutes registers all REST API routes on the provided mux.
// List endpoints are public; create, update, and delete require a valid
// session token.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("GET /api/experience", h.ListExperience)
	mux.HandleFunc("POST /api/experience", h.requireAuth(h.CreateExperience))
	mux.HandleFunc("PUT /api/experience/{id}", h.requireAuth(h.UpdateExperience))
	mux.HandleFunc("DELETE /api/experience/{id}", h.requireAuth(h.DeleteExperience))

	mux.HandleFunc("GET /api/education", h.ListEducation)
	mux.HandleFunc("POST /api/education", h.requireAuth(h.CreateEducation))
	mux.HandleFunc("PUT /api/education/{id}", h.requireAuth(h.UpdateEducation))
	mux.HandleFunc("DELETE /api/education/{id}", h.requireAuth(h.DeleteEducation))

	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("POST /api/projects", h.requireAuth(h.CreateProject))
	mux.HandleFunc("PUT /api/projects/{id}", h.requireAuth(h.UpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", h.requireAuth(h.DeleteProject))
}

// Login exchanges the admin credential for a signed session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: req.Username})
}

// Health returns a liveness response.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Time:   time.Now().Format(time.RFC3339),
	})
}

// pathID parses the {id} path segment. The second return value is false
// when the segment is not a positive integer, in which case a 400 has
// already been written.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// formField returns a multipart form field's value and whether the field
// was present at all. Present-but-empty and absent are distinct on update.
func formField(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// storeFormFile persists an optional uploaded file and returns its serving
// path. An absent file field is not an error and yields "".
func (h *Handler) storeFormFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	return h.files.Store(file, header.Filename)
}

// splitDescription turns the newline-separated textarea submission into the
// stored bullet list. Blank lines are dropped; surviving lines keep their
// original text.
func splitDescription(raw string) []string {
	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
