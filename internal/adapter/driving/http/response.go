package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

// createdResponse acknowledges a successful create with the new row id.
type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// messageResponse acknowledges a successful update or delete.
type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ExperienceResponse is the JSON shape of a work history entry.
// Description is always a JSON array, never null.
type ExperienceResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
	Logo        string   `json:"logo"`
	CreatedAt   string   `json:"created_at"`
}

// EducationResponse is the JSON shape of an education entry.
type EducationResponse struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	Logo        string `json:"logo"`
	CreatedAt   string `json:"created_at"`
}

// ProjectResponse is the JSON shape of a portfolio project. DescriptionHTML
// carries the markdown description rendered to sanitized HTML for direct
// injection into the public page.
type ProjectResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	Link            string `json:"link"`
	Image           string `json:"image"`
	CreatedAt       string `json:"created_at"`
}

func toExperienceResponse(e model.Experience) ExperienceResponse {
	description := e.Description
	if description == nil {
		description = []string{}
	}

	return ExperienceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: description,
		Logo:        e.Logo,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func toEducationResponse(e model.Education) EducationResponse {
	return EducationResponse{
		ID:          e.ID,
		Degree:      e.Degree,
		Institution: e.Institution,
		Location:    e.Location,
		Year:        e.Year,
		Logo:        e.Logo,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func toProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DescriptionHTML: renderMarkdown(p.Description),
		Link:            p.Link,
		Image:           p.Image,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}
