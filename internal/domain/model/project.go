package model

import "time"

// Project is one portfolio project. Link is the outbound URL the public
// page points at and is always present; Description may contain markdown,
// rendered to sanitized HTML at the API boundary.
type Project struct {
	ID          int64
	Title       string
	Description string
	Link        string
	Image       string
	CreatedAt   time.Time
}

// ProjectUpdate carries a partial overwrite of a Project.
// Nil fields are left untouched by the store.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Link        *string
	Image       *string
}
