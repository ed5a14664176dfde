package model

import "time"

// Education is one education entry on the portfolio. Year is free text
// ("2023", "2019 - 2023") rather than a parsed date.
type Education struct {
	ID          int64
	Degree      string
	Institution string
	Location    string
	Year        string
	Logo        string
	CreatedAt   time.Time
}

// EducationUpdate carries a partial overwrite of an Education entry.
// Nil fields are left untouched by the store.
type EducationUpdate struct {
	Degree      *string
	Institution *string
	Location    *string
	Year        *string
	Logo        *string
}
