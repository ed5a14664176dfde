package model

import "time"

// Experience is one work history entry on the portfolio. Description holds
// the bullet points shown under the role, in the order they were entered;
// it is never nil -- an entry without bullets carries an empty slice.
type Experience struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	StartDate   string
	EndDate     string
	Description []string
	Logo        string
	CreatedAt   time.Time
}

// ExperienceUpdate carries a partial overwrite of an Experience. A nil
// field is left untouched by the store; a non-nil field replaces the
// stored value.
type ExperienceUpdate struct {
	Title       *string
	Company     *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Description *[]string
	Logo        *string
}
