package driven

import "errors"

// ErrNotFound is returned by store implementations when the addressed
// record does not exist. Callers match it with errors.Is.
var ErrNotFound = errors.New("record not found")
