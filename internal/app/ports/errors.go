package ports

import "errors"

var (
	// ErrNotFound: no save stored under the requested world name.
	ErrNotFound = errors.New("save not found")
	// ErrConflict: the store refused a write that collides with another row.
	ErrConflict = errors.New("save conflict")
)
