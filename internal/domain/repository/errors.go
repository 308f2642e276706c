package repository

import "errors"

// ErrNotFound is returned when a record does not exist, or exists but is
// owned by a different user. Callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when creating a user whose email already
// exists (comparison is case-insensitive over the whole address).
var ErrDuplicateEmail = errors.New("email already registered")
