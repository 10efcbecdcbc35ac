package repo_errors

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
	// ErrConflict covers lock timeouts, deadlocks and serialization failures.
	ErrConflict = errors.New("concurrent update conflict")
)
