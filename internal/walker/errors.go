package walker

import (
	"errors"
	"fmt"
)

// ErrRootNotFound is returned by Generate when the root directory does not
// exist or cannot be stat'ed.
var ErrRootNotFound = errors.New("root directory not found")

// RootNotFoundError carries the offending path and the underlying stat error.
type RootNotFoundError struct {
	Path string
	Err  error
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("walker: directory %q does not exist: %v", e.Path, e.Err)
}

func (e *RootNotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRootNotFound) succeed.
func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}
