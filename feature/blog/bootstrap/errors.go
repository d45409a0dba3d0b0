package bootstrap

import (
	"errors"
	"fmt"

	"blog-sync/feature/blog/models"
)

// ErrPrecondition is matched by every PreconditionError.
var ErrPrecondition = errors.New("bootstrap requires an empty store")

// PreconditionError reports that the import was refused because records already exist.
// Nothing is written when it is returned.
type PreconditionError struct {
	// Kind is the first kind found non-empty.
	Kind models.Kind
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot import records from the remote API: %s records already exist", e.Kind)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}
