package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// unavailable wraps a repository failure and marks it as
// ErrDependencyUnavailable. The original cause stays matchable with
// errors.Is.
func unavailable(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrDependencyUnavailable)
}
