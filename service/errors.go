package service

import "github.com/pkg/errors"

// The closed set of failure kinds a service call can surface. Handlers check
// with errors.Is and translate: ErrInvalid -> 400, ErrUnauthenticated -> 401,
// ErrForbidden -> 403, ErrNotFound -> 404, ErrConflict -> 409, anything
// else -> 500 with the detail logged server-side only.
var (
	ErrInvalid         = errors.New("invalid input")
	ErrUnauthenticated = errors.New("invalid credentials")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

func invalid(msg string) error {
	return errors.Wrap(ErrInvalid, msg)
}

func notFound(what string) error {
	return errors.Wrap(ErrNotFound, what)
}
