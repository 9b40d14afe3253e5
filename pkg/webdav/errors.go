package webdav

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a 404 from the server. Callers decide whether a
// missing path is fatal, it is not a transport failure.
var ErrNotFound = errors.New("no such file or directory")

// StatusError is a non-2xx response from the server
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

// ParseError is a malformed multistatus payload. It is a local fault,
// distinct from ErrNotFound and from transport failures, and must never
// be reported as "no such file".
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse server response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
