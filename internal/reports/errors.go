package reports

import "errors"

var (
	// ErrUnknownSession indicates the session ID does not exist.
	ErrUnknownSession = errors.New("unknown session")
)
