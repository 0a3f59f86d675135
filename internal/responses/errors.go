package responses

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownDiag    = errors.New("unknown diagnostic")
	ErrUnknownSession = errors.New("unknown session")
)
