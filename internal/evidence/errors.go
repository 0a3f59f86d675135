package evidence

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownDiag    = errors.New("unknown diagnostic")
	ErrUnknownSession = errors.New("unknown session")
	ErrStoreFailed    = errors.New("evidence store failed")
)
