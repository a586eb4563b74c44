package apperror

import "errors"

var (
	ErrResultNotFound = errors.New("game result not found")
	ErrUnknownEvent   = errors.New("unknown event")
)
