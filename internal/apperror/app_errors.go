package apperror

import "errors"

var (
	ErrStepOutOfRange = errors.New("step is out of history range")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrUnknownCommand = errors.New("unknown command")
)
