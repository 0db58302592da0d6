package programmer

import "errors"

var (
	// ErrInvalidFormat reports a string that is not a number in the requested base.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidArgument reports an argument outside the range an operation accepts.
	ErrInvalidArgument = errors.New("invalid argument")
)
