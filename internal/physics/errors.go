package physics

import "errors"

// Construction errors. They are fatal for the resource being built and are
// never retried by the caller.
var (
	ErrInvalidBody  = errors.New("physics: invalid body specification")
	ErrInvalidShape = errors.New("physics: invalid collider shape")
	ErrInvalidJoint = errors.New("physics: invalid joint specification")
	ErrUnknownBody  = errors.New("physics: unknown body handle")
)
