package lamp

import "errors"

// Domain-specific errors for the lamp package.
var (
	ErrUnknownAction = errors.New("unknown lamp action")
	ErrRelayCall     = errors.New("relay call failed")
)
