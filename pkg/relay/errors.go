package relay

import (
	"errors"
	"fmt"
)

var (
	ErrURLRequired = errors.New("relay: URL is required")
	ErrInvalidURL  = errors.New("relay: URL must be an absolute http or https URL")
)

// TransportError is returned for every failure of the outbound call: DNS, connect,
// TLS, reset, body read, cancelled context or an open circuit breaker.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("relay: call to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
