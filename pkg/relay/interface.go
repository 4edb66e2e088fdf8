package relay

import "context"

// IRelay triggers the remote relay.
// Implementations are safe for concurrent use.
type IRelay interface {
	// Call issues one GET to the relay endpoint and returns the raw response body.
	// Any transport failure is returned as *TransportError. HTTP status is not inspected.
	Call(ctx context.Context) (string, error)

	// URL returns the endpoint being called
	URL() string
}

// New creates a relay client with the given configuration
func New(cfg Config) (IRelay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newRelayImpl(cfg), nil
}
