package relay

import "time"

const (
	// DefaultPath is the relay endpoint exposed by the device controller.
	DefaultPath = "/acionar-rele"

	// readChunkSize is the buffer used while draining the response body.
	readChunkSize = 4 * 1024

	defaultBreakerName        = "relay"
	defaultBreakerMaxRequests = 1
	defaultBreakerInterval    = time.Minute
	defaultBreakerTimeout     = 30 * time.Second
	defaultBreakerFailures    = 5
)
