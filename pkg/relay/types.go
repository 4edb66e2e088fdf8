package relay

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	pkgLog "luminaria-skill/pkg/log"
)

// Config holds relay client configuration
type Config struct {
	URL        string
	Timeout    time.Duration // per call, applied to the request context; 0 means none
	Breaker    BreakerConfig
	HTTPClient *http.Client
	Logger     pkgLog.Logger
}

// BreakerConfig configures the optional circuit breaker around Call.
type BreakerConfig struct {
	Enabled          bool
	MaxRequests      uint32        // requests let through while half-open
	Interval         time.Duration // closed-state window after which counts reset
	Timeout          time.Duration // open-state duration before going half-open
	FailureThreshold uint32        // consecutive failures that open the breaker
}

// Validate checks the configuration and fills defaults
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrURLRequired
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, c.URL)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Logger == nil {
		c.Logger = pkgLog.NewNop()
	}
	if c.Breaker.Enabled {
		if c.Breaker.MaxRequests == 0 {
			c.Breaker.MaxRequests = defaultBreakerMaxRequests
		}
		if c.Breaker.Interval == 0 {
			c.Breaker.Interval = defaultBreakerInterval
		}
		if c.Breaker.Timeout == 0 {
			c.Breaker.Timeout = defaultBreakerTimeout
		}
		if c.Breaker.FailureThreshold == 0 {
			c.Breaker.FailureThreshold = defaultBreakerFailures
		}
	}
	return nil
}

// relayImpl is the internal implementation of IRelay
type relayImpl struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	l          pkgLog.Logger
}
