package relay

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"
)

func newRelayImpl(cfg Config) *relayImpl {
	r := &relayImpl{
		url:        cfg.URL,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		l:          cfg.Logger,
	}

	if cfg.Breaker.Enabled {
		threshold := cfg.Breaker.FailureThreshold
		r.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        defaultBreakerName,
			MaxRequests: cfg.Breaker.MaxRequests,
			Interval:    cfg.Breaker.Interval,
			Timeout:     cfg.Breaker.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				r.l.Warnf(context.Background(), "pkg.relay: circuit breaker %s changed from %s to %s", name, from, to)
			},
		})
	}

	return r
}

// URL returns the endpoint being called
func (r *relayImpl) URL() string {
	return r.url
}

// Call sends the GET and buffers the body. A completed body is a success
// whatever the status code.
func (r *relayImpl) Call(ctx context.Context) (string, error) {
	r.l.Infof(ctx, "pkg.relay.Call: calling %s", r.url)

	var (
		body string
		err  error
	)
	if r.breaker != nil {
		var out interface{}
		out, err = r.breaker.Execute(func() (interface{}, error) {
			return r.do(ctx)
		})
		if s, ok := out.(string); ok {
			body = s
		}
	} else {
		body, err = r.do(ctx)
	}

	if err != nil {
		var tErr *TransportError
		if !errors.As(err, &tErr) {
			// gobreaker.ErrOpenState / ErrTooManyRequests
			err = &TransportError{URL: r.url, Err: err}
		}
		r.l.Errorf(ctx, "pkg.relay.Call: %v", err)
		return "", err
	}

	r.l.Infof(ctx, "pkg.relay.Call: response: %s", body)
	return body, nil
}

func (r *relayImpl) do(ctx context.Context) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", &TransportError{URL: r.url, Err: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: r.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		r.l.Warnf(ctx, "pkg.relay.Call: endpoint answered %d, treating completed body as success", resp.StatusCode)
	}

	body, err := readChunks(resp.Body)
	if err != nil {
		return "", &TransportError{URL: r.url, Err: err}
	}
	return body, nil
}

// readChunks appends every chunk in arrival order until EOF.
func readChunks(rd io.Reader) (string, error) {
	var (
		sb  strings.Builder
		buf = make([]byte, readChunkSize)
	)
	for {
		n, err := rd.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
