package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ngrokAttempts      = 10
	ngrokRetryInterval = 3 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL returns the public URL of the tunnel fronting the device,
// preferring HTTPS. It retries while ngrok is still starting.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	return detectNgrokURLWithRetry(ctx, ngrokAPIBase, ngrokAttempts, ngrokRetryInterval)
}

func detectNgrokURLWithRetry(ctx context.Context, ngrokAPIBase string, attempts int, interval time.Duration) (string, error) {
	endpoint := strings.TrimSuffix(ngrokAPIBase, "/") + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchTunnel(ctx, client, endpoint)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}

	return "", fmt.Errorf("ngrok tunnel not available after %d attempts: %w", attempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}

	return "", fmt.Errorf("ngrok has no active tunnels")
}
