package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"luminaria-skill/config"
	_ "luminaria-skill/docs" // Swagger docs
	"luminaria-skill/internal/httpserver"
	lampUC "luminaria-skill/internal/lamp/usecase"
	"luminaria-skill/internal/middleware"
	"luminaria-skill/internal/skill"
	"luminaria-skill/pkg/log"
	"luminaria-skill/pkg/relay"
)

// @title       Luminária Skill API
// @description Alexa custom skill backend that switches a lamp through a remote relay endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Luminária skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Relay endpoint: explicit URL or auto-detect ngrok
	relayURL := cfg.Relay.URL
	if relayURL == "" && cfg.Relay.NgrokAPIURL != "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Relay.NgrokAPIURL)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			relayURL = strings.TrimSuffix(ngrokURL, "/") + cfg.Relay.Path
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", relayURL)
		}
	}

	relayClient, err := relay.New(relay.Config{
		URL:     relayURL,
		Timeout: cfg.Relay.Timeout,
		Breaker: relay.BreakerConfig{
			Enabled:          cfg.Relay.Breaker.Enabled,
			MaxRequests:      cfg.Relay.Breaker.MaxRequests,
			Interval:         cfg.Relay.Breaker.Interval,
			Timeout:          cfg.Relay.Breaker.Timeout,
			FailureThreshold: cfg.Relay.Breaker.FailureThreshold,
		},
		Logger: logger,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize relay client (set RELAY_URL or RELAY_NGROK_API_URL): ", err)
		return
	}
	logger.Infof(ctx, "Relay endpoint: %s", relayClient.URL())

	// 4. Skill domain
	lampUseCase := lampUC.New(logger, relayClient)
	skillHandler, err := skill.New(logger, lampUseCase, skill.Config{SkillID: cfg.Skill.ID})
	if err != nil {
		logger.Error(ctx, "Failed to initialize skill: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitPerMin:  cfg.RateLimit.PerMin,
		},
		SkillHandler: skillHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
