package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"luminaria-skill/config"
	lampUC "luminaria-skill/internal/lamp/usecase"
	"luminaria-skill/internal/skill"
	"luminaria-skill/pkg/alexa"
	"luminaria-skill/pkg/log"
	"luminaria-skill/pkg/relay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: "json",
	})
	ctx := context.Background()

	relayClient, err := relay.New(relay.Config{
		URL:     cfg.Relay.URL,
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
		logger.Fatalf(ctx, "Failed to initialize relay client (set RELAY_URL): %v", err)
	}

	h, err := skill.New(logger, lampUC.New(logger, relayClient), skill.Config{SkillID: cfg.Skill.ID})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize skill: %v", err)
	}

	lambda.Start(func(ctx context.Context, env alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			ctx = log.WithRequestID(ctx, lc.AwsRequestID)
		}
		return h.Invoke(ctx, env)
	})
}
