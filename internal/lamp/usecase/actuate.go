package usecase

import (
	"context"
	"fmt"
	"time"

	"luminaria-skill/internal/lamp"
	"luminaria-skill/internal/telemetry"
)

// Actuate calls the relay exactly once and reports the outcome.
func (uc *implUseCase) Actuate(ctx context.Context, input lamp.ActuateInput) (lamp.ActuateOutput, error) {
	if !input.Action.Valid() {
		return lamp.ActuateOutput{}, fmt.Errorf("%s: %w: %q", lamp.LogPrefixActuate, lamp.ErrUnknownAction, input.Action)
	}

	uc.l.Infof(ctx, "%s: action=%s relay=%s", lamp.LogPrefixActuate, input.Action, uc.relay.URL())

	start := time.Now()
	body, err := uc.relay.Call(ctx)
	elapsed := time.Since(start)

	if err != nil {
		telemetry.VoiceCommandsTotal.WithLabelValues(string(input.Action), telemetry.StatusFailure).Inc()
		telemetry.RelayLatency.WithLabelValues(telemetry.StatusFailure).Observe(elapsed.Seconds())
		uc.l.Warnf(ctx, "%s: action=%s failed after %s: %v", lamp.LogPrefixActuate, input.Action, elapsed, err)
		return lamp.ActuateOutput{}, fmt.Errorf("%w: %w", lamp.ErrRelayCall, err)
	}

	telemetry.VoiceCommandsTotal.WithLabelValues(string(input.Action), telemetry.StatusSuccess).Inc()
	telemetry.RelayLatency.WithLabelValues(telemetry.StatusSuccess).Observe(elapsed.Seconds())
	uc.l.Infof(ctx, "%s: action=%s done in %s", lamp.LogPrefixActuate, input.Action, elapsed)

	return lamp.ActuateOutput{Body: body}, nil
}
