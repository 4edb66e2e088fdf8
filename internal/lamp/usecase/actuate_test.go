package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"luminaria-skill/internal/lamp"
	"luminaria-skill/internal/telemetry"
	"luminaria-skill/pkg/relay"
)

func TestActuate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Returns Raw Body", func(t *testing.T) {
		r := &mockRelay{body: "Pulso enviado"}
		uc := New(&mockLogger{}, r)

		before := testutil.ToFloat64(telemetry.VoiceCommandsTotal.WithLabelValues("on", telemetry.StatusSuccess))
		out, err := uc.Actuate(ctx, lamp.ActuateInput{Action: lamp.ActionOn})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Body != "Pulso enviado" {
			t.Errorf("unexpected body %q", out.Body)
		}
		if r.calls != 1 {
			t.Errorf("expected exactly one relay call, got %d", r.calls)
		}
		after := testutil.ToFloat64(telemetry.VoiceCommandsTotal.WithLabelValues("on", telemetry.StatusSuccess))
		if after-before != 1 {
			t.Errorf("expected success counter to increase by 1, got %v", after-before)
		}
	})

	t.Run("Transport Error Is Wrapped Not Retried", func(t *testing.T) {
		tErr := &relay.TransportError{URL: "http://relay.test", Err: errors.New("connection refused")}
		r := &mockRelay{err: tErr}
		uc := New(&mockLogger{}, r)

		before := testutil.ToFloat64(telemetry.VoiceCommandsTotal.WithLabelValues("off", telemetry.StatusFailure))
		_, err := uc.Actuate(ctx, lamp.ActuateInput{Action: lamp.ActionOff})
		if !errors.Is(err, lamp.ErrRelayCall) {
			t.Errorf("expected ErrRelayCall, got %v", err)
		}
		var got *relay.TransportError
		if !errors.As(err, &got) {
			t.Errorf("expected TransportError in chain, got %v", err)
		}
		if r.calls != 1 {
			t.Errorf("expected exactly one relay call, got %d", r.calls)
		}
		after := testutil.ToFloat64(telemetry.VoiceCommandsTotal.WithLabelValues("off", telemetry.StatusFailure))
		if after-before != 1 {
			t.Errorf("expected failure counter to increase by 1, got %v", after-before)
		}
	})

	t.Run("Unknown Action", func(t *testing.T) {
		r := &mockRelay{}
		uc := New(&mockLogger{}, r)

		_, err := uc.Actuate(ctx, lamp.ActuateInput{Action: "dim"})
		if !errors.Is(err, lamp.ErrUnknownAction) {
			t.Errorf("expected ErrUnknownAction, got %v", err)
		}
		if r.calls != 0 {
			t.Errorf("expected no relay call, got %d", r.calls)
		}
	})
}
