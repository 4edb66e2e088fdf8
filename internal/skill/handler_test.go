package skill_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"luminaria-skill/internal/lamp"
	lampUC "luminaria-skill/internal/lamp/usecase"
	"luminaria-skill/internal/skill"
	"luminaria-skill/internal/telemetry"
	pkgAlexa "luminaria-skill/pkg/alexa"
	pkgLog "luminaria-skill/pkg/log"
	"luminaria-skill/pkg/relay"
)

type testEnv struct {
	engine  *gin.Engine
	handler skill.Handler
}

// newTestEnv wires the real use case and relay client against relayURL.
func newTestEnv(t *testing.T, relayURL string, cfg skill.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNop()
	rc, err := relay.New(relay.Config{URL: relayURL, Logger: l})
	if err != nil {
		t.Fatalf("relay.New: %v", err)
	}

	h, err := skill.New(l, lampUC.New(l, rc), cfg)
	if err != nil {
		t.Fatalf("skill.New: %v", err)
	}

	engine := gin.New()
	engine.POST("/alexa", h.HandleRequest)
	return &testEnv{engine: engine, handler: h}
}

func newRelayServer(calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Write([]byte("Pulso enviado"))
	}))
}

func deadRelayURL() string {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	return url
}

func envelope(reqType, intent string) pkgAlexa.RequestEnvelope {
	env := pkgAlexa.RequestEnvelope{
		Version: "1.0",
		Session: &pkgAlexa.Session{Application: pkgAlexa.Application{ApplicationID: "amzn1.ask.skill.luminaria"}},
		Request: pkgAlexa.Request{Type: reqType, RequestID: "amzn1.echo-api.request.1", Locale: "pt-BR"},
	}
	if intent != "" {
		env.Request.Intent = &pkgAlexa.Intent{Name: intent}
	}
	return env
}

func post(engine *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/alexa", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func postEnvelope(t *testing.T, engine *gin.Engine, env pkgAlexa.RequestEnvelope) (*httptest.ResponseRecorder, pkgAlexa.ResponseEnvelope) {
	t.Helper()
	body, _ := json.Marshal(env)
	w := post(engine, body)

	var out pkgAlexa.ResponseEnvelope
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal response envelope: %v", err)
		}
	}
	return w, out
}

func TestHandleRequest(t *testing.T) {
	t.Run("Ligar Success", func(t *testing.T) {
		var calls int32
		relaySrv := newRelayServer(&calls)
		defer relaySrv.Close()

		env := newTestEnv(t, relaySrv.URL+relay.DefaultPath, skill.Config{})
		w, out := postEnvelope(t, env.engine, envelope(pkgAlexa.RequestTypeIntent, lamp.IntentTurnOn))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := out.Response.OutputSpeech.Spoken(); got != lamp.SpeechTurnOnSuccess {
			t.Errorf("spoken = %q, want %q", got, lamp.SpeechTurnOnSuccess)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Errorf("expected one relay call, got %d", atomic.LoadInt32(&calls))
		}
	})

	t.Run("Desligar Success", func(t *testing.T) {
		var calls int32
		relaySrv := newRelayServer(&calls)
		defer relaySrv.Close()

		env := newTestEnv(t, relaySrv.URL, skill.Config{})
		_, out := postEnvelope(t, env.engine, envelope(pkgAlexa.RequestTypeIntent, lamp.IntentTurnOff))
		if got := out.Response.OutputSpeech.Spoken(); got != lamp.SpeechTurnOffSuccess {
			t.Errorf("spoken = %q, want %q", got, lamp.SpeechTurnOffSuccess)
		}
	})

	t.Run("Relay Down Speaks Failure", func(t *testing.T) {
		env := newTestEnv(t, deadRelayURL(), skill.Config{})

		w, out := postEnvelope(t, env.engine, envelope(pkgAlexa.RequestTypeIntent, lamp.IntentTurnOn))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 even when relay is down, got %d", w.Code)
		}
		if got := out.Response.OutputSpeech.Spoken(); got != lamp.SpeechTurnOnFailure {
			t.Errorf("spoken = %q, want %q", got, lamp.SpeechTurnOnFailure)
		}

		_, out = postEnvelope(t, env.engine, envelope(pkgAlexa.RequestTypeIntent, lamp.IntentTurnOff))
		if got := out.Response.OutputSpeech.Spoken(); got != lamp.SpeechTurnOffFailure {
			t.Errorf("spoken = %q, want %q", got, lamp.SpeechTurnOffFailure)
		}
	})

	t.Run("Launch Request Unhandled", func(t *testing.T) {
		var calls int32
		relaySrv := newRelayServer(&calls)
		defer relaySrv.Close()

		env := newTestEnv(t, relaySrv.URL, skill.Config{})
		w, _ := postEnvelope(t, env.engine, envelope(pkgAlexa.RequestTypeLaunch, ""))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Errorf("relay must not be called for unhandled requests")
		}
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		env := newTestEnv(t, deadRelayURL(), skill.Config{})
		w := post(env.engine, []byte("{bad json"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Skill ID Mismatch", func(t *testing.T) {
		var calls int32
		relaySrv := newRelayServer(&calls)
		defer relaySrv.Close()

		env := newTestEnv(t, relaySrv.URL, skill.Config{SkillID: "amzn1.ask.skill.other"})
		w, _ := postEnvelope(t, env.engine, envelope(pkgAlexa.RequestTypeIntent, lamp.IntentTurnOn))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Errorf("relay must not be called for rejected requests")
		}
	})
}

func TestInvoke(t *testing.T) {
	var calls int32
	relaySrv := newRelayServer(&calls)
	defer relaySrv.Close()

	env := newTestEnv(t, relaySrv.URL, skill.Config{SkillID: "amzn1.ask.skill.luminaria"})

	out, err := env.handler.Invoke(context.Background(), envelope(pkgAlexa.RequestTypeIntent, lamp.IntentTurnOff))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Version != pkgAlexa.EnvelopeVersion {
		t.Errorf("unexpected version %q", out.Version)
	}
	if got := out.Response.OutputSpeech.Spoken(); got != lamp.SpeechTurnOffSuccess {
		t.Errorf("spoken = %q, want %q", got, lamp.SpeechTurnOffSuccess)
	}

	_, err = env.handler.Invoke(context.Background(), envelope(pkgAlexa.RequestTypeSessionEnded, ""))
	if !errors.Is(err, pkgAlexa.ErrNoHandler) {
		t.Errorf("expected ErrNoHandler, got %v", err)
	}
}

func TestInvokeRequestTypeLabelBounded(t *testing.T) {
	env := newTestEnv(t, deadRelayURL(), skill.Config{})
	ctx := context.Background()

	// Reading the counter creates the series, so count after it.
	otherBefore := testutil.ToFloat64(telemetry.SkillRequestsTotal.WithLabelValues("other", "unhandled"))
	seriesBefore := testutil.CollectAndCount(telemetry.SkillRequestsTotal)

	for i := 0; i < 200; i++ {
		_, err := env.handler.Invoke(ctx, envelope(fmt.Sprintf("junk-%d", i), ""))
		if !errors.Is(err, pkgAlexa.ErrNoHandler) {
			t.Fatalf("expected ErrNoHandler, got %v", err)
		}
	}

	if got := testutil.CollectAndCount(telemetry.SkillRequestsTotal); got != seriesBefore {
		t.Errorf("series count grew from %d to %d", seriesBefore, got)
	}
	otherAfter := testutil.ToFloat64(telemetry.SkillRequestsTotal.WithLabelValues("other", "unhandled"))
	if otherAfter-otherBefore != 200 {
		t.Errorf("expected 200 requests labelled other, got %v", otherAfter-otherBefore)
	}
}
