package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	VoiceCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "luminaria_voice_commands_total",
		Help: "Voice commands processed, by lamp action and relay outcome",
	}, []string{"action", "status"})

	RelayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "luminaria_relay_latency_seconds",
		Help:    "Latency of the relay endpoint call",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	SkillRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "luminaria_skill_requests_total",
		Help: "Skill envelopes received, by request type and dispatch result",
	}, []string{"request_type", "result"})
)
