package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Skill specifics
	Relay RelayConfig
	Skill SkillConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies may set X-Forwarded-For; empty trusts none and keys clients by peer address.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// RelayConfig points at the device endpoint that pulses the relay.
type RelayConfig struct {
	URL         string
	Path        string // appended to the detected ngrok URL
	NgrokAPIURL string // ngrok local API, used only when URL is empty
	Timeout     time.Duration
	Breaker     BreakerConfig
}

type BreakerConfig struct {
	Enabled          bool
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type SkillConfig struct {
	ID string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetStringSlice("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Relay
	cfg.Relay.URL = strings.TrimSpace(v.GetString("relay.url"))
	cfg.Relay.Path = v.GetString("relay.path")
	cfg.Relay.NgrokAPIURL = v.GetString("relay.ngrok_api_url")
	cfg.Relay.Timeout = v.GetDuration("relay.timeout")
	cfg.Relay.Breaker.Enabled = v.GetBool("relay.breaker.enabled")
	cfg.Relay.Breaker.MaxRequests = v.GetUint32("relay.breaker.max_requests")
	cfg.Relay.Breaker.Interval = v.GetDuration("relay.breaker.interval")
	cfg.Relay.Breaker.Timeout = v.GetDuration("relay.breaker.timeout")
	cfg.Relay.Breaker.FailureThreshold = v.GetUint32("relay.breaker.failure_threshold")

	// Skill
	cfg.Skill.ID = v.GetString("skill.id")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	// Relay defaults: a single attempt with no client timeout
	v.SetDefault("relay.url", "")
	v.SetDefault("relay.path", "/acionar-rele")
	v.SetDefault("relay.ngrok_api_url", "")
	v.SetDefault("relay.timeout", "0s")
	v.SetDefault("relay.breaker.enabled", false)
	v.SetDefault("relay.breaker.max_requests", 1)
	v.SetDefault("relay.breaker.interval", "60s")
	v.SetDefault("relay.breaker.timeout", "30s")
	v.SetDefault("relay.breaker.failure_threshold", 5)

	v.SetDefault("skill.id", "")
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	if cfg.Relay.URL != "" {
		u, err := url.Parse(cfg.Relay.URL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("relay.url must be an absolute http(s) URL, got %q", cfg.Relay.URL)
		}
	}
	return nil
}

// splitList accepts both a YAML list and a comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
