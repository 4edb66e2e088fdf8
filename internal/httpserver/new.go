package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"luminaria-skill/internal/middleware"
	"luminaria-skill/internal/skill"
	"luminaria-skill/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Skill domain
	skillHandler skill.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string

	// Skill domain
	SkillHandler skill.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           middleware.New(logger, cfg.Middleware),
		skillHandler: cfg.SkillHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Engine exposes the gin engine, mainly for tests.
func (srv HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
