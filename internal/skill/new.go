package skill

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"luminaria-skill/internal/lamp"
	lampAlexa "luminaria-skill/internal/lamp/delivery/alexa"
	pkgAlexa "luminaria-skill/pkg/alexa"
	pkgLog "luminaria-skill/pkg/log"
)

// Handler exposes the skill to both transports.
type Handler interface {
	// HandleRequest is the Gin handler for the HTTPS skill endpoint.
	HandleRequest(c *gin.Context)

	// Invoke dispatches one envelope; it is the Lambda entry point.
	Invoke(ctx context.Context, env pkgAlexa.RequestEnvelope) (pkgAlexa.ResponseEnvelope, error)
}

type Config struct {
	// SkillID, when set, must match the envelope application id.
	SkillID string
}

type handler struct {
	l     pkgLog.Logger
	skill *pkgAlexa.Skill
}

// New registers the lamp intent handlers, turn on first then turn off.
func New(l pkgLog.Logger, uc lamp.UseCase, cfg Config) (Handler, error) {
	sk, err := pkgAlexa.Custom().
		AddRequestHandlers(
			lampAlexa.NewTurnOnHandler(l, uc),
			lampAlexa.NewTurnOffHandler(l, uc),
		).
		WithSkillID(cfg.SkillID).
		Create()
	if err != nil {
		return nil, fmt.Errorf("internal.skill.New: %w", err)
	}

	return &handler{l: l, skill: sk}, nil
}
