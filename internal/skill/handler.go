package skill

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luminaria-skill/internal/telemetry"
	pkgAlexa "luminaria-skill/pkg/alexa"
	pkgLog "luminaria-skill/pkg/log"
	pkgResponse "luminaria-skill/pkg/response"
)

const (
	resultHandled   = "handled"
	resultUnhandled = "unhandled"
	resultRejected  = "rejected"
	resultError     = "error"

	requestTypeOther = "other"
)

// requestTypeLabel keeps the request_type label to a closed set; the type comes
// from the request body.
func requestTypeLabel(t string) string {
	switch t {
	case pkgAlexa.RequestTypeLaunch, pkgAlexa.RequestTypeIntent, pkgAlexa.RequestTypeSessionEnded:
		return t
	default:
		return requestTypeOther
	}
}

// HandleRequest answers the platform over HTTPS.
// @Summary Alexa skill endpoint
// @Description Receives an Alexa request envelope and answers with a response envelope
// @Tags Skill
// @Accept json
// @Produce json
// @Param request body alexa.RequestEnvelope true "Alexa request envelope"
// @Success 200 {object} alexa.ResponseEnvelope
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /alexa [post]
func (h *handler) HandleRequest(c *gin.Context) {
	ctx := c.Request.Context()

	var env pkgAlexa.RequestEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.l.Errorf(ctx, "internal.skill.HandleRequest: failed to parse envelope: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := h.Invoke(ctx, env)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, out)
	case errors.Is(err, pkgAlexa.ErrSkillIDMismatch):
		pkgResponse.Unauthorized(c)
	case errors.Is(err, pkgAlexa.ErrNoHandler):
		pkgResponse.Error(c, err, nil)
	default:
		pkgResponse.InternalError(c, err)
	}
}

func (h *handler) Invoke(ctx context.Context, env pkgAlexa.RequestEnvelope) (pkgAlexa.ResponseEnvelope, error) {
	if pkgLog.RequestID(ctx) == "" && env.Request.RequestID != "" {
		ctx = pkgLog.WithRequestID(ctx, env.Request.RequestID)
	}

	h.l.Infof(ctx, "internal.skill.Invoke: type=%s intent=%s", env.Request.Type, env.IntentName())

	out, err := h.skill.Invoke(ctx, env)
	reqType := requestTypeLabel(env.Request.Type)
	switch {
	case err == nil:
		telemetry.SkillRequestsTotal.WithLabelValues(reqType, resultHandled).Inc()
	case errors.Is(err, pkgAlexa.ErrSkillIDMismatch):
		telemetry.SkillRequestsTotal.WithLabelValues(reqType, resultRejected).Inc()
		h.l.Warnf(ctx, "internal.skill.Invoke: %v", err)
	case errors.Is(err, pkgAlexa.ErrNoHandler):
		telemetry.SkillRequestsTotal.WithLabelValues(reqType, resultUnhandled).Inc()
		h.l.Warnf(ctx, "internal.skill.Invoke: %v", err)
	default:
		telemetry.SkillRequestsTotal.WithLabelValues(reqType, resultError).Inc()
		h.l.Errorf(ctx, "internal.skill.Invoke: %v", err)
	}
	return out, err
}
