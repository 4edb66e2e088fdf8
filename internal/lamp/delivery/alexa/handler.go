package alexa

import (
	"context"

	"luminaria-skill/internal/lamp"
	pkgAlexa "luminaria-skill/pkg/alexa"
	pkgLog "luminaria-skill/pkg/log"
)

// intentHandler is one lamp intent. Both intents share this shape and differ
// only by intent name, action and phrases.
type intentHandler struct {
	l             pkgLog.Logger
	uc            lamp.UseCase
	intent        string
	action        lamp.Action
	successSpeech string
	failureSpeech string
}

func (h *intentHandler) CanHandle(input *pkgAlexa.HandlerInput) bool {
	req := input.RequestEnvelope.Request
	return req.Type == pkgAlexa.RequestTypeIntent &&
		req.Intent != nil &&
		req.Intent.Name == h.intent
}

// Handle always returns a response and a nil error; relay failures become the failure phrase.
func (h *intentHandler) Handle(ctx context.Context, input *pkgAlexa.HandlerInput) (pkgAlexa.Response, error) {
	out, err := h.uc.Actuate(ctx, lamp.ActuateInput{Action: h.action})
	if err != nil {
		h.l.Errorf(ctx, "internal.lamp.delivery.alexa.Handle: intent=%s request_id=%s: %v",
			h.intent, input.RequestEnvelope.Request.RequestID, err)
		return input.ResponseBuilder.Speak(h.failureSpeech).GetResponse(), nil
	}

	h.l.Debugf(ctx, "internal.lamp.delivery.alexa.Handle: intent=%s relay body=%q", h.intent, out.Body)
	return input.ResponseBuilder.Speak(h.successSpeech).GetResponse(), nil
}
