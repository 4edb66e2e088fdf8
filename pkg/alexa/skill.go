package alexa

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNoHandler       = errors.New("unable to find a suitable request handler")
	ErrSkillIDMismatch = errors.New("skill id does not match the request application id")
	ErrNilHandler      = errors.New("nil request handler")
)

// HandlerInput is what a RequestHandler receives for one invocation.
type HandlerInput struct {
	RequestEnvelope RequestEnvelope
	ResponseBuilder *ResponseBuilder
}

// RequestHandler matches a subset of requests and answers them.
type RequestHandler interface {
	CanHandle(input *HandlerInput) bool
	Handle(ctx context.Context, input *HandlerInput) (Response, error)
}

// SkillBuilder collects handlers in registration order.
type SkillBuilder struct {
	handlers []RequestHandler
	skillID  string
	err      error
}

// Custom starts a custom skill definition.
func Custom() *SkillBuilder {
	return &SkillBuilder{}
}

func (b *SkillBuilder) AddRequestHandlers(handlers ...RequestHandler) *SkillBuilder {
	for _, h := range handlers {
		if h == nil {
			b.err = ErrNilHandler
			continue
		}
		b.handlers = append(b.handlers, h)
	}
	return b
}

// WithSkillID rejects requests whose application id differs from id. Empty disables the check.
func (b *SkillBuilder) WithSkillID(id string) *SkillBuilder {
	b.skillID = id
	return b
}

func (b *SkillBuilder) Create() (*Skill, error) {
	if b.err != nil {
		return nil, b.err
	}
	handlers := make([]RequestHandler, len(b.handlers))
	copy(handlers, b.handlers)
	return &Skill{handlers: handlers, skillID: b.skillID}, nil
}

// Skill dispatches request envelopes to the first handler that accepts them.
type Skill struct {
	handlers []RequestHandler
	skillID  string
}

// Invoke has the signature lambda.Start expects.
func (s *Skill) Invoke(ctx context.Context, env RequestEnvelope) (ResponseEnvelope, error) {
	if s.skillID != "" && env.ApplicationID() != s.skillID {
		return ResponseEnvelope{}, fmt.Errorf("%w: got %q", ErrSkillIDMismatch, env.ApplicationID())
	}

	input := &HandlerInput{
		RequestEnvelope: env,
		ResponseBuilder: NewResponseBuilder(),
	}

	for _, h := range s.handlers {
		if !h.CanHandle(input) {
			continue
		}
		resp, err := h.Handle(ctx, input)
		if err != nil {
			return ResponseEnvelope{}, err
		}
		return ResponseEnvelope{Version: EnvelopeVersion, Response: resp}, nil
	}

	return ResponseEnvelope{}, fmt.Errorf("%w: type=%s intent=%s", ErrNoHandler, env.Request.Type, env.IntentName())
}

// Handlers returns the registered handlers in dispatch order.
func (s *Skill) Handlers() []RequestHandler {
	out := make([]RequestHandler, len(s.handlers))
	copy(out, s.handlers)
	return out
}
