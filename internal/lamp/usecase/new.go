package usecase

import (
	"luminaria-skill/internal/lamp"
	pkgLog "luminaria-skill/pkg/log"
	"luminaria-skill/pkg/relay"
)

type implUseCase struct {
	l     pkgLog.Logger
	relay relay.IRelay
}

var _ lamp.UseCase = (*implUseCase)(nil)

// New creates a new lamp UseCase instance.
func New(l pkgLog.Logger, relay relay.IRelay) *implUseCase {
	return &implUseCase{
		l:     l,
		relay: relay,
	}
}
