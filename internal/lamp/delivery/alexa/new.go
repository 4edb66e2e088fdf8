package alexa

import (
	"luminaria-skill/internal/lamp"
	pkgAlexa "luminaria-skill/pkg/alexa"
	pkgLog "luminaria-skill/pkg/log"
)

// NewTurnOnHandler answers LigarIntent.
func NewTurnOnHandler(l pkgLog.Logger, uc lamp.UseCase) pkgAlexa.RequestHandler {
	return &intentHandler{
		l:             l,
		uc:            uc,
		intent:        lamp.IntentTurnOn,
		action:        lamp.ActionOn,
		successSpeech: lamp.SpeechTurnOnSuccess,
		failureSpeech: lamp.SpeechTurnOnFailure,
	}
}

// NewTurnOffHandler answers DesligarIntent.
func NewTurnOffHandler(l pkgLog.Logger, uc lamp.UseCase) pkgAlexa.RequestHandler {
	return &intentHandler{
		l:             l,
		uc:            uc,
		intent:        lamp.IntentTurnOff,
		action:        lamp.ActionOff,
		successSpeech: lamp.SpeechTurnOffSuccess,
		failureSpeech: lamp.SpeechTurnOffFailure,
	}
}
