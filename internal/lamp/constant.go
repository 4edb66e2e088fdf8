package lamp

// Intent names configured in the interaction model.
const (
	IntentTurnOn  = "LigarIntent"
	IntentTurnOff = "DesligarIntent"
)

// Spoken phrases, one success and one failure per intent.
const (
	SpeechTurnOnSuccess  = "Luminária ligada com sucesso!"
	SpeechTurnOnFailure  = "Houve um erro ao ligar a luminária."
	SpeechTurnOffSuccess = "Luminária desligada com sucesso!"
	SpeechTurnOffFailure = "Houve um erro ao desligar a luminária."
)

// Log prefixes
const (
	LogPrefixActuate = "internal.lamp.usecase.Actuate"
)
