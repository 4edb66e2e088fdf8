package lamp

import "context"

// UseCase defines the business logic interface for the lamp domain.
type UseCase interface {
	// Actuate pulses the relay once. It never retries.
	Actuate(ctx context.Context, input ActuateInput) (ActuateOutput, error)
}
