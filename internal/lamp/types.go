package lamp

// Action is what the user asked the lamp to do. The relay endpoint is a pulse
// toggle, so both actions hit the same endpoint; Action only labels logs and metrics.
type Action string

const (
	ActionOn  Action = "on"
	ActionOff Action = "off"
)

func (a Action) Valid() bool {
	return a == ActionOn || a == ActionOff
}

// ActuateInput is the input for a relay actuation.
type ActuateInput struct {
	Action Action
}

// ActuateOutput is the result of a successful actuation.
type ActuateOutput struct {
	Body string // raw relay response, never parsed
}
