package alexa

// Request types delivered by the platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Output speech types.
const (
	SpeechTypeSSML      = "SSML"
	SpeechTypePlainText = "PlainText"
)

// EnvelopeVersion is the version written on every response envelope.
const EnvelopeVersion = "1.0"

// RequestEnvelope is the JSON body the platform posts for every invocation.
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/request-and-response-json-reference.html
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        User           `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application Application `json:"application"`
	User        User        `json:"user"`
	APIEndpoint string      `json:"apiEndpoint,omitempty"`
}

// Request is the typed part of the envelope. Intent is nil for non-intent requests.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ResponseEnvelope is what the skill returns to the platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

// IntentName returns the intent name, or "" when the request carries no intent.
func (e RequestEnvelope) IntentName() string {
	if e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// ApplicationID prefers context.System over session, as the platform omits
// the session for out-of-session requests.
func (e RequestEnvelope) ApplicationID() string {
	if e.Context != nil && e.Context.System.Application.ApplicationID != "" {
		return e.Context.System.Application.ApplicationID
	}
	if e.Session != nil {
		return e.Session.Application.ApplicationID
	}
	return ""
}
