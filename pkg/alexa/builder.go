package alexa

import "strings"

const (
	speakOpen  = "<speak>"
	speakClose = "</speak>"
)

// ResponseBuilder assembles a Response. A fresh builder is handed to every handler.
type ResponseBuilder struct {
	resp Response
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// Speak sets the output speech as SSML. Surrounding <speak> tags in text are dropped
// before wrapping, so callers may pass either plain text or a complete SSML document.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = &OutputSpeech{
		Type: SpeechTypeSSML,
		SSML: speakOpen + trimSpeak(text) + speakClose,
	}
	return b
}

func (b *ResponseBuilder) GetResponse() Response {
	return b.resp
}

// Spoken returns the speech text without SSML wrapping.
func (o *OutputSpeech) Spoken() string {
	if o == nil {
		return ""
	}
	if o.Type == SpeechTypePlainText {
		return o.Text
	}
	return trimSpeak(o.SSML)
}

func trimSpeak(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, speakOpen)
	s = strings.TrimSuffix(s, speakClose)
	return strings.TrimSpace(s)
}
