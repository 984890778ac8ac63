// Package greeting turns an invocation event of unknown shape into a
// response envelope carrying a greeting or a description of why the event
// could not be read.
package greeting

import "net/http"

// Anonymous is substituted when an event carries no name
const Anonymous = "anonymous"

// InvalidInputPrefix starts the body of every 400 envelope
const InvalidInputPrefix = "Invalid input: "

// Envelope is the result of handling one invocation
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// OK reports whether the envelope carries a greeting
func (e Envelope) OK() bool {
	return e.StatusCode == http.StatusOK
}

// Greet builds the greeting for a name. Only an absent name falls back to
// Anonymous; an empty name is kept as is.
func Greet(name Name) string {
	value := Anonymous
	if name.Present() {
		value = name.Value()
	}
	return "Hello, " + value + "!"
}

// Handle classifies the event, extracts its name and returns the envelope.
// It never fails: unreadable events produce a 400 envelope.
func Handle(event map[string]any) Envelope {
	name, err := ExtractName(Classify(event))
	if err != nil {
		return Invalid(err)
	}
	return Envelope{StatusCode: http.StatusOK, Body: Greet(name)}
}

// Invalid builds the 400 envelope for a failure
func Invalid(err error) Envelope {
	return Envelope{StatusCode: http.StatusBadRequest, Body: InvalidInputPrefix + err.Error()}
}
