package greeting

// BodyKind identifies which shape an invocation event arrived in
type BodyKind int

const (
	// MissingBody means the event has no "body" key; the name lives at the top level
	MissingBody BodyKind = iota
	// TextBody means "body" is a string holding JSON text
	TextBody
	// StructuredBody means "body" is an already decoded JSON object
	StructuredBody
	// UnsupportedBody means "body" is present but neither text nor an object
	UnsupportedBody
)

// String returns the shape name used in logs
func (k BodyKind) String() string {
	switch k {
	case MissingBody:
		return "flat"
	case TextBody:
		return "text"
	case StructuredBody:
		return "structured"
	case UnsupportedBody:
		return "unsupported"
	default:
		return "unknown"
	}
}

const (
	bodyKey          = "body"
	nameKey          = "name"
	base64EncodedKey = "isBase64Encoded"
)

// Payload is a classified invocation event. Only the fields relevant to its
// Kind are populated.
type Payload struct {
	Kind BodyKind

	// Text holds the raw body for TextBody
	Text string
	// Base64 is set when the event flagged its text body as base64 encoded
	Base64 bool

	// Fields holds the body object for StructuredBody, or the event itself
	// for MissingBody
	Fields map[string]any

	// Raw holds the offending body value for UnsupportedBody
	Raw any
}

// Classify inspects an event and tags it with its body shape. The event is
// not modified and no decoding happens here.
func Classify(event map[string]any) Payload {
	raw, ok := event[bodyKey]
	if !ok {
		return Payload{Kind: MissingBody, Fields: event}
	}

	switch body := raw.(type) {
	case string:
		encoded, _ := event[base64EncodedKey].(bool)
		return Payload{Kind: TextBody, Text: body, Base64: encoded}
	case map[string]any:
		return Payload{Kind: StructuredBody, Fields: body}
	default:
		return Payload{Kind: UnsupportedBody, Raw: raw}
	}
}
