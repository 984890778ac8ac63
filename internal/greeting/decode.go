package greeting

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is the cause recorded when a body or event is not a JSON object
var ErrNotObject = errors.New("not a JSON object")

// DecodeError reports that a name could not be read from an event, either
// because its text body is not valid JSON or because the body has a shape
// that holds no fields.
type DecodeError struct {
	Kind BodyKind
	Err  error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Name is an optional name extracted from an event
type Name struct {
	value   string
	present bool
}

// NameOf returns a present name with the given value
func NameOf(value string) Name {
	return Name{value: value, present: true}
}

// Present reports whether the event carried a non-null name
func (n Name) Present() bool {
	return n.present
}

// Value returns the name, or the empty string when absent
func (n Name) Value() string {
	return n.value
}

// ExtractName reads the "name" field from a classified payload. Absent and
// null names are not errors; they yield a Name that is not present.
func ExtractName(p Payload) (Name, error) {
	switch p.Kind {
	case MissingBody, StructuredBody:
		return nameFrom(p.Kind, p.Fields)
	case TextBody:
		fields, err := decodeText(p.Text, p.Base64)
		if err != nil {
			return Name{}, &DecodeError{Kind: p.Kind, Err: err}
		}
		return nameFrom(p.Kind, fields)
	default:
		return Name{}, &DecodeError{
			Kind: p.Kind,
			Err:  fmt.Errorf("body is %w: got %s", ErrNotObject, describe(p.Raw)),
		}
	}
}

func decodeText(text string, encoded bool) (map[string]any, error) {
	data := []byte(text)
	if encoded {
		decoded, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 body: %w", err)
		}
		data = decoded
	}

	return decodeObject("body", data)
}

// DecodeEvent decodes a raw invocation event. Anything other than a JSON
// object is a *DecodeError. Numbers keep their exact text.
func DecodeEvent(data []byte) (map[string]any, error) {
	fields, err := decodeObject("event", data)
	if err != nil {
		return nil, &DecodeError{Kind: UnsupportedBody, Err: err}
	}
	return fields, nil
}

func decodeObject(subject string, data []byte) (map[string]any, error) {
	// Unmarshal reports syntax errors, trailing data included
	if err := json.Unmarshal(data, new(json.RawMessage)); err != nil {
		return nil, err
	}

	var value any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is %w: got %s", subject, ErrNotObject, describe(value))
	}
	return fields, nil
}

func nameFrom(kind BodyKind, fields map[string]any) (Name, error) {
	raw, ok := fields[nameKey]
	if !ok || raw == nil {
		return Name{}, nil
	}
	if s, ok := raw.(string); ok {
		return NameOf(s), nil
	}

	// Non-string names are rendered as compact JSON
	encoded, err := json.Marshal(raw)
	if err != nil {
		return Name{}, &DecodeError{Kind: kind, Err: fmt.Errorf("unreadable name: %w", err)}
	}
	return NameOf(string(encoded)), nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case float64, json.Number, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
