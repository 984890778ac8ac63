// Package invoke calls a deployed echo function and reads back its envelope.
package invoke

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Shape selects how the name is carried in the invocation event
type Shape string

const (
	// ShapeFlat puts the name at the top level of the event
	ShapeFlat Shape = "flat"
	// ShapeText puts the name inside a JSON-encoded string body
	ShapeText Shape = "text"
	// ShapeStructured puts the name inside an object body
	ShapeStructured Shape = "structured"
)

// Shapes lists the supported shapes, in help order
var Shapes = []Shape{ShapeFlat, ShapeText, ShapeStructured}

// ParseShape validates a shape name
func ParseShape(s string) (Shape, error) {
	for _, shape := range Shapes {
		if string(shape) == s {
			return shape, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q (want one of %v)", s, Shapes)
}

// BuildPayload builds an invocation event of the given shape. When omitName
// is set the event carries no name at all.
func BuildPayload(shape Shape, name string, omitName bool) ([]byte, error) {
	fields := []byte(`{}`)
	if !omitName {
		var err error
		fields, err = sjson.SetBytes(fields, "name", name)
		if err != nil {
			return nil, fmt.Errorf("setting name: %w", err)
		}
	}

	switch shape {
	case ShapeFlat:
		return fields, nil
	case ShapeText:
		payload, err := sjson.SetBytes([]byte(`{}`), "body", string(fields))
		if err != nil {
			return nil, fmt.Errorf("setting text body: %w", err)
		}
		return payload, nil
	case ShapeStructured:
		payload, err := sjson.SetRawBytes([]byte(`{}`), "body", fields)
		if err != nil {
			return nil, fmt.Errorf("setting structured body: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}
