package clickup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind identifies what a Shape accepts.
type Kind int

// Shape kinds.
const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindUndefined
	KindArray
	KindObject
	KindUnion
)

// Shape is a declarative description of a JSON value. Object shapes are
// shared through package variables, so a field naming another record's
// shape acts as a reference to it.
type Shape struct {
	Kind    Kind
	Name    string
	Items   *Shape
	Fields  []FieldShape
	Members []*Shape
}

// FieldShape declares one member of an object shape.
type FieldShape struct {
	Name  string
	Shape *Shape
}

var (
	anyShape       = &Shape{Kind: KindAny}
	stringShape    = &Shape{Kind: KindString}
	numberShape    = &Shape{Kind: KindNumber}
	boolShape      = &Shape{Kind: KindBool}
	nullShape      = &Shape{Kind: KindNull}
	undefinedShape = &Shape{Kind: KindUndefined}
)

// Any accepts every value, including an absent member.
func Any() *Shape { return anyShape }

// String accepts a JSON string.
func String() *Shape { return stringShape }

// Number accepts a JSON number.
func Number() *Shape { return numberShape }

// Bool accepts a JSON boolean.
func Bool() *Shape { return boolShape }

// Null accepts JSON null.
func Null() *Shape { return nullShape }

// Undefined accepts an absent object member.
func Undefined() *Shape { return undefinedShape }

// ArrayOf accepts a JSON array whose elements all match items.
func ArrayOf(items *Shape) *Shape {
	return &Shape{Kind: KindArray, Items: items}
}

// Union accepts a value matching any member, tried in order.
func Union(members ...*Shape) *Shape {
	return &Shape{Kind: KindUnion, Members: members}
}

// Nullable accepts null or s.
func Nullable(s *Shape) *Shape {
	return Union(Null(), s)
}

// Optional accepts an absent member or s.
func Optional(s *Shape) *Shape {
	return Union(Undefined(), s)
}

// Object declares a named object shape. Members not listed in fields are
// accepted and copied through unchanged.
func Object(name string, fields ...FieldShape) *Shape {
	return &Shape{Kind: KindObject, Name: name, Fields: fields}
}

// Field declares an object member.
func Field(name string, s *Shape) FieldShape {
	return FieldShape{Name: name, Shape: s}
}

// String renders the shape the way validation errors report it.
func (s *Shape) String() string {
	switch s.Kind {
	case KindAny:
		return "any"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindArray:
		return "array<" + s.Items.String() + ">"
	case KindObject:
		if s.Name != "" {
			return s.Name
		}

		return "object"
	case KindUnion:
		names := make([]string, 0, len(s.Members))
		for _, m := range s.Members {
			names = append(names, m.String())
		}

		return strings.Join(names, " | ")
	default:
		return fmt.Sprintf("kind(%d)", s.Kind)
	}
}

// Transform validates value against shape and returns the validated copy.
// value is expected to come from a json.Decoder with UseNumber enabled.
func Transform(value any, shape *Shape) (any, error) {
	return transform(value, true, shape, "", "$")
}

func transform(value any, present bool, shape *Shape, key, path string) (any, error) {
	switch shape.Kind {
	case KindAny:
		return value, nil
	case KindUndefined:
		if !present {
			return nil, nil
		}
	case KindNull:
		if present && value == nil {
			return nil, nil
		}
	case KindString:
		if v, ok := value.(string); ok && present {
			return v, nil
		}
	case KindNumber:
		if present && isNumber(value) {
			return value, nil
		}
	case KindBool:
		if v, ok := value.(bool); ok && present {
			return v, nil
		}
	case KindUnion:
		for _, member := range shape.Members {
			out, err := transform(value, present, member, key, path)
			if err == nil {
				return out, nil
			}
		}
	case KindArray:
		items, ok := value.([]any)
		if !ok || !present {
			break
		}

		out := make([]any, len(items))
		for i, item := range items {
			v, err := transform(item, true, shape.Items, key, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil
	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok || !present {
			break
		}

		return transformObject(obj, shape, path)
	}

	return nil, &ValidationError{
		Key:      key,
		Path:     path,
		Expected: shape.String(),
		Actual:   describe(value, present),
	}
}

func transformObject(obj map[string]any, shape *Shape, path string) (any, error) {
	out := make(map[string]any, len(obj))
	declared := make(map[string]struct{}, len(shape.Fields))

	for _, field := range shape.Fields {
		declared[field.Name] = struct{}{}

		v, ok := obj[field.Name]

		result, err := transform(v, ok, field.Shape, field.Name, path+"."+field.Name)
		if err != nil {
			return nil, err
		}

		if ok {
			out[field.Name] = result
		}
	}

	for name, v := range obj {
		if _, ok := declared[name]; !ok {
			out[name] = v
		}
	}

	return out, nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, float32, int, int64, int32, uint, uint64:
		return true
	default:
		return false
	}
}

func describe(value any, present bool) string {
	if !present {
		return "undefined"
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// decodeValue decodes a single JSON document preserving number literals.
func decodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any

	err := dec.Decode(&v)
	if err != nil {
		return nil, err
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return v, nil
}

// ValidateJSON checks data against shape.
func ValidateJSON(data []byte, shape *Shape) error {
	v, err := decodeValue(data)
	if err != nil {
		return &ParseError{Err: err}
	}

	_, err = Transform(v, shape)

	return err
}

// ValidateEnvelope checks that data is an object whose member key is an
// array of shape. The member must be present.
func ValidateEnvelope(data []byte, key string, shape *Shape) error {
	return ValidateJSON(data, Object(key+" envelope", Field(key, ArrayOf(shape))))
}

// parseStrict validates data against shape and decodes the validated value into T.
func parseStrict[T any](data []byte, shape *Shape) (*T, error) {
	v, err := decodeValue(data)
	if err != nil {
		return nil, &ParseError{Resource: shape.Name, Err: err}
	}

	validated, err := Transform(v, shape)
	if err != nil {
		return nil, err
	}

	canonical, err := json.Marshal(validated)
	if err != nil {
		return nil, fmt.Errorf("encoding validated %s: %w", shape.Name, err)
	}

	var record T

	err = json.Unmarshal(canonical, &record)
	if err != nil {
		return nil, &ParseError{Resource: shape.Name, Err: err}
	}

	return &record, nil
}

// serializeStrict encodes record and validates the encoding against shape.
func serializeStrict(record any, shape *Shape) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", shape.Name, err)
	}

	v, err := decodeValue(data)
	if err != nil {
		return nil, &ParseError{Resource: shape.Name, Err: err}
	}

	validated, err := Transform(v, shape)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(validated, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding validated %s: %w", shape.Name, err)
	}

	return out, nil
}
