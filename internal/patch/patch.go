// Package patch converts raw JSON bodies into typed, allow-listed update
// sets. It preserves the distinction between a field that was not sent
// (left untouched) and a field sent as null (overwritten with NULL), which
// struct-based decoding would collapse.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind identifies the value type a field accepts.
type Kind int

const (
	String Kind = iota
	Int
	Float
)

// Field maps a JSON field name onto its database column and value kind.
type Field struct {
	Column string
	Kind   Kind
}

// Spec is the allow-list of patchable fields for one entity, keyed by the
// JSON field name clients use.
type Spec map[string]Field

// UnknownFieldError reports a field outside the entity's allow-list.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// InvalidValueError reports a field whose value could not be decoded as the
// declared kind.
type InvalidValueError struct {
	Name string
	Err  error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %v", e.Name, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// IsFieldError reports whether err was raised by patch parsing and should be
// treated as a client error.
func IsFieldError(err error) bool {
	var unknown *UnknownFieldError
	var invalid *InvalidValueError
	return errors.As(err, &unknown) || errors.As(err, &invalid)
}

// Update is the parsed result: column → value, where a value may be a typed
// nil pointer representing an explicit NULL.
type Update struct {
	values map[string]interface{}
}

// Empty reports whether the patch named no fields at all.
func (u Update) Empty() bool {
	return len(u.values) == 0
}

// Len returns the number of fields named by the patch.
func (u Update) Len() int {
	return len(u.values)
}

// Values returns a copy of the column → value assignments.
func (u Update) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(u.values))
	for column, value := range u.values {
		out[column] = value
	}
	return out
}

// Parse decodes body against spec. Keys absent from body are absent from the
// result; keys present with a null value map to typed nil pointers so the
// store writes NULL. Keys outside the allow-list fail with UnknownFieldError.
func Parse(body []byte, spec Spec) (Update, error) {
	if len(body) == 0 {
		return Update{values: map[string]interface{}{}}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Update{}, fmt.Errorf("malformed patch body: %w", err)
	}

	values := make(map[string]interface{}, len(raw))
	for name, message := range raw {
		field, ok := spec[name]
		if !ok {
			return Update{}, &UnknownFieldError{Name: name}
		}

		value, err := decodeValue(message, field.Kind)
		if err != nil {
			return Update{}, &InvalidValueError{Name: name, Err: err}
		}
		values[field.Column] = value
	}

	return Update{values: values}, nil
}

func decodeValue(message json.RawMessage, kind Kind) (interface{}, error) {
	switch kind {
	case Int:
		var v *int
		if err := json.Unmarshal(message, &v); err != nil {
			return nil, err
		}
		return v, nil
	case Float:
		var v *float64
		if err := json.Unmarshal(message, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		var v *string
		if err := json.Unmarshal(message, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
