package domain

import (
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

// Payload is a decoded JSON request body. Entity constructors are the only
// place payload shape is validated; after successful construction every field
// is well-typed.
type Payload map[string]any

// requireFields reports NOT_CONTAIN_NEEDED_PROPERTY if any key is absent.
// Presence of every field is checked before any type, so a payload that is
// both incomplete and mistyped fails on the missing property first.
func requireFields(p Payload, entity string, keys ...string) error {
	for _, key := range keys {
		if _, ok := p[key]; !ok {
			return &internal_errors.ValidationError{Entity: entity, Kind: internal_errors.NeededProperty}
		}
	}
	return nil
}

// stringField type-checks an already-present field.
func stringField(p Payload, entity, key string) (string, error) {
	s, ok := p[key].(string)
	if !ok {
		return "", &internal_errors.ValidationError{Entity: entity, Kind: internal_errors.DataType}
	}
	return s, nil
}
