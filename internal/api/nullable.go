package api

import (
	"bytes"
	"encoding/json"
)

// Nullable is a request field that tells an absent value apart from an explicit null.
// Use it with the omitzero tag option so absent values are not encoded.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Null is an explicitly cleared field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Of is a field set to v.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
