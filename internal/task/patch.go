package task

import (
	"bytes"
	"encoding/json"
)

// Optional carries a JSON attribute that may be absent, null, or a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Present reports whether the attribute was sent with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Patch is a partial update. Title, Description, DueDate and Priority are
// applied only when present and non-empty; Completed is applied whenever
// present, including false.
type Patch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	DueDate     Optional[string] `json:"dueDate"`
	Priority    Optional[string] `json:"priority"`
	Completed   Optional[bool]   `json:"completed"`
}
