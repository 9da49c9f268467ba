package models

import (
	"bytes"
	"encoding/json"
)

// Optional wraps a field of a partial-update request body so that an
// omitted key, an explicit null, and a concrete value remain
// distinguishable after unmarshaling. Only fields whose key was present
// in the request are written back to the stored entity.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked for keys present in the body, so Set is
// always true here; absent keys leave the zero Optional behind.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}
