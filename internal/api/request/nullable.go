package request

import (
	"bytes"
	"encoding/json"
)

// NullableFloat is a float field on a partial-update payload that
// distinguishes three states a plain *float64 cannot: absent (leave the
// target unchanged), explicit null (clear the target), and a value.
type NullableFloat struct {
	// Set reports whether the field appeared in the request body at all.
	Set bool
	// Valid reports whether a non-null value was supplied.
	Valid bool
	Value float64
}

func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// IsZero lets omitzero drop absent fields when a payload is re-encoded.
func (n NullableFloat) IsZero() bool { return !n.Set }

// NullableString is the string counterpart of NullableFloat.
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n NullableString) IsZero() bool { return !n.Set }
