package dto

import (
	"bytes"
	"encoding/json"
)

// NullableString distingue un campo JSON ausente de uno enviado como null.
// Set es true si la clave estaba presente; Value es nil si llegó null.
type NullableString struct {
	Set   bool
	Value *string
}

// NewNullableString valor presente (v nil equivale a null explícito).
func NewNullableString(v *string) NullableString {
	return NullableString{Set: true, Value: v}
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el cuerpo.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
