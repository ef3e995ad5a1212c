// Package jsonutil provides JSON conversion utilities.
package jsonutil

import (
	"encoding/json"
	"strings"
)

// FlexBool unmarshals a boolean that clients may send as a JSON bool,
// a string ("1", "true", "yes") or a number. Anything else is false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		*b = FlexBool(value)
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes":
			*b = true
		default:
			*b = false
		}
	case float64:
		*b = value != 0
	default:
		*b = false
	}
	return nil
}

// Bool returns the plain bool value.
func (b FlexBool) Bool() bool {
	return bool(b)
}
