// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import "errors"

func marshalJSONValue(v Value) ([]byte, error) {
	s := valueString(v)
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	return append(out, '"'), nil
}

// unmarshalJSONValue accepts both a quoted literal and a bare number.
func unmarshalJSONValue(dst Setter, data []byte) error {
	if len(data) == 0 {
		return errors.New("empty json")
	}
	if data[0] == '"' {
		if len(data) < 2 || data[len(data)-1] != '"' {
			return errors.New("unterminated string")
		}
		data = data[1 : len(data)-1]
	}
	return Parse(dst, string(data))
}

// MarshalText implements encoding.TextMarshaler.
func (x Fix[S, F]) MarshalText() ([]byte, error) { return []byte(valueString(x)), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Fix[S, F]) UnmarshalText(data []byte) error { return Parse(x, string(data)) }

// MarshalJSON marshals the value as a string.
func (x Fix[S, F]) MarshalJSON() ([]byte, error) { return marshalJSONValue(x) }

// UnmarshalJSON unmarshals a string or a number into the value.
func (x *Fix[S, F]) UnmarshalJSON(data []byte) error { return unmarshalJSONValue(x, data) }

// MarshalText implements encoding.TextMarshaler.
func (x Fix128[F, G]) MarshalText() ([]byte, error) { return []byte(valueString(x)), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Fix128[F, G]) UnmarshalText(data []byte) error { return Parse(x, string(data)) }

// MarshalJSON marshals the value as a string.
func (x Fix128[F, G]) MarshalJSON() ([]byte, error) { return marshalJSONValue(x) }

// UnmarshalJSON unmarshals a string or a number into the value.
func (x *Fix128[F, G]) UnmarshalJSON(data []byte) error { return unmarshalJSONValue(x, data) }
