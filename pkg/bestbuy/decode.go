package bestbuy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// OrderedMap is a string-keyed mapping that preserves the key order of the
// JSON document it was decoded from. Nested objects decode as *OrderedMap,
// arrays as []any, and scalars as the usual encoding/json types.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// Keys returns the keys in document order. The slice is shared; callers
// must not modify it.
func (m *OrderedMap) Keys() []string {
	return m.keys
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

func (m *OrderedMap) set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// MarshalJSON renders the mapping with its keys in document order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("bestbuy: cannot decode %v into an object", tok)
	}
	return m.decodeFields(dec)
}

func (m *OrderedMap) decodeFields(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("bestbuy: object key is not a string: %v", tok)
		}
		val, err := decodeOrderedValue(dec)
		if err != nil {
			return err
		}
		m.set(key, val)
	}
	// Consume the closing brace.
	_, err := dec.Token()
	return err
}

func decodeOrderedValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch d := tok.(type) {
	case json.Delim:
		switch d {
		case '{':
			obj := &OrderedMap{}
			if err := obj.decodeFields(dec); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			var arr []any
			for dec.More() {
				v, err := decodeOrderedValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("bestbuy: unexpected delimiter %v", d)
		}
	default:
		return tok, nil
	}
}

// decode turns a raw response body into the value handed back to callers.
// Raw mode skips parsing and returns the trimmed text. Otherwise the body
// is parsed as JSON: objects decode as *OrderedMap when associative is set,
// as map[string]any when not; arrays decode as []any in both modes.
//
// A body that fails to parse decodes to nil rather than an error. The API
// occasionally serves empty or truncated bodies on otherwise-successful
// responses, and callers are expected to treat missing data as "no data".
func decode(raw []byte, associative, rawMode bool) any {
	if rawMode {
		return strings.TrimSpace(string(raw))
	}

	if associative {
		dec := json.NewDecoder(bytes.NewReader(raw))
		v, err := decodeOrderedValue(dec)
		if err != nil {
			return nil
		}
		return v
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
