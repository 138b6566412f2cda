package fragment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent is the indentation of pretty-printed fragment files.
const Indent = "    "

// Pretty re-indents raw JSON with four spaces per level. No trailing
// newline is added.
func Pretty(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", Indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compact strips insignificant whitespace from raw JSON.
func Compact(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Array joins already-compact JSON values into a JSON array.
func Array(values []json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// Normalize compacts raw JSON and collapses repeated object keys, at any
// depth, to the last value at the first key's position.
func Normalize(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Compact(raw)
	}

	switch raw[0] {
	case '{':
		obj, err := DecodeObject(raw)
		if err != nil {
			return nil, err
		}
		for i, m := range obj.members {
			v, err := Normalize(m.Value)
			if err != nil {
				return nil, fmt.Errorf("value of %q: %w", m.Key, err)
			}
			obj.members[i].Value = v
		}
		return obj.MarshalJSON()
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		for i, item := range items {
			v, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return Array(items), nil
	}
	return Compact(raw)
}

// PrettyObject renders o with four-space indentation.
func PrettyObject(o *Object) ([]byte, error) {
	compact, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	normalized, err := Normalize(compact)
	if err != nil {
		return nil, err
	}
	return Pretty(normalized)
}
