package fragment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Member is one key/value pair of an Object. Value holds the raw JSON of the
// value exactly as read.
type Member struct {
	Key   string
	Value json.RawMessage
}

// Object is a JSON object that remembers the order of its keys. Go maps do
// not, and fragment rewrites must keep every key where it was.
type Object struct {
	members []Member
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// DecodeObject parses data, which must hold exactly one JSON object.
// Duplicate keys keep the position of their first occurrence and the value
// of their last.
func DecodeObject(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, unexpectedEOF(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("top-level value is not an object")
	}

	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, unexpectedEOF(err)
		}
		obj.Set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level object")
	}
	return obj, nil
}

// Get returns the raw value stored under key.
func (o *Object) Get(key string) (json.RawMessage, bool) {
	if i := o.index(key); i >= 0 {
		return o.members[i].Value, true
	}
	return nil, false
}

// Set stores value under key, in place if key exists, appended otherwise.
func (o *Object) Set(key string, value json.RawMessage) {
	if i := o.index(key); i >= 0 {
		o.members[i].Value = value
		return
	}
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Replace returns a new object where key is substituted, at its position, by
// the given members. Members after the first that repeat an earlier key
// overwrite it in place. ok is false when key is absent.
func (o *Object) Replace(key string, with ...Member) (replaced *Object, ok bool) {
	if o.index(key) < 0 {
		return o, false
	}
	out := NewObject()
	for _, m := range o.members {
		if m.Key != key {
			out.Set(m.Key, m.Value)
			continue
		}
		for _, w := range with {
			out.Set(w.Key, w.Value)
		}
	}
	return out, true
}

// MarshalJSON writes the object compactly, keys in order, without HTML
// escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(&buf, m.Value); err != nil {
			return nil, fmt.Errorf("value of %q: %w", m.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) index(key string) int {
	for i, m := range o.members {
		if m.Key == key {
			return i
		}
	}
	return -1
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func marshalString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
