package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ordered is a string-keyed map that preserves insertion order.
//
// The aggregate's directory/file nesting, the condensed projection's
// concatenation order, and the frequency report's tie-break order all
// depend on iteration following insertion. encoding/json sorts plain map
// keys lexicographically, so Ordered marshals itself key by key instead.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrdered creates an empty ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{values: make(map[string]V)}
}

// Set stores a value, appending the key on first insertion.
// Re-setting an existing key keeps its original position.
func (o *Ordered[V]) Set(key string, value V) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether it is present.
func (o *Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Ordered[V]) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Ordered[V]) Len() int {
	return len(o.keys)
}

// Reorder replaces the key order. Every key must already be present;
// unknown keys are ignored, missing keys are dropped from iteration.
func (o *Ordered[V]) Reorder(keys []string) {
	ordered := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := o.values[k]; ok {
			ordered = append(ordered, k)
		}
	}
	o.keys = ordered
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (o *Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording keys in document order.
func (o *Ordered[V]) UnmarshalJSON(data []byte) error {
	o.keys = nil
	o.values = make(map[string]V)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected JSON object", ErrInvalidInput)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected object key", ErrInvalidInput)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return err
		}
		o.Set(key, v)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
