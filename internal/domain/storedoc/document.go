// Package storedoc gives typed, fail-soft access to the opaque JSON payloads
// stored next to store rows (full data and SEO metadata).
//
// Every accessor returns ok=false instead of an error when the path is missing
// or the value has the wrong shape.
package storedoc

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Document is a parsed JSON object. The zero value is an empty document.
type Document struct {
	root map[string]any
}

// Parse decodes raw into a Document. A payload that is itself a JSON string
// holding an encoded object is decoded once more. Malformed input yields an
// empty document.
func Parse(raw []byte) Document {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Document{}
	}

	var value any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&value); err != nil {
		return Document{}
	}

	switch v := value.(type) {
	case map[string]any:
		return Document{root: v}
	case string:
		if inner := strings.TrimSpace(v); strings.HasPrefix(inner, "{") {
			return Parse([]byte(inner))
		}
	}

	return Document{}
}

// FromMap wraps an already decoded object.
func FromMap(m map[string]any) Document {
	return Document{root: m}
}

// IsEmpty reports whether the document has no keys.
func (d Document) IsEmpty() bool {
	return len(d.root) == 0
}

// Map returns the underlying object.
func (d Document) Map() map[string]any {
	return d.root
}

// Lookup walks path and returns the raw value. Segments that parse as integers
// index into arrays.
func (d Document) Lookup(path ...string) (any, bool) {
	if d.root == nil {
		return nil, false
	}

	var current any = d.root
	for _, segment := range path {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}

	if current == nil {
		return nil, false
	}

	return current, true
}

// String returns a string at path. Only JSON strings qualify.
func (d Document) String(path ...string) (string, bool) {
	value, ok := d.Lookup(path...)
	if !ok {
		return "", false
	}

	s, ok := value.(string)

	return s, ok
}

// NonEmptyString is String that also rejects empty and whitespace-only values.
func (d Document) NonEmptyString(path ...string) (string, bool) {
	s, ok := d.String(path...)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}

	return s, true
}

// Number returns a scalar coerced to float64. Numeric strings are accepted;
// objects, arrays, booleans and unparsable strings are absent.
func (d Document) Number(path ...string) (float64, bool) {
	value, ok := d.Lookup(path...)
	if !ok {
		return 0, false
	}

	return ToNumber(value)
}

// Document returns the object at path.
func (d Document) Document(path ...string) (Document, bool) {
	value, ok := d.Lookup(path...)
	if !ok {
		return Document{}, false
	}

	m, ok := value.(map[string]any)
	if !ok {
		return Document{}, false
	}

	return Document{root: m}, true
}

// List returns the array at path.
func (d Document) List(path ...string) ([]any, bool) {
	value, ok := d.Lookup(path...)
	if !ok {
		return nil, false
	}

	list, ok := value.([]any)

	return list, ok
}

// Has reports whether path resolves to a non-null value.
func (d Document) Has(path ...string) bool {
	_, ok := d.Lookup(path...)

	return ok
}

// Index returns list[i] as a Document when it is an object.
func Index(list []any, i int) (Document, bool) {
	if i < 0 || i >= len(list) {
		return Document{}, false
	}

	m, ok := list[i].(map[string]any)
	if !ok {
		return Document{}, false
	}

	return Document{root: m}, true
}

// ToNumber coerces a decoded JSON scalar to float64.
func ToNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		return f, err == nil
	default:
		return 0, false
	}
}

// MarshalJSON encodes the document, an empty document encodes as null.
func (d Document) MarshalJSON() ([]byte, error) {
	if d.root == nil {
		return []byte("null"), nil
	}

	return json.Marshal(d.root)
}
