package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Payload is a before/after state snapshot. Its schema depends on the entity type and on
// the age of the row, so every read goes through the getters below and absent, null or
// mistyped fields read as zero values.
type Payload map[string]any

// ParsePayload decodes a stored state column. It accepts a JSON object, a JSON string that
// itself encodes an object, or an object wrapped as {"metadata": {...}}. Anything else
// yields nil.
func ParsePayload(raw []byte) Payload {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	// Double-encoded rows: the column holds a JSON string.
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" || s[0] != '{' {
			return nil
		}
		return ParsePayload([]byte(s))
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	p := Payload(obj)
	if len(p) == 1 {
		if inner := p.Object("metadata"); inner != nil {
			return inner
		}
	}
	return p
}

// Has reports whether key is present and not null.
func (p Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	v, ok := p[key]
	return ok && v != nil
}

// String returns the value at key rendered as a trimmed string. Numbers and booleans are
// formatted; objects, arrays and null read as "".
func (p Payload) String(key string) string {
	if p == nil {
		return ""
	}
	switch v := p[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// First returns the first non-empty string among keys.
func (p Payload) First(keys ...string) string {
	for _, k := range keys {
		if s := p.String(k); s != "" {
			return s
		}
	}
	return ""
}

// Object returns the nested object at key, decoding it when stored as a JSON string.
func (p Payload) Object(key string) Payload {
	if p == nil {
		return nil
	}
	switch v := p[key].(type) {
	case map[string]any:
		return Payload(v)
	case Payload:
		return v
	case string:
		return ParsePayload([]byte(v))
	default:
		return nil
	}
}

// Clone returns a shallow copy that is safe to annotate. A nil payload clones to an empty one.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p)+2)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SetIfEmpty stores value under key unless a non-empty string is already there.
func (p Payload) SetIfEmpty(key, value string) {
	if p == nil || value == "" || p.String(key) != "" {
		return
	}
	p[key] = value
}
