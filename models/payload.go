package models

// Payload is a raw value delivered by the server or the UI layer. Its shape
// is implied by the table it is written to. Handlers never keep or modify a
// caller's payload.
type Payload map[string]any

// String returns the string stored under key and whether it is one.
func (p Payload) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int64 returns the numeric value stored under key. JSON decoding yields
// float64, Go callers usually pass int or int64; all are accepted.
func (p Payload) Int64(key string) (int64, bool) {
	switch v := p[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	default:
		return 0, false
	}
}

// Has reports whether key is present with a non-nil value.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}
