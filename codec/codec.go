// Package codec provides value codecs used to deep-copy list elements.
//
// A codec round trip (Marshal then Unmarshal into a fresh value) yields a copy
// that shares no memory with the original. partlist uses this as the
// per-element copy hook of Clone when elements hold pointers, maps or slices.
//
// Only exported fields survive a round trip; types with unexported state need
// a hand-written copy function instead.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "msgpack":
		return Msgpack{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// DeepCopy returns a copy of v produced by a round trip through c.
// If c is nil, Default is used.
func DeepCopy[T any](c Codec, v T) (T, error) {
	if c == nil {
		c = Default
	}
	var out T
	b, err := c.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("codec %s: marshal: %w", c.Name(), err)
	}
	if err := c.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("codec %s: unmarshal: %w", c.Name(), err)
	}
	return out, nil
}
