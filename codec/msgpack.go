package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a binary codec backed by github.com/vmihailenco/msgpack/v5.
//
// Unlike JSON it keeps integer and time.Time values exact, which makes it the
// better choice for copying elements with numeric maps or timestamps.
type Msgpack struct{}

// Marshal encodes the value to msgpack.
func (Msgpack) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Unmarshal decodes the msgpack data into v.
func (Msgpack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Name returns the unique name of the codec ("msgpack").
func (Msgpack) Name() string { return "msgpack" }
