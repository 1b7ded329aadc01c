package types

import (
	"bytes"
	"encoding/json"
)

// Text is a free-text request field. It accepts any JSON value: strings
// decode normally, null is empty, and numbers, booleans, objects and arrays
// keep their literal JSON text.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string { return string(t) }
