package recording

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// wireCommand is the on-the-wire shape of one command. Field order fixes
// the key order of the encoded object.
type wireCommand struct {
	Type string    `json:"type"`
	N    []float64 `json:"n"`
	S    []string  `json:"s"`
}

// Encoder writes command logs as JSON payloads to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the payload for cmds to the stream. Nothing is written when
// a command cannot be encoded.
func (e *Encoder) Encode(cmds []Command) error {
	payload, err := Marshal(cmds)
	if err != nil {
		return err
	}
	_, err = e.w.Write(payload)
	return err
}

// Marshal returns the payload for cmds: a JSON array holding one
// {"type","n","s"} object per command, in order. A nil or empty slice
// encodes as [].
//
// Numbers keep their float64 value in shortest form. Strings are escaped
// only as JSON requires; HTML-sensitive characters are left alone.
func Marshal(cmds []Command) ([]byte, error) {
	wire := make([]wireCommand, 0, len(cmds))
	for i, cmd := range cmds {
		n, s := cmd.Operands()
		for j, v := range n {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %v in operand %d of command %d (%s)",
					ErrUnsupportedNumber, v, j, i, cmd.Type())
			}
		}
		wire = append(wire, wireCommand{Type: cmd.Type().String(), N: n, S: s})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, fmt.Errorf("recording: encode payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
