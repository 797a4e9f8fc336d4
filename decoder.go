package sqfvalue

import (
	"io"
)

type Decoder struct {
	input io.Reader
}

func NewDecoder(input io.Reader) *Decoder {
	return &Decoder{
		input: input,
	}
}

// Decode reads the remaining input and unmarshals it into out. See
// Unmarshal for the accepted target types.
func (d *Decoder) Decode(out any) error {
	data, err := io.ReadAll(d.input)
	if err != nil {
		return err
	}
	return Unmarshal(data, out)
}

type Encoder struct {
	output io.Writer
}

func NewEncoder(output io.Writer) *Encoder {
	return &Encoder{
		output: output,
	}
}

// Encode marshals v and writes the text to the output.
func (e *Encoder) Encode(v any) error {
	_, err := e.output.Write(Marshal(v))
	return err
}
