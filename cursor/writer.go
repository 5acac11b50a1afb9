package cursor

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer writes big-endian values sequentially to a sink.
type Writer interface {
	Uint16(v uint16) error
	Int16(v int16) error
	Float32(v float32) error
	Float64(v float64) error
}

type writer struct {
	w io.Writer
}

// NewWriter returns a writer appending to w.
func NewWriter(w io.Writer) Writer {
	return &writer{
		w: w,
	}
}

func (w *writer) write(b []byte) error {
	_, err := w.w.Write(b)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

func (w *writer) Uint16(v uint16) error {
	var b [2]byte

	binary.BigEndian.PutUint16(b[:], v)

	return w.write(b[:])
}

func (w *writer) Int16(v int16) error {
	return w.Uint16(uint16(v))
}

func (w *writer) Float32(v float32) error {
	var b [4]byte

	binary.BigEndian.PutUint32(b[:], math.Float32bits(v))

	return w.write(b[:])
}

func (w *writer) Float64(v float64) error {
	var b [8]byte

	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))

	return w.write(b[:])
}
