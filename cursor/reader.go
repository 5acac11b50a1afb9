package cursor

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/zeebo/errs"
)

// Error is the class for cursor errors.
var Error = errs.Class("cursor")

// Reader reads big-endian values sequentially from a byte buffer.
type Reader interface {
	Uint16() (uint16, error)
	Int16() (int16, error)
	Float32() (float32, error)
	Float64() (float64, error)
}

type reader struct {
	data []byte
	off  int
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) Reader {
	return &reader{
		data: data,
	}
}

// take returns the next n bytes, failing with a short read if fewer
// remain.
func (r *reader) take(n int) ([]byte, error) {
	if len(r.data)-r.off < n {
		return nil, Error.Wrap(io.ErrUnexpectedEOF)
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

func (r *reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) Int16() (int16, error) {
	v, err := r.Uint16()
	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

func (r *reader) Float32() (float32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func (r *reader) Float64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}
