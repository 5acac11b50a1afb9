// Package floats implements the binary wire codec for the float4 and
// float8 SQL types: 4 and 8 byte big-endian IEEE-754.
//
// The codec is bit-exact in both directions. NaN, infinities, signed
// zero, and subnormals are carried verbatim; no rounding or
// normalization happens on either side.
package floats

import (
	"io"

	"github.com/binarity/pgbin"
	"github.com/binarity/pgbin/cursor"
)

// Decode32 reads a single precision value from its 4-byte wire form. A
// nil buffer fails with pgbin.ErrMissingValue; a buffer shorter than 4
// bytes fails with a short read.
func Decode32(data []byte) (float32, error) {
	if data == nil {
		return 0, pgbin.ErrMissingValue
	}

	return cursor.NewReader(data).Float32()
}

// Decode64 reads a double precision value from its 8-byte wire form.
// The contract matches Decode32.
func Decode64(data []byte) (float64, error) {
	if data == nil {
		return 0, pgbin.ErrMissingValue
	}

	return cursor.NewReader(data).Float64()
}

// Encode32 writes the 4-byte wire form of v to w. It fails only when
// the sink does.
func Encode32(v float32, w io.Writer) (pgbin.IsNull, error) {
	err := cursor.NewWriter(w).Float32(v)
	if err != nil {
		return pgbin.NotNull, err
	}

	return pgbin.NotNull, nil
}

// Encode64 writes the 8-byte wire form of v to w.
func Encode64(v float64, w io.Writer) (pgbin.IsNull, error) {
	err := cursor.NewWriter(w).Float64(v)
	if err != nil {
		return pgbin.NotNull, err
	}

	return pgbin.NotNull, nil
}
