// Package pgbin holds the types shared by every codec in this module:
// the NULL marker returned by encoders and the missing-value sentinel
// returned by decoders.
//
// The codecs themselves live in the subpackages: floats for the float4
// and float8 wire formats, numeric for NUMERIC. All of them operate on
// the cursor package's big-endian reader and writer.
package pgbin

import "github.com/zeebo/errs"

// Error is the class for errors shared across the codecs.
var Error = errs.Class("pgbin")

// ErrMissingValue reports that a decoder was handed an absent buffer.
// NULL filtering belongs to the layer above: by the time a codec runs,
// a value must be present, so an absent buffer is a contract violation
// rather than a representable state.
var ErrMissingValue = Error.New("unexpected null: value is missing")

// IsNull indicates whether an encoded value stands for SQL NULL.
//
// None of the codecs in this module can produce Null: floats and
// numerics always have a wire representation. The Null arm exists so
// encoders present a uniform signature to the nullable wrapper layer.
type IsNull bool

const (
	NotNull IsNull = false
	Null    IsNull = true
)
