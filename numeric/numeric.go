package numeric

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class for numeric codec errors.
var Error = errs.Class("numeric")

// Wire sign markers.
const (
	SignPositive uint16 = 0x0000
	SignNegative uint16 = 0x4000
	SignNaN      uint16 = 0xC000
)

// Numeric is a decoded NUMERIC wire value: one of Positive, Negative,
// or NaN. The sign is implied by the variant and re-derived when the
// value goes back on the wire.
type Numeric interface {
	// header returns the wire header fields and the digit groups that
	// follow them.
	header() (sign uint16, weight int16, scale uint16, digits []int16)
}

// Positive is a non-negative value.
type Positive struct {
	Weight int16
	Scale  uint16
	Digits []int16
}

func (p Positive) header() (uint16, int16, uint16, []int16) {
	return SignPositive, p.Weight, p.Scale, p.Digits
}

// Negative is a negative value.
type Negative struct {
	Weight int16
	Scale  uint16
	Digits []int16
}

func (n Negative) header() (uint16, int16, uint16, []int16) {
	return SignNegative, n.Weight, n.Scale, n.Digits
}

// NaN is the dedicated not-a-number state. It carries no fields; its
// wire form is normalized to zero weight and scale and an empty digit
// sequence.
type NaN struct{}

func (NaN) header() (uint16, int16, uint16, []int16) {
	return SignNaN, 0, 0, nil
}

// InvalidSignError reports a sign field that is none of the three
// recognized markers. It carries the raw value for diagnostics.
type InvalidSignError struct {
	Sign uint16
}

func (e *InvalidSignError) Error() string {
	return fmt.Sprintf("invalid sign for numeric field: %#04x", e.Sign)
}
