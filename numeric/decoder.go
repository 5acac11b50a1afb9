package numeric

import (
	"github.com/binarity/pgbin"
	"github.com/binarity/pgbin/cursor"
)

// Decode parses a NUMERIC wire value. A nil buffer fails with
// pgbin.ErrMissingValue; a buffer that runs out mid-field fails with
// the cursor's short read.
//
// The digit groups are consumed before the sign is validated, so a
// buffer that is both truncated and carrying an unrecognized sign
// fails with the short read.
func Decode(data []byte) (Numeric, error) {
	if data == nil {
		return nil, pgbin.ErrMissingValue
	}

	r := cursor.NewReader(data)

	ndigits, err := r.Uint16()
	if err != nil {
		return nil, err
	}

	weight, err := r.Int16()
	if err != nil {
		return nil, err
	}

	sign, err := r.Uint16()
	if err != nil {
		return nil, err
	}

	scale, err := r.Uint16()
	if err != nil {
		return nil, err
	}

	digits := make([]int16, 0, ndigits)
	for i := uint16(0); i < ndigits; i++ {
		d, err := r.Int16()
		if err != nil {
			return nil, err
		}

		digits = append(digits, d)
	}

	switch sign {
	case SignPositive:
		return Positive{
			Weight: weight,
			Scale:  scale,
			Digits: digits,
		}, nil
	case SignNegative:
		return Negative{
			Weight: weight,
			Scale:  scale,
			Digits: digits,
		}, nil
	case SignNaN:
		// The wire allows digit groups alongside a NaN sign; they
		// carry no information and are dropped.
		return NaN{}, nil
	default:
		return nil, Error.Wrap(&InvalidSignError{Sign: sign})
	}
}
