package numeric

import (
	"io"

	"github.com/binarity/pgbin"
	"github.com/binarity/pgbin/cursor"
)

// Encode writes n in NUMERIC wire form. The returned marker is always
// pgbin.NotNull; encoding fails only when the sink does.
func Encode(n Numeric, w io.Writer) (pgbin.IsNull, error) {
	sign, weight, scale, digits := n.header()

	cw := cursor.NewWriter(w)

	err := cw.Uint16(uint16(len(digits)))
	if err != nil {
		return pgbin.NotNull, err
	}

	err = cw.Int16(weight)
	if err != nil {
		return pgbin.NotNull, err
	}

	err = cw.Uint16(sign)
	if err != nil {
		return pgbin.NotNull, err
	}

	err = cw.Uint16(scale)
	if err != nil {
		return pgbin.NotNull, err
	}

	for _, d := range digits {
		err = cw.Int16(d)
		if err != nil {
			return pgbin.NotNull, err
		}
	}

	return pgbin.NotNull, nil
}
