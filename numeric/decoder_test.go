package numeric_test

import (
	"errors"
	"io"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/binarity/pgbin"
	"github.com/binarity/pgbin/numeric"
)

func TestDecoder(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		type TC struct {
			Name   string
			Input  []byte
			Output numeric.Numeric
			Mark   error
		}

		tcs := []TC{
			{
				Name: "positive",
				Input: []byte{
					0x00, 0x01,
					0x00, 0x00,
					0x00, 0x00,
					0x00, 0x02,
					0x04, 0xD2,
				},
				Output: numeric.Positive{
					Weight: 0,
					Scale:  2,
					Digits: []int16{1234},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Name: "negative",
				Input: []byte{
					0x00, 0x02,
					0x00, 0x01,
					0x40, 0x00,
					0x00, 0x04,
					0x00, 0x03,
					0x0D, 0x80,
				},
				Output: numeric.Negative{
					Weight: 1,
					Scale:  4,
					Digits: []int16{3, 3456},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Name: "negative weight",
				Input: []byte{
					0x00, 0x01,
					0xFF, 0xFE,
					0x00, 0x00,
					0x00, 0x08,
					0x00, 0x07,
				},
				Output: numeric.Positive{
					Weight: -2,
					Scale:  8,
					Digits: []int16{7},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Name: "zero digits",
				Input: []byte{
					0x00, 0x00,
					0x00, 0x00,
					0x00, 0x00,
					0x00, 0x00,
				},
				Output: numeric.Positive{
					Weight: 0,
					Scale:  0,
					Digits: []int16{},
				},
				Mark: oops.New("unexpected"),
			},
			{
				// Digit range is not validated; the wire value is
				// carried untouched.
				Name: "out of range digit group",
				Input: []byte{
					0x00, 0x01,
					0x00, 0x00,
					0x00, 0x00,
					0x00, 0x00,
					0xFF, 0xFF,
				},
				Output: numeric.Positive{
					Weight: 0,
					Scale:  0,
					Digits: []int16{-1},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Name: "nan",
				Input: []byte{
					0x00, 0x00,
					0x00, 0x00,
					0xC0, 0x00,
					0x00, 0x00,
				},
				Output: numeric.NaN{},
				Mark:   oops.New("unexpected"),
			},
			{
				// The wire allows digits alongside a NaN sign; they
				// are discarded.
				Name: "nan with digits",
				Input: []byte{
					0x00, 0x01,
					0x00, 0x05,
					0xC0, 0x00,
					0x00, 0x03,
					0x04, 0xD2,
				},
				Output: numeric.NaN{},
				Mark:   oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				got, err := numeric.Decode(tc.Input)
				require.NoError(t, err, tc.Mark)

				t.Logf("decoded: %s", spew.Sdump(got))

				require.Equal(t, tc.Output, got, tc.Mark)
			})
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := numeric.Decode(nil)
		require.ErrorIs(t, err, pgbin.ErrMissingValue)
	})

	t.Run("truncated", func(t *testing.T) {
		type TC struct {
			Name  string
			Input []byte
			Mark  error
		}

		tcs := []TC{
			{
				Name:  "empty",
				Input: []byte{},
				Mark:  oops.New("unexpected"),
			},
			{
				Name:  "partial header",
				Input: []byte{0x00, 0x01, 0x00},
				Mark:  oops.New("unexpected"),
			},
			{
				Name: "header only",
				Input: []byte{
					0x00, 0x01,
					0x00, 0x00,
					0x00, 0x00,
					0x00, 0x00,
				},
				Mark: oops.New("unexpected"),
			},
			{
				Name: "partial digits",
				Input: []byte{
					0x00, 0x02,
					0x00, 0x00,
					0x00, 0x00,
					0x00, 0x00,
					0x04, 0xD2,
				},
				Mark: oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				_, err := numeric.Decode(tc.Input)
				require.ErrorIs(t, err, io.ErrUnexpectedEOF, tc.Mark)
			})
		}
	})

	t.Run("invalid sign", func(t *testing.T) {
		_, err := numeric.Decode([]byte{
			0x00, 0x00,
			0x00, 0x00,
			0x12, 0x34,
			0x00, 0x00,
		})
		require.Error(t, err)

		var signErr *numeric.InvalidSignError
		require.ErrorAs(t, err, &signErr)
		require.Equal(t, uint16(0x1234), signErr.Sign)
	})

	t.Run("truncated digits win over invalid sign", func(t *testing.T) {
		// The digit groups are consumed before the sign is checked,
		// so a short digit array surfaces first even when the sign is
		// also bad.
		_, err := numeric.Decode([]byte{
			0x00, 0x01,
			0x00, 0x00,
			0x12, 0x34,
			0x00, 0x00,
		})
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)

		var signErr *numeric.InvalidSignError
		require.False(t, errors.As(err, &signErr))
	})
}
