// Package numeric implements the binary wire codec for the NUMERIC SQL
// type.
//
// Wire Layout
//
// All integers are big-endian, in this exact order:
//
//  | Field   | Type   | Meaning                                       |
//  |---------|--------|-----------------------------------------------|
//  | ndigits | uint16 | number of digit groups that follow            |
//  | weight  | int16  | base-10000 exponent of the first digit group  |
//  | sign    | uint16 | 0x0000 positive, 0x4000 negative, 0xC000 NaN  |
//  | dscale  | uint16 | base-10 digits shown after the decimal point  |
//  | digits  | int16  | ndigits base-10000 digit groups, most          |
//  |         |        | significant first                             |
//
// The total size is 8 + 2*ndigits bytes. There is no framing beyond
// the digit count; the transport delivers the value already cut to
// length.
//
// A digit group is one base-10000 "digit", conceptually in [0, 9999].
// The codec does not enforce that range: decoding trusts the wire and
// encoding trusts the caller. Likewise weight and ndigits are not
// cross-checked. The only field validated is sign, and only on decode.
// Higher-precision arithmetic, comparison, and string conversion all
// belong to whatever library consumes the decoded value.
//
// NaN is a dedicated state of the type, not a digit pattern. On the
// wire it is always written as ndigits=0, weight=0, scale=0. On read,
// a NaN sign accompanied by digit groups is tolerated and the digits
// are discarded.
package numeric
