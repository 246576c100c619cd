// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nanbstr

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// NaN carries the exact bit pattern of an IEEE-754 NaN as a validated
// big-endian byte sequence of length 2, 4, 8, or 16. The bytes are
// never normalized: sign, quiet/signaling indicator, and payload are
// preserved exactly as constructed.
//
// A NaN is immutable after construction and owns its byte buffer
// exclusively, so concurrent reads need no coordination. The zero
// value is unusable; every usable NaN comes from a validating
// constructor or from CBOR decoding. Accessors panic on the zero
// value — use IsZero to guard when a zero value can occur.
type NaN struct {
	// be holds the validated big-endian bytes. Never aliased to
	// caller memory and never mutated.
	be []byte
}

// ErrNotANaN is returned when a byte sequence of valid length is not a
// NaN bit pattern for its width (a finite number, ±Infinity, or
// otherwise outside the NaN range). Raised by both direct construction
// and CBOR decoding.
var ErrNotANaN = errors.New("nanbstr: not a NaN bit pattern")

// FromBytes constructs a NaN from a big-endian byte sequence. The
// length must be 2, 4, 8, or 16 (else ErrInvalidLength) and the bits
// must satisfy the NaN predicate for the corresponding width (else
// ErrNotANaN). The bytes are copied; the caller's slice is not
// retained.
func FromBytes(b []byte) (NaN, error) {
	width, err := WidthForLength(len(b))
	if err != nil {
		return NaN{}, err
	}
	if !isNaNBits(width, bitsFromBytes(width, b)) {
		return NaN{}, fmt.Errorf("%s value %x: %w", width, b, ErrNotANaN)
	}
	stored := make([]byte, len(b))
	copy(stored, b)
	return NaN{be: stored}, nil
}

// FromBits16 constructs a NaN from a binary16 bit pattern.
func FromBits16(bits uint16) (NaN, error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], bits)
	return FromBytes(b[:])
}

// FromBits32 constructs a NaN from a binary32 bit pattern.
func FromBits32(bits uint32) (NaN, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], bits)
	return FromBytes(b[:])
}

// FromBits64 constructs a NaN from a binary64 bit pattern.
func FromBits64(bits uint64) (NaN, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], bits)
	return FromBytes(b[:])
}

// FromBits128 constructs a NaN from a binary128 bit pattern.
func FromBits128(bits num.U128) (NaN, error) {
	high, low := bits.Raw()
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], high)
	binary.BigEndian.PutUint64(b[8:], low)
	return FromBytes(b[:])
}

// FromBits128Words constructs a NaN from a binary128 bit pattern given
// as two 64-bit words, (high << 64) | low.
func FromBits128Words(high, low uint64) (NaN, error) {
	return FromBits128(num.U128FromRaw(high, low))
}

// IsZero reports whether this is the unusable zero value.
func (n NaN) IsZero() bool { return n.be == nil }

// Width returns the interchange width derived from the stored byte
// length.
func (n NaN) Width() Width {
	width, err := WidthForLength(len(n.be))
	if err != nil {
		panic("nanbstr: Width on zero NaN value")
	}
	return width
}

// Bytes returns a copy of the stored big-endian bytes. Mutating the
// returned slice does not affect the value.
func (n NaN) Bytes() []byte {
	out := make([]byte, len(n.be))
	copy(out, n.be)
	return out
}

// Sign reports whether the sign bit (the most-significant bit) is set.
func (n NaN) Sign() bool {
	return !n.bits().Rsh(uint(n.Width().Bits()) - 1).IsZero()
}

// IsQuiet reports whether the quiet/signaling indicator bit (the
// most-significant fraction bit) is 1.
func (n NaN) IsQuiet() bool {
	return !n.FractionBits().Rsh(n.Width().fractionBits() - 1).IsZero()
}

// IsSignaling reports whether the quiet/signaling indicator bit is 0.
func (n NaN) IsSignaling() bool { return !n.IsQuiet() }

// FractionBits returns the entire fraction field, including the
// quiet/signaling indicator bit, as an unsigned integer. The binary128
// fraction field is 112 bits wide, hence the U128 return type for
// every width.
func (n NaN) FractionBits() num.U128 {
	return n.bits().And(n.Width().fractionMask())
}

// PayloadBits returns the fraction field with the quiet/signaling
// indicator bit masked out — the portion commonly treated as user
// payload.
func (n NaN) PayloadBits() num.U128 {
	return n.FractionBits().And(n.Width().payloadMask())
}

// Bits128 returns the full 128-bit pattern when the width is
// binary128. For the other three widths it reports false: asking a
// narrower value for a 128-bit pattern is an expected query, not an
// error.
func (n NaN) Bits128() (num.U128, bool) {
	if n.Width() != Binary128 {
		return num.U128{}, false
	}
	return n.bits(), true
}

// Equal reports byte-sequence equality. Two different bit patterns are
// never equal, even though both are "a NaN" numerically.
func (n NaN) Equal(other NaN) bool {
	return bytes.Equal(n.be, other.be)
}

// Compare orders values byte-lexicographically, returning -1, 0, or 1
// in the manner of bytes.Compare. This is an ordering over bit
// patterns, not a numeric comparison.
func (n NaN) Compare(other NaN) int {
	return bytes.Compare(n.be, other.be)
}

// String renders the value for humans: width in bits, sign bit,
// quiet/signaling, and the fraction and payload fields in hex.
func (n NaN) String() string {
	sign := 0
	if n.Sign() {
		sign = 1
	}
	kind := "signaling"
	if n.IsQuiet() {
		kind = "quiet"
	}
	return fmt.Sprintf("NaN[%d]: sign=%d, %s, frac=0x%x, payload=0x%x",
		n.Width().Bits(), sign, kind, n.FractionBits(), n.PayloadBits())
}

// bits parses the stored bytes as a big-endian unsigned integer.
func (n NaN) bits() num.U128 {
	return bitsFromBytes(n.Width(), n.be)
}
