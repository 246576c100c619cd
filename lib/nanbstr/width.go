// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nanbstr

import (
	"encoding/binary"
	"errors"
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// Width identifies one of the four IEEE-754 binary interchange formats
// a NaN byte string may carry. It is derived from byte length alone
// and never stored alongside the bytes, so the two cannot drift apart.
type Width int

const (
	// Binary16 is the 2-octet half-precision format (f16).
	Binary16 Width = 16
	// Binary32 is the 4-octet single-precision format (f32).
	Binary32 Width = 32
	// Binary64 is the 8-octet double-precision format (f64).
	Binary64 Width = 64
	// Binary128 is the 16-octet quad-precision format (f128).
	Binary128 Width = 128
)

// ErrInvalidLength is returned when a byte sequence's length is not
// one of the four interchange sizes (2, 4, 8, or 16 bytes). Raised by
// both direct construction and CBOR decoding.
var ErrInvalidLength = errors.New("nanbstr: length must be 2, 4, 8, or 16 bytes")

// WidthForLength maps a byte length to its interchange width. Any
// length outside {2, 4, 8, 16} fails with ErrInvalidLength.
func WidthForLength(length int) (Width, error) {
	switch length {
	case 2:
		return Binary16, nil
	case 4:
		return Binary32, nil
	case 8:
		return Binary64, nil
	case 16:
		return Binary128, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
}

// Bits returns the total width in bits (16, 32, 64, or 128).
func (w Width) Bits() int { return int(w) }

// Size returns the width in bytes (2, 4, 8, or 16).
func (w Width) Size() int { return int(w) / 8 }

// String returns the IEEE-754 interchange format name ("binary16",
// "binary32", "binary64", or "binary128").
func (w Width) String() string {
	switch w {
	case Binary16:
		return "binary16"
	case Binary32:
		return "binary32"
	case Binary64:
		return "binary64"
	case Binary128:
		return "binary128"
	default:
		return fmt.Sprintf("Width(%d)", int(w))
	}
}

// exponentBits returns the exponent field width: 5, 8, 11, or 15 bits.
func (w Width) exponentBits() uint {
	switch w {
	case Binary16:
		return 5
	case Binary32:
		return 8
	case Binary64:
		return 11
	case Binary128:
		return 15
	}
	panic(fmt.Sprintf("nanbstr: exponentBits on invalid width %d", int(w)))
}

// fractionBits returns the fraction field width, including the
// quiet/signaling indicator bit: 10, 23, 52, or 112 bits.
func (w Width) fractionBits() uint {
	switch w {
	case Binary16:
		return 10
	case Binary32:
		return 23
	case Binary64:
		return 52
	case Binary128:
		return 112
	}
	panic(fmt.Sprintf("nanbstr: fractionBits on invalid width %d", int(w)))
}

// fractionMask returns a mask covering the fraction field.
func (w Width) fractionMask() num.U128 {
	one := num.U128From64(1)
	return one.Lsh(w.fractionBits()).Sub(one)
}

// payloadMask returns a mask covering the fraction field below the
// quiet/signaling indicator bit.
func (w Width) payloadMask() num.U128 {
	one := num.U128From64(1)
	return one.Lsh(w.fractionBits() - 1).Sub(one)
}

// IsNaNBitPattern reports whether bytes, interpreted as a big-endian
// unsigned integer of width w, encode an IEEE-754 NaN: exponent field
// all ones and fraction field nonzero. An all-ones exponent with a
// zero fraction is ±Infinity, not a NaN, and reports false. A byte
// length that does not match w also reports false; the predicate is
// total and has no failure mode.
func IsNaNBitPattern(w Width, bytes []byte) bool {
	if len(bytes) != w.Size() {
		return false
	}
	return isNaNBits(w, bitsFromBytes(w, bytes))
}

// isNaNBits is the predicate on an already-parsed bit pattern. The
// exponent mask fits in a uint64 for every width (at most 15 bits).
func isNaNBits(w Width, bits num.U128) bool {
	exponentMask := num.U128From64((uint64(1) << w.exponentBits()) - 1)
	exponent := bits.Rsh(w.fractionBits()).And(exponentMask)
	if !exponent.Equal(exponentMask) {
		return false
	}
	return !bits.And(w.fractionMask()).IsZero()
}

// bitsFromBytes interprets a big-endian byte sequence of exactly
// w.Size() bytes as an unsigned integer.
func bitsFromBytes(w Width, b []byte) num.U128 {
	switch w {
	case Binary16:
		return num.U128From16(binary.BigEndian.Uint16(b))
	case Binary32:
		return num.U128From32(binary.BigEndian.Uint32(b))
	case Binary64:
		return num.U128From64(binary.BigEndian.Uint64(b))
	case Binary128:
		return num.U128FromRaw(binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:]))
	}
	panic(fmt.Sprintf("nanbstr: bitsFromBytes on invalid width %d", int(w)))
}
