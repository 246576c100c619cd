// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nanbstr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Conversions between NaN values and native float types. This is a
// convenience layer over the validated core: every path goes through
// the bit-pattern constructors, so a non-NaN float fails with
// ErrNotANaN and no conversion ever bypasses validation. There is no
// binary128 conversion because Go has no native quad-precision type;
// use FromBits128 and Bits128 for raw 128-bit patterns.

// ErrWidthMismatch is returned when extracting a native float from a
// value of a different width. There is deliberately no cross-width
// conversion: widening or narrowing a NaN would have to invent or
// discard payload bits.
var ErrWidthMismatch = errors.New("nanbstr: width does not match requested float type")

// FromFloat16 constructs a NaN from a half-precision value, preserving
// its exact bits.
func FromFloat16(f float16.Float16) (NaN, error) {
	return FromBits16(f.Bits())
}

// FromFloat32 constructs a NaN from a single-precision value,
// preserving its exact bits.
func FromFloat32(f float32) (NaN, error) {
	return FromBits32(math.Float32bits(f))
}

// FromFloat64 constructs a NaN from a double-precision value,
// preserving its exact bits.
func FromFloat64(f float64) (NaN, error) {
	return FromBits64(math.Float64bits(f))
}

// Float16 returns the value as a half-precision float. Fails with
// ErrWidthMismatch unless the width is binary16.
func (n NaN) Float16() (float16.Float16, error) {
	if n.Width() != Binary16 {
		return 0, fmt.Errorf("%w: value is %s, want binary16", ErrWidthMismatch, n.Width())
	}
	return float16.Frombits(binary.BigEndian.Uint16(n.be)), nil
}

// Float32 returns the value as a single-precision float. Fails with
// ErrWidthMismatch unless the width is binary32.
func (n NaN) Float32() (float32, error) {
	if n.Width() != Binary32 {
		return 0, fmt.Errorf("%w: value is %s, want binary32", ErrWidthMismatch, n.Width())
	}
	return math.Float32frombits(binary.BigEndian.Uint32(n.be)), nil
}

// Float64 returns the value as a double-precision float. Fails with
// ErrWidthMismatch unless the width is binary64.
func (n NaN) Float64() (float64, error) {
	if n.Width() != Binary64 {
		return 0, fmt.Errorf("%w: value is %s, want binary64", ErrWidthMismatch, n.Width())
	}
	return math.Float64frombits(binary.BigEndian.Uint64(n.be)), nil
}
