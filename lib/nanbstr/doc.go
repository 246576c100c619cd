// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nanbstr transports the exact bit pattern of an IEEE-754 NaN
// inside CBOR, as a byte string tagged with 102 (nan-bstr, per
// draft-mcnally-cbor-nan-bstr).
//
// Deterministic CBOR encoding profiles collapse every floating-point
// NaN into one canonical form, destroying the sign bit, the
// quiet/signaling indicator, and the payload bits. Applications that
// depend on those bits (NaN-boxing schemes, diagnostic codes embedded
// in payloads, forensic capture of wire data) need a way to carry a
// NaN through such a profile untouched. This package provides it: the
// NaN value is moved out of the float domain entirely and shipped as
// an opaque big-endian byte string of length 2, 4, 8, or 16 — the four
// IEEE-754 binary interchange widths — with no canonicalization of
// any kind.
//
// The two halves of the package:
//
//   - [Width] and [WidthForLength] classify a byte length into one of
//     the four interchange widths; [IsNaNBitPattern] is the validation
//     predicate (exponent field all ones, fraction field nonzero —
//     all-ones exponent with a zero fraction is ±Infinity and is
//     rejected).
//   - [NaN] wraps a validated byte sequence and exposes bit-level
//     accessors (sign, quiet/signaling, fraction, payload) plus the
//     CBOR encode/decode contract. Values are immutable after
//     construction; equality and ordering are byte-lexicographic, never
//     numeric.
//
// Construction always validates, and decoding from CBOR re-runs the
// same validation — wire data is never trusted. Fraction and payload
// fields are returned as [num.U128] values because the binary128
// fraction field is 112 bits wide, beyond any native Go integer.
//
// Conversions to and from native float types (including half precision
// via x448/float16) are a convenience layer in float.go; they are not
// part of the validated core and never bypass it.
package nanbstr
