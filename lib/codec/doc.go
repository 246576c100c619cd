// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the shared CBOR encoding configuration for the
// nanbstr module.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. Same
// logical data always produces identical bytes. This is the encoding
// profile whose treatment of floating-point NaN motivates this module:
// deterministic profiles reduce every NaN to a single canonical form,
// which is exactly what the nan-bstr tag exists to avoid.
//
// Consumers import only this package, not fxamacker/cbor directly. The
// type aliases ([Tag], [RawTag], [RawMessage], [Encoder], [Decoder])
// exist so the underlying CBOR library stays an implementation detail
// of this package.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (CBOR sequences, RFC 8742):
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// [Diagnose] and [DiagnoseFirst] render RFC 8949 §8 diagnostic
// notation, the human-readable form used in error messages and by the
// nanbstr CLI (a tagged half-width NaN renders as 102(h'7e00')).
package codec
