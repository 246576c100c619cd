// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nanbstr

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/nanbstr/lib/codec"
)

// Tag is the CBOR tag number marking a byte string as a NaN bit
// pattern, per draft-mcnally-cbor-nan-bstr.
const Tag = 102

// TagName is the registered human-readable name for Tag, used in
// diagnostics. Correctness never depends on it.
const TagName = "nan-bstr"

// ErrWrongShape is returned when CBOR decoding finds something other
// than a tag-102 byte string: a different tag number, an untagged
// item, or tag content of the wrong major type.
var ErrWrongShape = errors.New("nanbstr: not a tagged NaN byte string")

// MarshalCBOR implements cbor.Marshaler. Encodes the stored bytes as a
// CBOR byte string wrapped in tag 102, with no transformation of the
// bits.
func (n NaN) MarshalCBOR() ([]byte, error) {
	if n.IsZero() {
		return nil, errors.New("nanbstr: cannot marshal zero NaN value")
	}
	return codec.Marshal(codec.Tag{Number: Tag, Content: n.Bytes()})
}

// UnmarshalCBOR implements cbor.Unmarshaler. Accepts exactly a tag-102
// byte string and re-validates length and NaN-ness through FromBytes —
// the wire is never trusted. Structural mismatches fail with
// ErrWrongShape; a byte string that fails validation surfaces
// ErrInvalidLength or ErrNotANaN as construction would.
func (n *NaN) UnmarshalCBOR(data []byte) error {
	var tagged codec.RawTag
	if err := codec.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("%w: %v", ErrWrongShape, err)
	}
	if tagged.Number != Tag {
		return fmt.Errorf("%w: expected tag %d, got tag %d", ErrWrongShape, Tag, tagged.Number)
	}
	var payload []byte
	if err := codec.Unmarshal(tagged.Content, &payload); err != nil {
		return fmt.Errorf("%w: tag %d content: %v", ErrWrongShape, Tag, err)
	}
	decoded, err := FromBytes(payload)
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}
