// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/nanbstr/lib/nanbstr"
)

func TestEncodePatterns(t *testing.T) {
	var buffer bytes.Buffer
	err := encodePatterns([]string{"7e00", "7fc00001"}, &buffer, false)
	if err != nil {
		t.Fatalf("encodePatterns: %v", err)
	}

	want, err := hex.DecodeString("d866427e00" + "d866447fc00001")
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	if !bytes.Equal(buffer.Bytes(), want) {
		t.Errorf("output = %x, want %x", buffer.Bytes(), want)
	}
}

func TestEncodePatternsDiag(t *testing.T) {
	var buffer bytes.Buffer
	err := encodePatterns([]string{"7e00", "fff0000000000001"}, &buffer, true)
	if err != nil {
		t.Fatalf("encodePatterns: %v", err)
	}

	want := "102(h'7e00')\n102(h'fff0000000000001')\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestEncodePatternsWhitespaceInHex(t *testing.T) {
	var buffer bytes.Buffer
	err := encodePatterns([]string{"7fff 8000 0000 0000 0000 0000 0000 0001"}, &buffer, true)
	if err != nil {
		t.Fatalf("encodePatterns: %v", err)
	}
	if !strings.Contains(buffer.String(), "102(h'7fff8000000000000000000000000001')") {
		t.Errorf("output = %q, want quad NaN diagnostic", buffer.String())
	}
}

func TestEncodePatternsRejectsInfinity(t *testing.T) {
	var buffer bytes.Buffer
	err := encodePatterns([]string{"7ff0000000000000"}, &buffer, false)
	if !errors.Is(err, nanbstr.ErrNotANaN) {
		t.Errorf("got %v, want ErrNotANaN", err)
	}
	if buffer.Len() != 0 {
		t.Errorf("output written despite error: %x", buffer.Bytes())
	}
}

func TestEncodePatternsRejectsBadLength(t *testing.T) {
	var buffer bytes.Buffer
	err := encodePatterns([]string{"7e0000"}, &buffer, false)
	if !errors.Is(err, nanbstr.ErrInvalidLength) {
		t.Errorf("got %v, want ErrInvalidLength", err)
	}
}

func TestEncodePatternsRejectsBadHex(t *testing.T) {
	var buffer bytes.Buffer
	if err := encodePatterns([]string{"not-hex"}, &buffer, false); err == nil {
		t.Error("encodePatterns accepted malformed hex")
	}
}
