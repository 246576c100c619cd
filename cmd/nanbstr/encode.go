// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nanbstr/cmd/nanbstr/cli"
	"github.com/bureau-foundation/nanbstr/lib/codec"
	"github.com/bureau-foundation/nanbstr/lib/nanbstr"
)

func encodeCommand() *cli.Command {
	var diag bool

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode hex NaN bit patterns as tagged CBOR",
		Long: `Validate big-endian hex bit patterns and write each as a CBOR byte
string tagged with 102 to stdout.

Each argument must be 2, 4, 8, or 16 bytes of hex (whitespace inside an
argument is ignored) and must encode a NaN for that width: exponent
field all ones, fraction field nonzero. Infinities and finite values
are rejected.

The output is binary. Pipe to "nanbstr diag" or "xxd" to inspect, or
pass --diag to print diagnostic notation instead.`,
		Usage: "nanbstr encode [flags] <hex-pattern>...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.BoolVar(&diag, "diag", false, "print diagnostic notation instead of raw CBOR")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Note: "Encode a half-width quiet NaN",
				Line: "nanbstr encode 7e00 > nan.cbor",
			},
			{
				Note: "Encode several widths into one CBOR sequence",
				Line: "nanbstr encode 7e00 7fc00001 fff0000000000001",
			},
			{
				Note: "Show the wire form as diagnostic notation",
				Line: "nanbstr encode --diag 7fff80000000000000000000000000ff",
			},
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("encode requires at least one hex bit pattern argument")
			}
			return encodePatterns(args, os.Stdout, diag)
		},
	}
}

// encodePatterns validates each hex pattern and writes its tagged CBOR
// encoding to w, either as raw bytes or as one line of diagnostic
// notation per pattern.
func encodePatterns(patterns []string, w io.Writer, diag bool) error {
	for _, pattern := range patterns {
		raw, err := decodeHexInput([]byte(pattern))
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pattern, err)
		}

		value, err := nanbstr.FromBytes(raw)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pattern, err)
		}

		data, err := codec.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", value, err)
		}

		if diag {
			notation, err := codec.Diagnose(data)
			if err != nil {
				return fmt.Errorf("diagnose %s: %w", value, err)
			}
			if _, err := fmt.Fprintln(w, notation); err != nil {
				return err
			}
			continue
		}

		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}
