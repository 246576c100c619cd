// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command nanbstr works with CBOR-tagged IEEE-754 NaN bit patterns
// (tag 102, draft-mcnally-cbor-nan-bstr): encoding hex bit patterns as
// tagged CBOR, rendering tagged values from CBOR streams, and showing
// diagnostic notation.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/nanbstr/cmd/nanbstr/cli"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return root().Execute(os.Args[1:])
}

func root() *cli.App {
	return &cli.App{
		Name:    "nanbstr",
		Summary: "Work with CBOR-tagged IEEE-754 NaN bit patterns",
		Long: `Tools for the nan-bstr CBOR tag (102), which transports the exact bit
pattern of an IEEE-754 NaN as a big-endian byte string of 2, 4, 8, or
16 bytes. Deterministic CBOR profiles collapse NaNs to one canonical
form; values under this tag keep their sign, quiet/signaling indicator,
and payload bits exactly as produced.`,
		Commands: []*cli.Command{
			encodeCommand(),
			inspectCommand(),
			diagCommand(),
		},
		Examples: []cli.Example{
			{
				Note: "Encode a half-width quiet NaN and show its wire form",
				Line: "nanbstr encode 7e00 | xxd",
			},
			{
				Note: "Round-trip: encode then render",
				Line: "nanbstr encode fff0000000000001 | nanbstr inspect",
			},
			{
				Note: "Show diagnostic notation for a CBOR file",
				Line: "nanbstr diag < values.cbor",
			},
		},
	}
}
