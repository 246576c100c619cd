// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/nanbstr/cmd/nanbstr/cli"
	"github.com/bureau-foundation/nanbstr/lib/codec"
)

func diagCommand() *cli.Command {
	return &cli.Command{
		Name:    "diag",
		Summary: "Convert CBOR on stdin to diagnostic notation",
		Long: `Read CBOR from stdin (or a file argument) and write RFC 8949 Extended
Diagnostic Notation (EDN) to stdout, one line per sequence item.

Diagnostic notation preserves CBOR type information: a tagged NaN byte
string renders with its tag number and hex payload, e.g.

  102(h'7e00')
  102(h'fff0000000000001')

The input need not contain nan-bstr values; any CBOR is rendered.`,
		Usage: "nanbstr diag [file]",
		Examples: []cli.Example{
			{
				Note: "Show diagnostic notation for a CBOR file",
				Line: "nanbstr diag < values.cbor",
			},
			{
				Note: "Encode and inspect the wire structure",
				Line: "nanbstr encode 7e00 | nanbstr diag",
			},
		},
		Run: func(args []string) error {
			data, remainingArgs, err := readInput(args)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("diag takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			return diagCBOR(data, os.Stdout)
		},
	}
}

// diagCBOR writes diagnostic notation for data to w, treating the
// input as a CBOR sequence: one line per item.
func diagCBOR(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data on stdin")
	}

	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}

	return nil
}
