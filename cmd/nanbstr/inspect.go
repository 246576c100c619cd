// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nanbstr/cmd/nanbstr/cli"
	"github.com/bureau-foundation/nanbstr/lib/codec"
	"github.com/bureau-foundation/nanbstr/lib/nanbstr"
)

func inspectCommand() *cli.Command {
	var skipInvalid bool

	return &cli.Command{
		Name:    "inspect",
		Summary: "Render tagged NaN values from a CBOR stream",
		Long: `Read a CBOR sequence of tag-102 values from stdin (or a file argument)
and print one human-readable line per value: width in bits, sign,
quiet/signaling, and the fraction and payload fields in hex.

Every item is re-validated on decode. An item that is not a tag-102
byte string, or whose bytes are not a NaN bit pattern, fails the whole
command unless --skip-invalid is set, in which case it is reported on
stderr and skipped; the exit code is then 1 if anything was skipped.`,
		Usage: "nanbstr inspect [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flagSet.BoolVar(&skipInvalid, "skip-invalid", false, "report undecodable items and continue")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Note: "Render a captured CBOR stream",
				Line: "nanbstr inspect < values.cbor",
			},
			{
				Note: "Render a file, skipping foreign items",
				Line: "nanbstr inspect --skip-invalid mixed.cbor",
			},
		},
		Run: func(args []string) error {
			data, remainingArgs, err := readInput(args)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("inspect takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			if len(data) == 0 {
				return fmt.Errorf("empty input: expected CBOR data on stdin")
			}
			logger := cli.NewLogger().With("command", "inspect")
			return inspectStream(bytes.NewReader(data), os.Stdout, logger, skipInvalid)
		},
	}
}

// inspectStream decodes a CBOR sequence of tagged NaN values from r
// and writes one rendered line per value to w.
//
// Items are read as raw CBOR first so that a value that fails NaN
// decoding is still fully consumed from the stream; malformed CBOR
// framing aborts regardless of skipInvalid because the item boundary
// is lost. When skipInvalid is set and anything was skipped, the
// return is an *cli.ExitError with code 1.
func inspectStream(r io.Reader, w io.Writer, logger *slog.Logger, skipInvalid bool) error {
	decoder := codec.NewDecoder(r)
	index := 0
	skipped := 0
	for {
		var raw codec.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read CBOR item %d: %w", index, err)
		}

		var value nanbstr.NaN
		if err := codec.Unmarshal(raw, &value); err != nil {
			if !skipInvalid {
				return fmt.Errorf("item %d: %w", index, err)
			}
			logger.Warn("skipping item", "index", index, "error", err.Error())
			skipped++
			index++
			continue
		}

		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
		index++
	}

	if skipped > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
