// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testApp(commands ...*Command) *App {
	return &App{Name: "nanbstr", Commands: commands}
}

func TestAppExecute_Dispatch(t *testing.T) {
	var ran string
	app := testApp(
		&Command{Name: "encode", Run: func(args []string) error { ran = "encode"; return nil }},
		&Command{Name: "inspect", Run: func(args []string) error { ran = "inspect"; return nil }},
	)

	if err := app.Execute([]string{"inspect"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if ran != "inspect" {
		t.Errorf("ran %q, want %q", ran, "inspect")
	}
}

func TestAppExecute_PassesArgs(t *testing.T) {
	var got []string
	app := testApp(&Command{
		Name: "encode",
		Run:  func(args []string) error { got = args; return nil },
	})

	if err := app.Execute([]string{"encode", "7e00", "7fc00001"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(got) != 2 || got[0] != "7e00" || got[1] != "7fc00001" {
		t.Errorf("args = %v, want [7e00 7fc00001]", got)
	}
}

func TestAppExecute_FlagParsing(t *testing.T) {
	var diag bool
	var positional []string
	app := testApp(&Command{
		Name: "encode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.BoolVar(&diag, "diag", false, "diagnostic notation output")
			return flagSet
		},
		Run: func(args []string) error { positional = args; return nil },
	})

	if err := app.Execute([]string{"encode", "--diag", "7e00"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !diag {
		t.Error("diag = false, want true")
	}
	if len(positional) != 1 || positional[0] != "7e00" {
		t.Errorf("positional = %v, want [7e00]", positional)
	}
}

func TestAppExecute_UnknownCommandSuggestion(t *testing.T) {
	app := testApp(
		&Command{Name: "encode", Run: func(args []string) error { return nil }},
		&Command{Name: "inspect", Run: func(args []string) error { return nil }},
	)

	err := app.Execute([]string{"encde"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "encode"`) {
		t.Errorf("error = %q, want suggestion for 'encode'", err.Error())
	}
}

func TestAppExecute_UnknownFlagSuggestion(t *testing.T) {
	app := testApp(&Command{
		Name: "encode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.Bool("diag", false, "diagnostic notation output")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	})

	err := app.Execute([]string{"encode", "--daig"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --diag") {
		t.Errorf("error = %q, want suggestion for '--diag'", err.Error())
	}
}

func TestAppExecute_CommandRequired(t *testing.T) {
	app := testApp(&Command{Name: "encode", Run: func(args []string) error { return nil }})

	err := app.Execute(nil)
	if err == nil {
		t.Fatal("Execute() = nil, want error when no command given")
	}
	if !strings.Contains(err.Error(), "command required") {
		t.Errorf("error = %q, want 'command required'", err.Error())
	}
}

func TestAppPrintHelp(t *testing.T) {
	app := &App{
		Name:    "nanbstr",
		Summary: "Work with CBOR-tagged NaN bit patterns",
		Commands: []*Command{
			{Name: "encode", Summary: "Encode hex bit patterns as tagged CBOR"},
			{Name: "inspect", Summary: "Render tagged NaN values from a CBOR stream"},
		},
		Examples: []Example{
			{Note: "Encode a half-width quiet NaN", Line: "nanbstr encode 7e00"},
		},
	}

	var buffer bytes.Buffer
	app.printHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{
		"Work with CBOR-tagged NaN bit patterns",
		"encode",
		"inspect",
		"nanbstr encode 7e00",
		"Run 'nanbstr <command> --help'",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "diag", 4},
		{"encode", "encode", 0},
		{"encde", "encode", 1},
		{"daig", "diag", 2},
		{"inspect", "encode", 6},
	}
	for _, c := range cases {
		if got := editDistance(c.a, c.b); got != c.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
