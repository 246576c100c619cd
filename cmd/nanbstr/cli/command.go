// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the nanbstr binary:
// flag parsing via pflag, structured help, typo suggestions, and exit
// code plumbing.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// App is a flat, single-level command dispatcher: one tool name, a set
// of leaf commands, no nesting. The first positional argument selects
// the command; everything after it belongs to that command.
type App struct {
	// Name is the binary name (e.g., "nanbstr").
	Name string

	// Summary is the one-line description at the top of the help output.
	Summary string

	// Long is the extended description. Shown instead of Summary when set.
	Long string

	// Commands are the leaf commands, listed in help in this order.
	Commands []*Command

	// Examples are shown at the end of the app help.
	Examples []Example
}

// Command is a single leaf command within an App.
type Command struct {
	// Name selects the command on the command line.
	Name string

	// Summary is the one-line description in the app's command listing.
	Summary string

	// Long is the extended description in the command's own help.
	Long string

	// Usage is the literal usage line (e.g., "nanbstr encode [flags]
	// <hex-pattern>..."). Synthesized from Name when empty.
	Usage string

	// Examples are shown at the end of the command help.
	Examples []Example

	// Flags builds the command's flag set. Invoked fresh for each parse
	// and for help rendering; nil means the command takes no flags.
	Flags func() *pflag.FlagSet

	// Run receives the positional arguments left after flag parsing.
	Run func(args []string) error
}

// Example is a worked command line in help output.
type Example struct {
	// Note says what the example demonstrates.
	Note string
	// Line is the literal command line.
	Line string
}

// Execute dispatches os.Args[1:]-style arguments to the selected
// command. Help requests print to stderr and return nil.
func (a *App) Execute(args []string) error {
	if len(args) == 0 {
		a.printHelp(os.Stderr)
		return fmt.Errorf("command required")
	}
	if isHelpArg(args[0]) {
		a.printHelp(os.Stderr)
		return nil
	}
	if strings.HasPrefix(args[0], "-") {
		a.printHelp(os.Stderr)
		return fmt.Errorf("command required (got flag %q)", args[0])
	}

	for _, command := range a.Commands {
		if command.Name == args[0] {
			return command.execute(a.Name, args[1:])
		}
	}

	names := make([]string, len(a.Commands))
	for i, command := range a.Commands {
		names[i] = command.Name
	}
	if match := closest(args[0], names); match != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
			args[0], match, a.Name)
	}
	return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.", args[0], a.Name)
}

func (c *Command) execute(appName string, args []string) error {
	path := appName + " " + c.Name

	if len(args) > 0 && isHelpArg(args[0]) {
		c.printHelp(os.Stderr, appName)
		return nil
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		// pflag's own error printing and usage dump are suppressed; the
		// error is reformatted below with a typo suggestion.
		flagSet.SetOutput(io.Discard)

		if err := flagSet.Parse(args); err != nil {
			message := err.Error()
			if strings.Contains(message, "unknown flag") {
				// The failed parse may have consumed flag state, so
				// suggestions run against a fresh flag set.
				if match := closestFlag(args, c.Flags()); match != "" {
					return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
						message, match, path)
				}
			}
			return fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, path)
		}
		args = flagSet.Args()
	}

	return c.Run(args)
}

func (a *App) printHelp(w io.Writer) {
	switch {
	case a.Long != "":
		fmt.Fprintf(w, "%s\n\n", a.Long)
	case a.Summary != "":
		fmt.Fprintf(w, "%s\n\n", a.Summary)
	}

	fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", a.Name)

	fmt.Fprintf(w, "\nCommands:\n")
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	for _, command := range a.Commands {
		fmt.Fprintf(tw, "  %s\t%s\n", command.Name, command.Summary)
	}
	tw.Flush()

	printExamples(w, a.Examples)
	fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", a.Name)
}

func (c *Command) printHelp(w io.Writer, appName string) {
	switch {
	case c.Long != "":
		fmt.Fprintf(w, "%s\n\n", c.Long)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	if c.Usage != "" {
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	} else {
		fmt.Fprintf(w, "Usage:\n  %s %s [flags]\n", appName, c.Name)
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		var defaults strings.Builder
		flagSet.SetOutput(&defaults)
		flagSet.PrintDefaults()
		if defaults.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", defaults.String())
		}
	}

	printExamples(w, c.Examples)
}

func printExamples(w io.Writer, examples []Example) {
	if len(examples) == 0 {
		return
	}
	fmt.Fprintf(w, "\nExamples:\n")
	for i, example := range examples {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if example.Note != "" {
			fmt.Fprintf(w, "  # %s\n", example.Note)
		}
		fmt.Fprintf(w, "  %s\n", example.Line)
	}
}

func isHelpArg(arg string) bool {
	return arg == "help" || arg == "-h" || arg == "--help"
}
