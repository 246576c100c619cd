// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestionTolerance is the largest edit distance still offered as a
// "did you mean" hint. Three edits covers transpositions, dropped
// characters, and fat-fingered neighbors without suggesting nonsense.
const suggestionTolerance = 3

// closest returns the candidate nearest to input by edit distance, or
// "" when nothing is within suggestionTolerance.
func closest(input string, candidates []string) string {
	best := ""
	bestDistance := suggestionTolerance + 1
	for _, candidate := range candidates {
		if d := editDistance(input, candidate); d < bestDistance {
			bestDistance = d
			best = candidate
		}
	}
	return best
}

// closestFlag finds the first argument that looks like a flag but is
// not defined in flagSet, and returns the nearest defined flag with
// its dash prefix restored. Returns "" when there is no near miss.
func closestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if flagSet.Lookup(name) != nil {
			continue
		}

		match := closest(name, defined)
		if match == "" {
			return ""
		}
		if len(match) == 1 {
			return "-" + match
		}
		return "--" + match
	}
	return ""
}

// editDistance is the Levenshtein distance between two strings: the
// number of single-character insertions, deletions, and substitutions
// separating them. Two reusable rows instead of the full matrix.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			replace := prev[i-1]
			if a[i-1] != b[j-1] {
				replace++
			}
			curr[i] = min(replace, min(prev[i], curr[i-1])+1)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}
