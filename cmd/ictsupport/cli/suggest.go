// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// Typos within this edit distance of a real name get a "did you mean"
// suggestion; anything further is treated as unrelated input.
const suggestionThreshold = 3

// suggestCommand returns the subcommand name closest to the unknown
// input, or "" when nothing is within the suggestion threshold.
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for index, command := range commands {
		names[index] = command.Name
	}
	return closestName(unknown, names)
}

// suggestFlag finds the first unrecognized flag in args and returns the
// closest defined flag, already prefixed with -- (or - for shorthands).
// Returns "" when every flag in args is known or nothing is close.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(flag *pflag.Flag) {
		defined = append(defined, flag.Name)
	})

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		name, _, _ = strings.Cut(name, "=")
		if flagSet.Lookup(name) != nil {
			continue
		}

		// Only the first unknown flag gets a suggestion; pflag stops
		// parsing there anyway.
		match := closestName(name, defined)
		switch {
		case match == "":
			return ""
		case len(match) == 1:
			return "-" + match
		default:
			return "--" + match
		}
	}

	return ""
}

func closestName(input string, candidates []string) string {
	best := ""
	bestDistance := suggestionThreshold + 1
	for _, candidate := range candidates {
		if distance := editDistance(input, candidate); distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, computed
// with a single rolling row over the shorter string.
func editDistance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		previousDiagonal := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			substitution := previousDiagonal
			if a[i-1] != b[j-1] {
				substitution++
			}
			previousDiagonal = row[i]
			row[i] = min(row[i]+1, min(row[i-1]+1, substitution))
		}
	}

	return row[len(a)]
}
