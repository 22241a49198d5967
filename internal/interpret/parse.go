// Package interpret resolves free-text input against a parsed line's
// commands, with a natural-language heuristic and a configurable external
// fallback for queries no command can answer.
package interpret

import "strings"

// Parsed is the command/parameter split of a raw query string.
type Parsed struct {
	Command string
	Params  string
}

// ParseCommand splits input into a lowercased command token and a verbatim
// (trimmed) parameter string. It returns nil for empty or whitespace-only
// input. This is a standalone utility for callers such as autocomplete;
// Interpret does not use it.
func ParseCommand(input string) *Parsed {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	command, params, _ := strings.Cut(trimmed, " ")
	return &Parsed{
		Command: strings.ToLower(command),
		Params:  strings.TrimSpace(params),
	}
}

// naturalPrefixes are leading words that signal a natural-language question.
var naturalPrefixes = []string{
	"what", "why", "how", "when", "where", "who",
	"can", "could", "would", "should",
	"is", "are",
	"tell me", "explain", "describe",
}

// IsNaturalLanguage reports whether input reads like a question rather than
// a command. Pure heuristic, independent of any registered command set; used
// as a UI signal only, never as a gate inside Interpret.
func IsNaturalLanguage(input string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	for _, prefix := range naturalPrefixes {
		if trimmed == prefix || strings.HasPrefix(trimmed, prefix+" ") {
			return true
		}
	}
	return false
}
