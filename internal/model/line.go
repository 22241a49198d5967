// Package model provides common types for actionable log line implementations.
package model

import (
	"fmt"
	"strings"
)

// Level represents the severity attached to a parsed line.
// The empty string means the adapter did not assign one.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// SentinelID is the placeholder entity id used when a line carries no
// entity reference.
const SentinelID = "none"

// Source identifies where a parsed line came from. Type names the adapter
// that produced it, ID is the entity's natural key within that source, and
// Context holds adapter-specific fields. Context is populated once at parse
// time and must not be mutated afterwards.
type Source struct {
	Type    string
	ID      string
	Context map[string]any
}

// Line is a parsed, queryable log line. Instances are created once per
// parse call and are immutable by convention; callers own their lifetime.
type Line struct {
	// Timestamp is the ISO-8601 timestamp string from the raw line.
	Timestamp string
	// Message is the normalized event identifier (a dotted event code).
	Message string
	// Raw preserves the original line verbatim.
	Raw string
	// Level is the optional severity assigned by the adapter.
	Level Level
	// Source identifies the producing adapter and the entity context.
	Source Source
	// Commands is the ordered command table bound to this line. It is
	// built fresh per parse and never shared across lines.
	Commands []Command
	// Expand renders the default expansion for this line. Adapters install
	// it at parse time; when nil, DefaultExpansion falls back to Raw.
	Expand func(*Line) Expansion
}

// DefaultExpansion returns the human-readable description of the line.
func (l *Line) DefaultExpansion() Expansion {
	if l.Expand == nil {
		return Expansion{Content: l.Raw}
	}
	return l.Expand(l)
}

// HandleQuery resolves input against the line's command table. The trimmed,
// lowercased input is split on whitespace: the first token selects a command
// by name or alias, the remainder (rejoined with single spaces) becomes the
// parameter string. The first matching command in table order wins.
func (l *Line) HandleQuery(input string) QueryResult {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return QueryResult{Handled: false}
	}

	name := fields[0]
	params := strings.Join(fields[1:], " ")

	for i := range l.Commands {
		if l.Commands[i].Matches(name) {
			return l.Commands[i].Run(l, params)
		}
	}

	return QueryResult{
		Handled: false,
		Error:   fmt.Sprintf("Unknown command: %s. Try: %s", name, strings.Join(CommandNames(l.Commands), ", ")),
	}
}

// Expansion is the result of rendering a line's default description.
// Content is the only required field.
type Expansion struct {
	Content     string
	Data        map[string]any
	Suggestions []string
}

// QueryResult is the outcome of resolving a query against a line.
// Handled=false with an empty Error is a valid silent no-op; Handled=false
// with Error set is the standard unresolved shape.
type QueryResult struct {
	Handled bool
	Content string
	Data    map[string]any
	Error   string
}
