package model

import "strings"

// Command is a single entry in a line's command table. Handlers receive the
// line explicitly rather than closing over parsed state, so a command table
// can be defined statically and bound to any line of its format.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	// Run executes the command against the given line. Implementations
	// must represent operational failures (such as an unreachable external
	// process) in the returned QueryResult, never by panicking.
	Run func(line *Line, params string) QueryResult
}

// Matches reports whether name selects this command. Matching is
// case-insensitive against the command name and every alias; normalization
// happens here, at match time, not at construction.
func (c *Command) Matches(name string) bool {
	if strings.EqualFold(c.Name, name) {
		return true
	}
	for _, alias := range c.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// CommandNames returns the command names in table order.
func CommandNames(cmds []Command) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}
