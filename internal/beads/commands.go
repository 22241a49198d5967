package beads

import (
	"fmt"
	"strconv"
	"strings"

	"actlog/internal/model"
)

// commandTable builds the beads command set. A fresh slice is returned per
// call so each parsed line carries its own table; handlers take the line
// explicitly instead of closing over parsed state.
func commandTable(r Runner) []model.Command {
	return []model.Command{
		{
			Name:        "show",
			Aliases:     []string{"info"},
			Description: "Show the entity referenced by this event",
			Run: func(line *model.Line, _ string) model.QueryResult {
				if line.Source.ID == model.SentinelID {
					return model.QueryResult{Handled: true, Content: "No entity is associated with this event."}
				}
				return runBD(r, "show", line.Source.ID)
			},
		},
		{
			Name:        "related",
			Aliases:     []string{"rel"},
			Description: "List entities related to this event's entity",
			Run: func(line *model.Line, _ string) model.QueryResult {
				return runBD(r, "list", "--related", line.Source.ID)
			},
		},
		{
			Name:        "deps",
			Aliases:     []string{"dependencies"},
			Description: "Show the dependency tree of this event's entity",
			Run: func(line *model.Line, _ string) model.QueryResult {
				if line.Source.ID == model.SentinelID {
					return model.QueryResult{Handled: true, Content: "No entity is associated with this event."}
				}
				return runBD(r, "dep", "tree", line.Source.ID)
			},
		},
		{
			Name:        "category",
			Aliases:     []string{"cat"},
			Description: "List events in the same category",
			Run: func(line *model.Line, _ string) model.QueryResult {
				return runBD(r, "events", "--category", categoryPrefix(line.Message))
			},
		},
		{
			Name:        "session",
			Aliases:     []string{"sess"},
			Description: "List events from the same session",
			Run: func(line *model.Line, _ string) model.QueryResult {
				session, _ := line.Source.Context["sessionId"].(string)
				if session == "" {
					return model.QueryResult{Handled: true, Content: "No session is associated with this event."}
				}
				return runBD(r, "events", "--session", session)
			},
		},
		{
			Name:        "before",
			Aliases:     []string{"b"},
			Description: "List events before this one (optional count)",
			Run: func(line *model.Line, params string) model.QueryResult {
				return runBD(r, timeWindowArgs("--before", line.Timestamp, params)...)
			},
		},
		{
			Name:        "after",
			Aliases:     []string{"a"},
			Description: "List events after this one (optional count)",
			Run: func(line *model.Line, params string) model.QueryResult {
				return runBD(r, timeWindowArgs("--after", line.Timestamp, params)...)
			},
		},
	}
}

// timeWindowArgs builds a bd events invocation around a timestamp. A numeric
// params value becomes a result limit; anything else is ignored.
func timeWindowArgs(flag, timestamp, params string) []string {
	args := []string{"events", flag, timestamp}
	if n, err := strconv.Atoi(strings.TrimSpace(params)); err == nil && n > 0 {
		args = append(args, "--limit", strconv.Itoa(n))
	}
	return args
}

// runBD executes a bd invocation and always produces a displayable result.
// Process failure is part of the answer, not an exception: the query was
// handled even though the underlying operation failed.
func runBD(r Runner, args ...string) model.QueryResult {
	out, err := r.Run(args...)
	if err != nil {
		return model.QueryResult{
			Handled: true,
			Content: fmt.Sprintf("bd %s failed: %v", strings.Join(args, " "), err),
		}
	}
	return model.QueryResult{Handled: true, Content: out}
}
