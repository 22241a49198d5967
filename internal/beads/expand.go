package beads

import (
	"fmt"
	"strings"

	"actlog/internal/model"
)

// expansionSuggestions is the static follow-up list attached to every beads
// expansion. Commands that do not apply to a particular line answer with an
// informational message, so suggesting them is always safe.
var expansionSuggestions = []string{"show", "related", "category", "session"}

// expandLine renders the default expansion for a parsed beads line: event
// code, category, action, then the optional entity/agent/session/details
// lines (omitted when absent or sentinel).
func expandLine(line *model.Line) model.Expansion {
	code := line.Message
	category := categoryLabel(code)
	action := actionSuffix(code)

	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", code)
	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Action: %s\n", action)
	if line.Source.ID != model.SentinelID {
		fmt.Fprintf(&b, "ID: %s\n", line.Source.ID)
	}
	if agent, ok := line.Source.Context["agentId"]; ok {
		fmt.Fprintf(&b, "Agent: %v\n", agent)
	}
	if session, ok := line.Source.Context["sessionId"]; ok {
		fmt.Fprintf(&b, "Session: %v\n", session)
	}
	if details, ok := line.Source.Context["details"]; ok {
		fmt.Fprintf(&b, "Details: %v\n", details)
	}

	return model.Expansion{
		Content: strings.TrimRight(b.String(), "\n"),
		Data: map[string]any{
			"event":     code,
			"category":  category,
			"action":    action,
			"id":        line.Source.ID,
			"timestamp": line.Timestamp,
		},
		Suggestions: expansionSuggestions,
	}
}
