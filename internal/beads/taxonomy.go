package beads

import (
	"strings"

	"actlog/internal/model"
)

// categories maps event-code prefixes to human-readable category labels.
var categories = map[string]string{
	"bd":      "Issue Tracking",
	"git":     "Version Control",
	"agent":   "Agent Activity",
	"session": "Session Lifecycle",
	"file":    "File Operation",
	"test":    "Testing",
	"build":   "Build",
}

// categoryUnknown labels prefixes outside the known taxonomy. An unknown
// prefix never fails the parse.
const categoryUnknown = "Unknown"

// categoryPrefix returns the part of an event code before the first dot.
func categoryPrefix(code string) string {
	prefix, _, _ := strings.Cut(code, ".")
	return prefix
}

// actionSuffix returns the part of an event code after the first dot.
func actionSuffix(code string) string {
	_, action, _ := strings.Cut(code, ".")
	return action
}

// categoryLabel maps an event code to its category label.
func categoryLabel(code string) string {
	if label, ok := categories[categoryPrefix(code)]; ok {
		return label
	}
	return categoryUnknown
}

// inferLevel derives a severity from the action suffix. The wire grammar
// carries no level field.
func inferLevel(code string) model.Level {
	action := actionSuffix(code)
	switch {
	case strings.Contains(action, "error"), strings.Contains(action, "fail"):
		return model.LevelError
	case strings.Contains(action, "warn"):
		return model.LevelWarn
	default:
		return model.LevelInfo
	}
}
