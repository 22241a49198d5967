// Package beads provides the format adapter for beads event logs: a
// pipe-delimited grammar of the form
// TIMESTAMP|EVENT_CODE|ENTITY_ID|AGENT_ID|SESSION_ID|DETAILS, where DETAILS
// is free text that may itself contain the delimiter.
package beads

import (
	"regexp"
	"strings"

	"actlog/internal/model"
)

// TypeName is the registry type name for the beads format.
const TypeName = "beads"

// delimiter separates fields in a beads event line.
const delimiter = "|"

// timestampPattern accepts ISO-8601 date-time prefixes.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)

// Adapter implements model.Adapter for beads event logs. Commands invoke the
// bd CLI through the configured runner.
type Adapter struct {
	runner Runner
}

// New returns a beads adapter. A nil runner defaults to executing the real
// bd binary.
func New(r Runner) *Adapter {
	if r == nil {
		r = ExecRunner{}
	}
	return &Adapter{runner: r}
}

// Type returns the beads format name.
func (a *Adapter) Type() string { return TypeName }

// Parse validates and converts a raw beads event line. It returns nil on the
// first grammar violation: too few fields, a non-ISO timestamp, or an event
// code without the category-dot-action form.
func (a *Adapter) Parse(raw string) *model.Line {
	if raw == "" {
		return nil
	}

	fields := strings.Split(raw, delimiter)
	if len(fields) < 5 {
		return nil
	}

	timestamp := fields[0]
	if !timestampPattern.MatchString(timestamp) {
		return nil
	}

	code := fields[1]
	if code == "" || !strings.Contains(code, ".") {
		return nil
	}

	id := fields[2]
	if id == "" {
		id = model.SentinelID
	}

	agent := fields[3]
	session := fields[4]
	details := ""
	if len(fields) > 5 {
		// DETAILS may contain the delimiter; reassemble the tail.
		details = strings.Join(fields[5:], delimiter)
	}

	ctx := map[string]any{"category": categoryLabel(code)}
	if agent != "" {
		ctx["agentId"] = agent
	}
	if session != "" {
		ctx["sessionId"] = session
	}
	if details != "" {
		ctx["details"] = details
	}

	return &model.Line{
		Timestamp: timestamp,
		Message:   code,
		Raw:       raw,
		Level:     inferLevel(code),
		Source: model.Source{
			Type:    TypeName,
			ID:      id,
			Context: ctx,
		},
		Commands: commandTable(a.runner),
		Expand:   expandLine,
	}
}

// DefaultExpansion renders the description of a parsed beads line.
func (a *Adapter) DefaultExpansion(line *model.Line) model.Expansion {
	return line.DefaultExpansion()
}

// HandleQuery resolves input against a parsed beads line.
func (a *Adapter) HandleQuery(line *model.Line, input string) model.QueryResult {
	return line.HandleQuery(input)
}

// Commands returns the template command table for documentation. The
// template shares handlers with per-line tables; execution still requires a
// parsed line.
func (a *Adapter) Commands() []model.Command {
	return commandTable(a.runner)
}
