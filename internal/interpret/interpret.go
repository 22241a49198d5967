package interpret

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"actlog/internal/model"
)

// FallbackHandler answers a natural-language query about a line. lineContext
// is the rendered description of the line and its commands; query is the
// user's unresolved input. One attempt per call, no retry.
type FallbackHandler func(ctx context.Context, lineContext, query string) (string, error)

// FallbackConfig controls the external natural-language fallback. The zero
// value is disabled.
type FallbackConfig struct {
	Enabled bool
	Handler FallbackHandler
}

// Interpreter resolves queries against parsed lines. The zero value works
// with the fallback disabled.
type Interpreter struct {
	fallback FallbackConfig
}

// New returns an interpreter with the fallback disabled.
func New() *Interpreter {
	return &Interpreter{}
}

// ConfigureClaudeFallback replaces the fallback configuration wholesale.
// Last call wins; partial updates are not merged.
func (i *Interpreter) ConfigureClaudeFallback(cfg FallbackConfig) {
	i.fallback = cfg
}

// Interpret resolves input against line's own commands first. When the line
// cannot handle it and the fallback is enabled and configured, the fallback
// handler is invoked once with the line's context. Handler failure is
// surfaced as an unresolved result, never propagated. The line's source is
// never mutated.
func (i *Interpreter) Interpret(ctx context.Context, line *model.Line, input string) model.QueryResult {
	result := line.HandleQuery(input)
	if result.Handled {
		return result
	}

	if !i.fallback.Enabled || i.fallback.Handler == nil {
		return result
	}

	response, err := i.fallback.Handler(ctx, BuildContext(line), input)
	if err != nil {
		return model.QueryResult{
			Handled: false,
			Error:   fmt.Sprintf("Claude fallback failed: %v", err),
		}
	}
	return model.QueryResult{Handled: true, Content: response}
}

// BuildContext renders the line description handed to the fallback handler:
// type, timestamp, event, id, the non-sentinel context entries, and the
// available commands.
func BuildContext(line *model.Line) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Type: %s\n", line.Source.Type)
	fmt.Fprintf(&b, "Timestamp: %s\n", line.Timestamp)
	fmt.Fprintf(&b, "Event: %s\n", line.Message)
	fmt.Fprintf(&b, "ID: %s\n", line.Source.ID)

	keys := make([]string, 0, len(line.Source.Context))
	for key := range line.Source.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := line.Source.Context[key]
		if s, ok := value.(string); ok && (s == "" || s == model.SentinelID) {
			continue
		}
		fmt.Fprintf(&b, "%s: %v\n", key, value)
	}

	if len(line.Commands) > 0 {
		b.WriteString("Commands:\n")
		for _, cmd := range line.Commands {
			fmt.Fprintf(&b, "  %s - %s\n", cmd.Name, cmd.Description)
		}
	}

	return b.String()
}
