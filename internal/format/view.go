package format

import (
	"fmt"
	"strings"

	"actlog/internal/model"
)

// RenderExpansion converts an expansion into printable text, word-wrapping
// the content and appending the suggestion list.
func RenderExpansion(exp model.Expansion, wrapWidth int) string {
	out := wrapBody(exp.Content, wrapWidth)
	if len(exp.Suggestions) > 0 {
		out += fmt.Sprintf("\n\nTry: %s", strings.Join(exp.Suggestions, ", "))
	}
	return out
}

// RenderQueryResult converts a query result into printable text. An
// unresolved result renders its error; a silent no-op renders nothing.
func RenderQueryResult(res model.QueryResult, wrapWidth int) string {
	if res.Handled {
		return wrapBody(res.Content, wrapWidth)
	}
	if res.Error != "" {
		return res.Error
	}
	return ""
}

// wrapBody word-wraps text to width, preserving existing line breaks.
func wrapBody(body string, width int) string {
	if width <= 0 {
		return body
	}

	lines := strings.Split(body, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(line, width))
	}
	return strings.Join(wrapped, "\n")
}

func wrapLine(line string, width int) string {
	if len(line) <= width {
		return line
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}

	var out []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			out = append(out, current)
			current = word
		} else {
			current += " " + word
		}
	}
	out = append(out, current)

	return strings.Join(out, "\n")
}
