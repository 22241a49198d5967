// Package format provides formatting and rendering functions for parsed
// log lines, command tables, and query results.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"actlog/internal/model"
)

// detailsWidth caps the details column in table and plain output.
const detailsWidth = 60

// lineRecord is the serializable projection of a parsed line. The line's
// command table and expansion renderer are behavior, not data, and are
// excluded from machine-readable output.
type lineRecord struct {
	Timestamp string         `json:"timestamp"`
	Type      string         `json:"type"`
	Level     string         `json:"level,omitempty"`
	Event     string         `json:"event"`
	ID        string         `json:"id"`
	Context   map[string]any `json:"context,omitempty"`
	Raw       string         `json:"raw"`
}

func toRecord(line *model.Line) lineRecord {
	return lineRecord{
		Timestamp: line.Timestamp,
		Type:      line.Source.Type,
		Level:     string(line.Level),
		Event:     line.Message,
		ID:        line.Source.ID,
		Context:   line.Source.Context,
		Raw:       line.Raw,
	}
}

// WriteLines writes parsed lines to w in the requested format.
func WriteLines(w io.Writer, lines []*model.Line, includeHeader bool, format string) error {
	format = strings.ToLower(format)
	switch format {
	case "", "table":
		return writeLinesTable(w, lines, includeHeader)
	case "plain":
		return writeLinesPlain(w, lines, includeHeader)
	case "json":
		return writeLinesJSON(w, lines)
	case "jsonl":
		return writeLinesJSONL(w, lines)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeLinesPlain(w io.Writer, lines []*model.Line, includeHeader bool) error {
	if includeHeader {
		if _, err := fmt.Fprintln(w, "timestamp\ttype\tlevel\tevent\tid\tdetails"); err != nil {
			return err
		}
	}

	for _, line := range lines {
		out := fmt.Sprintf(
			"%s\t%s\t%s\t%s\t%s\t%s",
			line.Timestamp,
			line.Source.Type,
			line.Level,
			line.Message,
			line.Source.ID,
			escapeNewlines(contextDetails(line)),
		)
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

func writeLinesJSON(w io.Writer, lines []*model.Line) error {
	records := make([]lineRecord, len(lines))
	for i, line := range lines {
		records[i] = toRecord(line)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeLinesJSONL(w io.Writer, lines []*model.Line) error {
	enc := json.NewEncoder(w)
	for _, line := range lines {
		if err := enc.Encode(toRecord(line)); err != nil {
			return err
		}
	}
	return nil
}

func writeLinesTable(w io.Writer, lines []*model.Line, includeHeader bool) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateHeader = true
	tw.Style().Options.DrawBorder = true

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 6, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: detailsWidth + 10},
	})

	if includeHeader {
		tw.AppendHeader(table.Row{"Timestamp", "Type", "Level", "Event", "ID", "Details"})
	}

	for _, line := range lines {
		tw.AppendRow(table.Row{
			line.Timestamp,
			line.Source.Type,
			string(line.Level),
			line.Message,
			line.Source.ID,
			truncate(escapeNewlines(contextDetails(line)), detailsWidth),
		})
	}

	if len(lines) == 0 {
		tw.AppendRow(table.Row{"-", "(no lines)", "-", "-", "-", "-"})
	}

	_ = tw.Render()
	return nil
}

// contextDetails extracts the free-text details field when present.
func contextDetails(line *model.Line) string {
	if details, ok := line.Source.Context["details"].(string); ok {
		return details
	}
	return ""
}

func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}

// truncate shortens s to width display cells, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
