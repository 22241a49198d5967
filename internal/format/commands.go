package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"actlog/internal/model"
)

// commandRecord is the serializable projection of a command definition.
type commandRecord struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
}

// WriteCommands writes a template command table to w in the requested
// format. This is documentation output; execution always goes through a
// parsed line.
func WriteCommands(w io.Writer, cmds []model.Command, includeHeader bool, format string) error {
	format = strings.ToLower(format)
	switch format {
	case "", "table":
		return writeCommandsTable(w, cmds, includeHeader)
	case "plain":
		return writeCommandsPlain(w, cmds, includeHeader)
	case "json":
		return writeCommandsJSON(w, cmds)
	case "jsonl":
		return writeCommandsJSONL(w, cmds)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeCommandsPlain(w io.Writer, cmds []model.Command, includeHeader bool) error {
	if includeHeader {
		if _, err := fmt.Fprintln(w, "name\taliases\tdescription"); err != nil {
			return err
		}
	}
	for _, cmd := range cmds {
		line := fmt.Sprintf("%s\t%s\t%s", cmd.Name, strings.Join(cmd.Aliases, ","), cmd.Description)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeCommandsJSON(w io.Writer, cmds []model.Command) error {
	records := make([]commandRecord, len(cmds))
	for i, cmd := range cmds {
		records[i] = commandRecord{Name: cmd.Name, Aliases: cmd.Aliases, Description: cmd.Description}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeCommandsJSONL(w io.Writer, cmds []model.Command) error {
	enc := json.NewEncoder(w)
	for _, cmd := range cmds {
		rec := commandRecord{Name: cmd.Name, Aliases: cmd.Aliases, Description: cmd.Description}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeCommandsTable(w io.Writer, cmds []model.Command, includeHeader bool) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 60},
	})

	if includeHeader {
		tw.AppendHeader(table.Row{"Command", "Aliases", "Description"})
	}

	for _, cmd := range cmds {
		tw.AppendRow(table.Row{cmd.Name, strings.Join(cmd.Aliases, ", "), cmd.Description})
	}

	if len(cmds) == 0 {
		tw.AppendRow(table.Row{"(none)", "-", "-"})
	}

	_ = tw.Render()
	return nil
}
