// Package main provides the actlog CLI for turning event log lines into
// queryable interactive entities.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"actlog/internal/beads"
	"actlog/internal/claude"
	"actlog/internal/format"
	"actlog/internal/interpret"
	"actlog/internal/registry"
	"actlog/internal/store"
)

var version = "dev"

// defaultWrap is used when stdout is a terminal whose width cannot be
// determined.
const defaultWrap = 100

var rootCmd = &cobra.Command{
	Use:     "actlog",
	Short:   "Parse, expand, and query line-oriented event logs",
	Version: version,
}

func init() {
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newCommandsCmd())
	rootCmd.AddCommand(newTypesCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "actlog: %v\n", err)
		os.Exit(1)
	}
}

// buildRegistry returns the default registry with the built-in adapters
// registered. The bd binary can be overridden with ACTLOG_BD_BIN.
func buildRegistry() *registry.Registry {
	reg := registry.Default()
	if len(reg.Types()) == 0 {
		reg.Register(beads.New(beads.ExecRunner{Bin: os.Getenv("ACTLOG_BD_BIN")}))
	}
	return reg
}

// resolveWrap decides the wrap width: an explicit flag wins, otherwise the
// terminal width when stdout is a terminal, otherwise no wrapping.
func resolveWrap(flag int) int {
	if flag != 0 {
		if flag < 0 {
			return 0
		}
		return flag
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWrap
	}
	return width
}

func parseTimeFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value: %w", name, err)
	}
	return &t, nil
}

func newScanCmd() *cobra.Command {
	var (
		formatFlag   string
		noHeader     bool
		afterStr     string
		beforeStr    string
		limit        int
		types        []string
		showUnparsed bool
	)

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Parse every line of a log file through the registered adapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			after, err := parseTimeFlag("after", afterStr)
			if err != nil {
				return err
			}
			before, err := parseTimeFlag("before", beforeStr)
			if err != nil {
				return err
			}

			opts := store.ScanOptions{
				After:  after,
				Before: before,
				Limit:  limit,
				Types:  types,
			}

			reg := buildRegistry()
			var result store.ScanResult
			if args[0] == "-" {
				result, err = store.Scan(cmd.InOrStdin(), reg, opts)
			} else {
				result, err = store.ScanFile(args[0], reg, opts)
			}
			if err != nil {
				return err
			}

			for _, warning := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", warning)
			}

			if err := format.WriteLines(cmd.OutOrStdout(), result.Lines, !noHeader, formatFlag); err != nil {
				return err
			}

			if showUnparsed && len(result.Unparsed) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				for _, u := range result.Unparsed {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", u.LineNo, u.Raw)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "table", "Output format: table, plain, json, jsonl")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row")
	cmd.Flags().StringVar(&afterStr, "after", "", "Keep lines after this RFC3339 timestamp")
	cmd.Flags().StringVar(&beforeStr, "before", "", "Keep lines before this RFC3339 timestamp")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of parsed lines (0 = unlimited)")
	cmd.Flags().StringSliceVar(&types, "type", nil, "Keep only lines from these adapter types")
	cmd.Flags().BoolVar(&showUnparsed, "unparsed", false, "Also print lines no adapter matched")

	return cmd
}

// readLineArg resolves the raw line either from the positional argument or
// from --file/--line.
func readLineArg(args []string, file string, lineNo int) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if file == "" {
		return "", errors.New("provide a raw line argument or --file")
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	return nthLine(f, lineNo)
}

func nthLine(r io.Reader, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("--line must be >= 1")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if n > len(lines) {
		return "", fmt.Errorf("file has %d lines, requested line %d", len(lines), n)
	}
	return lines[n-1], nil
}

func newShowCmd() *cobra.Command {
	var (
		file   string
		lineNo int
		wrap   int
	)

	cmd := &cobra.Command{
		Use:   "show [raw-line]",
		Short: "Print the default expansion of a log line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readLineArg(args, file, lineNo)
			if err != nil {
				return err
			}

			line := buildRegistry().Parse(raw)
			if line == nil {
				// Unparsed lines render as plain text.
				fmt.Fprintln(cmd.OutOrStdout(), raw)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), format.RenderExpansion(line.DefaultExpansion(), resolveWrap(wrap)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the line from this file instead of the argument")
	cmd.Flags().IntVar(&lineNo, "line", 1, "Line number within --file (1-based)")
	cmd.Flags().IntVar(&wrap, "wrap", 0, "Wrap width (0 = terminal width, negative = no wrap)")

	return cmd
}

func newQueryCmd() *cobra.Command {
	var (
		wrap        int
		useClaude   bool
		claudeModel string
	)

	cmd := &cobra.Command{
		Use:   "query <raw-line> <input...>",
		Short: "Run a command or question against a log line",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			input := strings.Join(args[1:], " ")

			line := buildRegistry().Parse(raw)
			if line == nil {
				return fmt.Errorf("no registered adapter matched the line")
			}

			itp := interpret.New()
			if useClaude {
				apiKey := os.Getenv("GEMINI_API_KEY")
				if apiKey == "" {
					return errors.New("--claude requires GEMINI_API_KEY")
				}
				if claudeModel == "" {
					claudeModel = os.Getenv("ACTLOG_MODEL")
				}
				client, err := claude.NewClient(cmd.Context(), apiKey, claudeModel)
				if err != nil {
					return err
				}
				itp.ConfigureClaudeFallback(interpret.FallbackConfig{
					Enabled: true,
					Handler: client.Handler(),
				})
			}

			result := itp.Interpret(cmd.Context(), line, input)

			if !result.Handled && !useClaude && interpret.IsNaturalLanguage(input) {
				fmt.Fprintln(cmd.ErrOrStderr(), "hint: this looks like a question; rerun with --claude to ask the model")
			}

			out := format.RenderQueryResult(result, resolveWrap(wrap))
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if !result.Handled && result.Error != "" {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&wrap, "wrap", 0, "Wrap width (0 = terminal width, negative = no wrap)")
	cmd.Flags().BoolVar(&useClaude, "claude", false, "Fall back to the model for unresolved queries")
	cmd.Flags().StringVar(&claudeModel, "model", "", "Model for --claude (env: ACTLOG_MODEL)")

	return cmd
}

func newCommandsCmd() *cobra.Command {
	var (
		formatFlag string
		noHeader   bool
	)

	cmd := &cobra.Command{
		Use:   "commands [type]",
		Short: "List the template commands of registered adapters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := buildRegistry()

			types := reg.Types()
			if len(args) == 1 {
				types = args[:1]
			}

			for i, typ := range types {
				adapter, ok := reg.Get(typ)
				if !ok {
					return fmt.Errorf("unknown adapter type: %s", typ)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if len(types) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", typ)
				}
				if err := format.WriteCommands(cmd.OutOrStdout(), adapter.Commands(), !noHeader, formatFlag); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "table", "Output format: table, plain, json, jsonl")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row")

	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered adapter types in trial order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, typ := range buildRegistry().Types() {
				fmt.Fprintln(cmd.OutOrStdout(), typ)
			}
			return nil
		},
	}
}
