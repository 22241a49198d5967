// Package store scans line-oriented log files through an adapter registry.
package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"actlog/internal/model"
	"actlog/internal/registry"
)

// ScanOptions controls which parsed lines a scan keeps.
type ScanOptions struct {
	// After/Before bound the line timestamp (exclusive).
	After  *time.Time
	Before *time.Time
	// Limit caps the number of parsed lines kept; 0 means unlimited.
	Limit int
	// Types restricts results to the given adapter types; empty keeps all.
	Types []string
}

// Unparsed is a raw line no registered adapter matched. Callers render these
// as plain text.
type Unparsed struct {
	LineNo int
	Raw    string
}

// ScanResult holds parsed lines, unmatched raw lines, and non-fatal
// warnings encountered during the scan.
type ScanResult struct {
	Lines    []*model.Line
	Unparsed []Unparsed
	Warnings []error
}

// ScanFile scans the log file at path through the registry.
func ScanFile(path string, reg *registry.Registry, opts ScanOptions) (ScanResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return ScanResult{}, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	return Scan(file, reg, opts)
}

// Scan reads r line by line, routing each non-blank line through the
// registry. Lines no adapter matches are collected as Unparsed. Timestamp
// filters that cannot be applied (unparseable timestamp) produce a warning
// and keep the line.
func Scan(r io.Reader, reg *registry.Registry, opts ScanOptions) (ScanResult, error) {
	var result ScanResult

	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if raw == "" {
			continue
		}

		line := reg.Parse(raw)
		if line == nil {
			result.Unparsed = append(result.Unparsed, Unparsed{LineNo: lineNo, Raw: raw})
			continue
		}

		if !matchesType(line, opts.Types) {
			continue
		}

		if opts.After != nil || opts.Before != nil {
			ts, err := time.Parse(time.RFC3339, line.Timestamp)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Errorf("line %d: unfilterable timestamp %q: %w", lineNo, line.Timestamp, err))
			} else {
				if opts.After != nil && !ts.After(*opts.After) {
					continue
				}
				if opts.Before != nil && !ts.Before(*opts.Before) {
					continue
				}
			}
		}

		result.Lines = append(result.Lines, line)
		if opts.Limit > 0 && len(result.Lines) >= opts.Limit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("scan log: %w", err)
	}
	return result, nil
}

func matchesType(line *model.Line, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, typ := range types {
		if line.Source.Type == typ {
			return true
		}
	}
	return false
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// Allow long detail payloads.
	const maxCapacity = 8 * 1024 * 1024
	buf := make([]byte, 1024)
	scanner.Buffer(buf, maxCapacity)
	return scanner
}
