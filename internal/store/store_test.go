package store

import (
	"strings"
	"testing"
	"time"

	"actlog/internal/beads"
	"actlog/internal/registry"
)

const sampleLog = `2025-01-15T10:00:00Z|session.start||steve|sess-1
garbage that matches nothing

2025-01-15T10:01:00Z|bd.issue.create|bd-1|steve|sess-1|title=First
2025-01-15T10:02:00Z|bd.issue.update|bd-1|steve|sess-1|status=open
not-a-date|bd.issue.close|bd-1|steve|sess-1
2025-01-15T10:03:00Z|git.commit.push|abc123|steve|sess-1
`

func testRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register(beads.New(nil))
	return reg
}

func TestScan_Basic(t *testing.T) {
	result, err := Scan(strings.NewReader(sampleLog), testRegistry(), ScanOptions{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(result.Lines) != 4 {
		t.Fatalf("expected 4 parsed lines, got %d", len(result.Lines))
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	if len(result.Unparsed) != 2 {
		t.Fatalf("expected 2 unparsed lines, got %d", len(result.Unparsed))
	}
	if result.Unparsed[0].LineNo != 2 {
		t.Fatalf("unexpected unparsed line number: %d", result.Unparsed[0].LineNo)
	}
	if result.Unparsed[1].Raw != "not-a-date|bd.issue.close|bd-1|steve|sess-1" {
		t.Fatalf("unexpected unparsed raw: %q", result.Unparsed[1].Raw)
	}
}

func TestScan_TimeFilters(t *testing.T) {
	after := time.Date(2025, 1, 15, 10, 0, 30, 0, time.UTC)
	before := time.Date(2025, 1, 15, 10, 2, 30, 0, time.UTC)

	result, err := Scan(strings.NewReader(sampleLog), testRegistry(), ScanOptions{
		After:  &after,
		Before: &before,
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines in window, got %d", len(result.Lines))
	}
	if result.Lines[0].Message != "bd.issue.create" || result.Lines[1].Message != "bd.issue.update" {
		t.Fatalf("unexpected lines: %s, %s", result.Lines[0].Message, result.Lines[1].Message)
	}
}

func TestScan_UnfilterableTimestampWarnsAndKeeps(t *testing.T) {
	// Passes the grammar's ISO prefix check but is not valid RFC3339.
	log := "2025-99-99T99:99:99Z|bd.issue.create|bd-1|steve|sess-1\n"
	after := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := Scan(strings.NewReader(log), testRegistry(), ScanOptions{After: &after})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(result.Lines) != 1 {
		t.Fatalf("expected the line to be kept, got %d lines", len(result.Lines))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0].Error(), "unfilterable timestamp") {
		t.Fatalf("unexpected warning: %v", result.Warnings[0])
	}
}

func TestScan_Limit(t *testing.T) {
	result, err := Scan(strings.NewReader(sampleLog), testRegistry(), ScanOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}
}

func TestScan_TypeFilter(t *testing.T) {
	result, err := Scan(strings.NewReader(sampleLog), testRegistry(), ScanOptions{
		Types: []string{"beads"},
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(result.Lines) != 4 {
		t.Fatalf("expected all beads lines, got %d", len(result.Lines))
	}

	result, err = Scan(strings.NewReader(sampleLog), testRegistry(), ScanOptions{
		Types: []string{"other"},
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(result.Lines) != 0 {
		t.Fatalf("expected no lines for unknown type, got %d", len(result.Lines))
	}
}

func TestScan_EmptyRegistry(t *testing.T) {
	result, err := Scan(strings.NewReader(sampleLog), registry.New(), ScanOptions{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(result.Lines) != 0 {
		t.Fatalf("expected no parsed lines, got %d", len(result.Lines))
	}
	// Blank lines are skipped entirely; the rest end up unparsed.
	if len(result.Unparsed) != 6 {
		t.Fatalf("expected 6 unparsed lines, got %d", len(result.Unparsed))
	}
}

func TestScanFile_Missing(t *testing.T) {
	_, err := ScanFile("does/not/exist.log", testRegistry(), ScanOptions{})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
