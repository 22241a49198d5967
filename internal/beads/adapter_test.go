package beads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actlog/internal/model"
)

func TestParse_FullLine(t *testing.T) {
	a := New(nil)

	line := a.Parse("2025-01-15T15:04:03.456Z|bd.issue.create|bd-97ux|steve|sess-abc123|title=Implement ALLP")
	require.NotNil(t, line)

	assert.Equal(t, "2025-01-15T15:04:03.456Z", line.Timestamp)
	assert.Equal(t, "bd.issue.create", line.Message)
	assert.Equal(t, "beads", line.Source.Type)
	assert.Equal(t, "bd-97ux", line.Source.ID)
	assert.Equal(t, "steve", line.Source.Context["agentId"])
	assert.Equal(t, "sess-abc123", line.Source.Context["sessionId"])
	assert.Equal(t, "title=Implement ALLP", line.Source.Context["details"])
	assert.Equal(t, "Issue Tracking", line.Source.Context["category"])
	assert.Equal(t, model.LevelInfo, line.Level)
	assert.Equal(t, "2025-01-15T15:04:03.456Z|bd.issue.create|bd-97ux|steve|sess-abc123|title=Implement ALLP", line.Raw)
}

func TestParse_RejectsMalformed(t *testing.T) {
	a := New(nil)

	cases := map[string]string{
		"empty":                "",
		"whitespace only":      "   ",
		"no delimiters":        "hello world",
		"too few fields":       "2025-01-15T10:00:00Z|bd.issue.create|bd-1|steve",
		"bad timestamp":        "not-a-date|x.y|a|b|c",
		"numeric but not date": "20250115|x.y|a|b|c",
		"event code no dot":    "2025-01-15T10:00:00Z|nodots|bd-1|steve|sess-1",
		"empty event code":     "2025-01-15T10:00:00Z||bd-1|steve|sess-1",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, a.Parse(raw))
		})
	}
}

func TestParse_DetailsMayContainDelimiter(t *testing.T) {
	a := New(nil)

	line := a.Parse("2025-01-15T10:00:00Z|bd.issue.update|bd-2|ann|sess-9|status=open|assignee=bob")
	require.NotNil(t, line)
	assert.Equal(t, "status=open|assignee=bob", line.Source.Context["details"])
}

func TestParse_EmptyEntityIDBecomesSentinel(t *testing.T) {
	a := New(nil)

	line := a.Parse("2025-01-15T10:00:00Z|session.start||steve|sess-1")
	require.NotNil(t, line)
	assert.Equal(t, model.SentinelID, line.Source.ID)
}

func TestParse_EmptyOptionalFieldsOmittedFromContext(t *testing.T) {
	a := New(nil)

	line := a.Parse("2025-01-15T10:00:00Z|bd.issue.create|bd-1||")
	require.NotNil(t, line)

	assert.NotContains(t, line.Source.Context, "agentId")
	assert.NotContains(t, line.Source.Context, "sessionId")
	assert.NotContains(t, line.Source.Context, "details")
	// Context is never empty: category is always present.
	assert.Contains(t, line.Source.Context, "category")
}

func TestParse_UnknownPrefixStillParses(t *testing.T) {
	a := New(nil)

	line := a.Parse("2025-01-15T10:00:00Z|mystery.thing|id-1|steve|sess-1")
	require.NotNil(t, line)
	assert.Equal(t, "Unknown", line.Source.Context["category"])
}

func TestParse_CategoryTaxonomy(t *testing.T) {
	a := New(nil)

	cases := map[string]string{
		"bd.issue.create":    "Issue Tracking",
		"git.commit.push":    "Version Control",
		"agent.task.start":   "Agent Activity",
		"session.start.new":  "Session Lifecycle",
		"file.write.apply":   "File Operation",
		"test.suite.run":     "Testing",
		"build.target.done":  "Build",
		"weird.prefix.thing": "Unknown",
	}

	for code, category := range cases {
		line := a.Parse("2025-01-15T10:00:00Z|" + code + "|id-1|a|s")
		require.NotNil(t, line, code)
		assert.Equal(t, category, line.Source.Context["category"], code)
	}
}

func TestParse_LevelInference(t *testing.T) {
	a := New(nil)

	cases := map[string]model.Level{
		"bd.issue.create":   model.LevelInfo,
		"test.suite.failed": model.LevelError,
		"build.link.error":  model.LevelError,
		"bd.quota.warn":     model.LevelWarn,
	}

	for code, level := range cases {
		line := a.Parse("2025-01-15T10:00:00Z|" + code + "|id-1|a|s")
		require.NotNil(t, line, code)
		assert.Equal(t, level, line.Level, code)
	}
}

func TestParse_CommandsFreshPerLine(t *testing.T) {
	a := New(nil)

	first := a.Parse("2025-01-15T10:00:00Z|bd.issue.create|bd-1|a|s")
	second := a.Parse("2025-01-15T10:00:01Z|bd.issue.close|bd-2|a|s")
	require.NotNil(t, first)
	require.NotNil(t, second)

	require.NotEmpty(t, first.Commands)
	assert.NotSame(t, &first.Commands[0], &second.Commands[0])
}

func TestAdapterDelegation(t *testing.T) {
	a := New(nil)

	line := a.Parse("2025-01-15T10:00:00Z|bd.issue.create|bd-1|a|s")
	require.NotNil(t, line)

	assert.Equal(t, line.DefaultExpansion(), a.DefaultExpansion(line))

	res := a.HandleQuery(line, "nope")
	assert.False(t, res.Handled)
	assert.Contains(t, res.Error, "Unknown command: nope")
}

func TestTemplateCommands(t *testing.T) {
	a := New(nil)

	names := model.CommandNames(a.Commands())
	assert.Equal(t, []string{"show", "related", "deps", "category", "session", "before", "after"}, names)
}
