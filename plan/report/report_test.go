package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planguard/planguard/plan/diagnostics"
	"github.com/planguard/planguard/plan/parsing"
)

func TestSafePlanPassesRegardlessOfBackupFlag(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "safe_only" {
  add-column users.email
  add-column users.last_seen
}
`)

	assert.Equal(t, Pass, New(plan, false).Verdict())
	assert.Equal(t, Pass, New(plan, true).Verdict())
}

func TestDestructivePlanFailsWithoutBackup(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "drop_posts" {
  drop-table posts
}
`)

	r := New(plan, false)
	assert.Equal(t, Fail, r.Verdict())
	assert.Equal(t, 1, r.DestructiveCount())
}

func TestDestructivePlanPassesWithBackup(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "drop_age" {
  drop-column users.age
}
`)

	assert.Equal(t, Pass, New(plan, true).Verdict())
}

func TestNeedsDataMigrationDoesNotFail(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "renames" {
  rename-column users.name -> full_name
  add-constraint users.email_unique
}
`)

	assert.Equal(t, Pass, New(plan, false).Verdict())
}

func TestLinesFollowPlanOrder(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "ordered" {
  drop-table sessions
  add-column users.email
  drop-column users.age
}
`)

	lines := New(plan, false).Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "drop-table sessions")
	assert.Contains(t, lines[0], "DESTRUCTIVE")
	assert.Contains(t, lines[1], "add-column users.email")
	assert.Contains(t, lines[1], "SAFE")
	assert.Contains(t, lines[2], "drop-column users.age")
}

func TestWriteText(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "mixed" {
  add-column users.email
  drop-table sessions
}
`)

	r := New(plan, false)
	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, `Plan "mixed" (2 operations)`)
	assert.Contains(t, out, "Verdict: FAIL")
	assert.Contains(t, out, "1 destructive operation(s) without backup confirmation")

	// Operation lines appear in plan order.
	addIdx := strings.Index(out, "add-column users.email")
	dropIdx := strings.Index(out, "drop-table sessions")
	require.GreaterOrEqual(t, addIdx, 0)
	require.GreaterOrEqual(t, dropIdx, 0)
	assert.Less(t, addIdx, dropIdx)
}

func TestWriteTextIncludesWarnings(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "warned" {
  add-column users.email
}
`)

	r := New(plan, false)
	r.AddWarnings([]diagnostics.PlanWarning{
		diagnostics.NewUnknownEntityWarning("users", diagnostics.EmptySpan()),
	})

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	assert.Contains(t, buf.String(), `warning: Entity "users" does not exist`)
	// Warnings never change the verdict.
	assert.Equal(t, Pass, r.Verdict())
}

func TestMarkdown(t *testing.T) {
	plan := parsing.MustParseString("test.plan", `
plan "md" {
  drop-column users.age
}
`)

	md := New(plan, true).Markdown()
	assert.Contains(t, md, `# Plan "md"`)
	assert.Contains(t, md, "| 1 | DESTRUCTIVE | `drop-column users.age` |")
	assert.Contains(t, md, "**Verdict: PASS**")
	assert.Contains(t, md, "backup confirmed")
}
