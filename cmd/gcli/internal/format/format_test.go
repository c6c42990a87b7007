//go:build unit

package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lerenn/gcli/pkg/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello...", Truncate("hello world", 8))
	assert.Equal(t, "short", Truncate("short", 8))
	assert.Equal(t, "a b", Truncate("a\nb", 8))
	assert.Equal(t, "héllo...", Truncate("héllo wörld", 8))
}

func TestColour(t *testing.T) {
	assert.Equal(t, "#ff0000", Colour(0xff0000))
	assert.Equal(t, "#00000a", Colour(10))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2024-01-02", Date("2024-01-02T03:04:05Z"))
	assert.Equal(t, "yesterday", Date("yesterday"))
	assert.Equal(t, "", Date(""))
}

func TestIssues(t *testing.T) {
	var buf bytes.Buffer
	err := Issues(&buf, []forge.Issue{
		{Number: 3, State: "open", Author: "alice", CreatedAt: "2024-01-02T00:00:00Z", Title: "Crash"},
		{Number: 4, State: "open", Author: "bob", Title: "Fix crash", IsPull: true},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NUMBER"))
	assert.Contains(t, lines[1], "#3")
	assert.Contains(t, lines[1], "2024-01-02")
	assert.Contains(t, lines[2], "[PR] Fix crash")
}

func TestIssue(t *testing.T) {
	var buf bytes.Buffer
	err := Issue(&buf, &forge.Issue{
		Number:    9,
		Title:     "Crash",
		Labels:    []string{"bug", "p1"},
		Product:   "Firefox",
		Component: "Core",
		Body:      "line one\nline two",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "bug, p1")
	assert.Contains(t, out, "Firefox / Core")
	assert.Contains(t, out, "\n    line one\n    line two\n")
	assert.NotContains(t, out, "ASSIGNEES")
}

func TestPull(t *testing.T) {
	var buf bytes.Buffer
	err := Pull(&buf, &forge.Pull{Number: 1, Additions: 5, Deletions: 2, ChangedFiles: 3, Commits: 1, Coverage: "87.5"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "+5 -2 in 3 files, 1 commits")
	assert.Contains(t, buf.String(), "87.5%")
}

func TestComments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Comments(&buf, []forge.Comment{{Author: "alice", Date: "2024-01-02T00:00:00Z", Body: "+1"}}))
	assert.Equal(t, "alice on 2024-01-02:\n    +1\n\n", buf.String())
}

func TestCommits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Commits(&buf, []forge.Commit{{SHA: "0123456789abcdef", Message: "subject\n\nbody"}}))
	assert.Contains(t, buf.String(), "0123456789 ")
	assert.Contains(t, buf.String(), "subject")
	assert.NotContains(t, buf.String(), "body")
}

func TestSnippets_CountsSingleFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Snippets(&buf, []forge.Snippet{{ID: "7", RawURL: "https://example.com/raw", Title: "t"}}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"7", "1", "t"}, strings.Fields(lines[1]))
}
