//go:build unit

package fetch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	assert.Equal(t, "repos/o/r/issues/3", URL("repos/%s/%s/issues/%d", "o", "r", 3))
	assert.Equal(t, "projects/group%2Fsub/issues", URL("projects/%s/issues", "group/sub"))
	assert.Equal(t, "labels/good%20first%20issue", URL("labels/%s", "good first issue"))
}

func TestWithQuery(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		query    url.Values
		expected string
	}{
		{name: "no query", base: "issues", query: url.Values{}, expected: "issues"},
		{name: "empty values dropped", base: "issues", query: url.Values{"labels": {""}, "state": {"all"}}, expected: "issues?state=all"},
		{name: "sorted", base: "issues", query: url.Values{"state": {"open"}, "per_page": {"100"}}, expected: "issues?per_page=100&state=open"},
		{name: "existing query", base: "issues?type=issues", query: url.Values{"limit": {"50"}}, expected: "issues?type=issues&limit=50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WithQuery(tt.base, tt.query))
		})
	}
}
