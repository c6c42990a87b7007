//go:build unit

package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want Reference
	}{
		{name: "number", ref: "123", want: Reference{Number: 123}},
		{name: "hash number", ref: "#7", want: Reference{Number: 7}},
		{name: "shorthand", ref: "lerenn/gcli#42", want: Reference{Owner: "lerenn", Repository: "gcli", Number: 42}},
		{name: "nested group shorthand", ref: "group/sub/tool#3", want: Reference{Owner: "group/sub", Repository: "tool", Number: 3}},
		{
			name: "github issue",
			ref:  "https://github.com/lerenn/gcli/issues/12",
			want: Reference{Host: "github.com", Owner: "lerenn", Repository: "gcli", Number: 12},
		},
		{
			name: "github pull",
			ref:  "https://github.com/lerenn/gcli/pull/13/files",
			want: Reference{Host: "github.com", Owner: "lerenn", Repository: "gcli", Number: 13},
		},
		{
			name: "gitlab merge request",
			ref:  "https://gitlab.com/group/sub/tool/-/merge_requests/5",
			want: Reference{Host: "gitlab.com", Owner: "group/sub", Repository: "tool", Number: 5},
		},
		{
			name: "gitlab issue",
			ref:  "https://gitlab.com/group/tool/-/issues/6",
			want: Reference{Host: "gitlab.com", Owner: "group", Repository: "tool", Number: 6},
		},
		{
			name: "gitea pull",
			ref:  "https://Codeberg.org/forgejo/forgejo/pulls/8",
			want: Reference{Host: "codeberg.org", Owner: "forgejo", Repository: "forgejo", Number: 8},
		},
		{
			name: "bugzilla",
			ref:  "https://bugzilla.mozilla.org/show_bug.cgi?id=1800000",
			want: Reference{Host: "bugzilla.mozilla.org", Number: 1800000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReference_Invalid(t *testing.T) {
	for _, ref := range []string{
		"",
		"abc",
		"0",
		"owner/repo#x",
		"https://github.com/lerenn/gcli",
		"https://bugzilla.mozilla.org/show_bug.cgi",
	} {
		_, err := ParseReference(ref)
		assert.ErrorIs(t, err, ErrInvalidIssueReference, ref)
	}
}

func TestReference_HasRepository(t *testing.T) {
	assert.True(t, Reference{Owner: "o", Repository: "r"}.HasRepository())
	assert.False(t, Reference{Number: 1}.HasRepository())
}
