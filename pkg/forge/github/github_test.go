//go:build unit

package github

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/transport"
	"github.com/lerenn/gcli/pkg/transport/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestForge(t *testing.T) (*Forge, *mocks.MockTransport) {
	ctrl := gomock.NewController(t)
	tr := mocks.NewMockTransport(ctrl)
	return New(tr), tr
}

func ok(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestGetIssue(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "repos/alice/tool/issues/42"}).
		Return(ok(`{"title":"Fix bug","number":42,"id":7,"state":"open","user":{"login":"alice"}}`), nil)

	issue, err := f.GetIssue(context.Background(), "alice", "tool", 42)
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", issue.Title)
	assert.Equal(t, 42, issue.Number)
	assert.Equal(t, int64(7), issue.ID)
	assert.Equal(t, "open", issue.State)
	assert.Equal(t, "alice", issue.Author)
}

func TestGetIssues_DropsPulls(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{
		Method: http.MethodGet,
		URL:    "repos/o/r/issues?per_page=100&state=open",
	}).Return(&transport.Response{Body: []byte(`[
		{"number":3,"title":"a","labels":[{"name":"bug"}],"milestone":{"title":"v1"}},
		{"number":2,"title":"b","pull_request":{"url":"x"}},
		{"number":1,"title":"c","milestone":null}
	]`)}, nil)

	issues, err := f.GetIssues(context.Background(), "o", "r", forge.IssueFilter{}, 2)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, 3, issues[0].Number)
	assert.Equal(t, []string{"bug"}, issues[0].Labels)
	assert.Equal(t, "v1", issues[0].Milestone)
	assert.Equal(t, 1, issues[1].Number)
}

func TestGetIssues_Search(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{
		Method: http.MethodGet,
		URL:    "search/issues?per_page=100&q=repo%3Ao%2Fr+is%3Aissue+author%3Abob+crash",
	}).Return(ok(`{"total_count":1,"incomplete_results":false,"items":[{"number":9,"title":"crash"}]}`), nil)

	issues, err := f.GetIssues(context.Background(), "o", "r", forge.IssueFilter{All: true, Author: "bob", Search: "crash"}, -1)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 9, issues[0].Number)
}

func TestIssueMutations(t *testing.T) {
	tests := []struct {
		name   string
		call   func(f *Forge) error
		method string
		url    string
		body   string
	}{
		{
			name:   "close",
			call:   func(f *Forge) error { return f.IssueClose(context.Background(), "o", "r", 1) },
			method: http.MethodPatch, url: "repos/o/r/issues/1", body: `{"state":"closed"}`,
		},
		{
			name:   "clear milestone",
			call:   func(f *Forge) error { return f.IssueClearMilestone(context.Background(), "o", "r", 1) },
			method: http.MethodPatch, url: "repos/o/r/issues/1", body: `{"milestone":null}`,
		},
		{
			name:   "assign",
			call:   func(f *Forge) error { return f.IssueAssign(context.Background(), "o", "r", 1, "bob") },
			method: http.MethodPost, url: "repos/o/r/issues/1/assignees", body: `{"assignees":["bob"]}`,
		},
		{
			name: "comment",
			call: func(f *Forge) error {
				return f.SubmitComment(context.Background(), forge.SubmitCommentOptions{
					Owner: "o", Repo: "r", Number: 1, Body: "say \"hi\"\n",
				})
			},
			method: http.MethodPost, url: "repos/o/r/issues/1/comments", body: `{"body":"say \"hi\"\n"}`,
		},
		{
			name:   "visibility",
			call:   func(f *Forge) error { return f.RepoSetVisibility(context.Background(), "o", "r", forge.VisibilityPrivate) },
			method: http.MethodPatch, url: "repos/o/r", body: `{"private":true}`,
		},
		{
			name:   "remove label",
			call:   func(f *Forge) error { return f.IssueRemoveLabels(context.Background(), "o", "r", 1, []string{"needs info"}) },
			method: http.MethodDelete, url: "repos/o/r/issues/1/labels/needs%20info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, tr := newTestForge(t)
			req := transport.Request{Method: tt.method, URL: tt.url}
			if tt.body != "" {
				req.Body = []byte(tt.body)
			}
			tr.EXPECT().Do(gomock.Any(), req).Return(&transport.Response{StatusCode: http.StatusOK}, nil)

			require.NoError(t, tt.call(f))
		})
	}
}

func TestGetPulls_ClientSideFilter(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "repos/o/r/pulls?per_page=100&state=all"}).
		Return(ok(`[
			{"number":5,"user":{"login":"bob"},"head":{"label":"bob:fix","sha":"abc"},"base":{"label":"o:main"}},
			{"number":4,"user":{"login":"eve"}}
		]`), nil)

	pulls, err := f.GetPulls(context.Background(), "o", "r", forge.PullFilter{All: true, Author: "bob"}, -1)
	require.NoError(t, err)
	require.Len(t, pulls, 1)
	assert.Equal(t, "bob:fix", pulls[0].HeadLabel)
	assert.Equal(t, "abc", pulls[0].HeadSHA)
	assert.Equal(t, "o:main", pulls[0].BaseLabel)
}

func TestPullMerge_DeleteHead(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPut, URL: "repos/o/r/pulls/5/merge", Body: []byte(`{"merge_method":"squash"}`),
		}).Return(ok(`{"merged":true}`), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "repos/o/r/pulls/5"}).
			Return(ok(`{"number":5,"head":{"label":"bob:fix"}}`), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodDelete, URL: "repos/bob/r/git/refs/heads/fix"}).
			Return(&transport.Response{StatusCode: http.StatusNoContent}, nil),
	)

	require.NoError(t, f.PullMerge(context.Background(), "o", "r", 5, forge.MergeSquash|forge.MergeDeleteHead))
}

func TestCreatePull(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPost,
			URL:    "repos/o/r/pulls",
			Body:   []byte(`{"head":"bob:fix","base":"main","title":"Fix","body":"","draft":false}`),
		}).Return(&transport.Response{StatusCode: http.StatusCreated, Body: []byte(`{"number":12}`)}, nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPost, URL: "repos/o/r/issues/12/labels", Body: []byte(`{"labels":["bug"]}`),
		}).Return(ok(`[]`), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPost, URL: "repos/o/r/pulls/12/requested_reviewers", Body: []byte(`{"reviewers":["eve"]}`),
		}).Return(&transport.Response{StatusCode: http.StatusCreated}, nil),
	)

	err := f.CreatePull(context.Background(), forge.SubmitPullOptions{
		Owner: "o", Repo: "r", From: "bob:fix", To: "main", Title: "Fix",
		Labels: []string{"bug"}, Reviewers: []string{"eve"},
	})
	require.NoError(t, err)
}

func TestPullGetDiff(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "repos/o/r/pulls/5", Accept: DiffMediaType}).
		Return(ok("diff --git a/x b/x\n"), nil)

	var buf bytes.Buffer
	require.NoError(t, f.PullGetDiff(context.Background(), "o", "r", 5, &buf))
	assert.Equal(t, "diff --git a/x b/x\n", buf.String())
}

func TestGetLabels(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "repos/o/r/labels?per_page=100"}).
		Return(ok(`[{"id":1,"name":"bug","color":"d73a4a","description":null,"default":true}]`), nil)

	labels, err := f.GetLabels(context.Background(), "o", "r", -1)
	require.NoError(t, err)
	assert.Equal(t, []forge.Label{{ID: 1, Name: "bug", Colour: 0xd73a4a}}, labels)
}

func TestCreateLabel(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{
		Method: http.MethodPost,
		URL:    "repos/o/r/labels",
		Body:   []byte(`{"name":"ui","color":"00ff0a","description":"frontend"}`),
	}).Return(&transport.Response{StatusCode: http.StatusCreated, Body: []byte(`{"id":3,"name":"ui","color":"00ff0a"}`)}, nil)

	l, err := f.CreateLabel(context.Background(), "o", "r", forge.Label{Name: "ui", Colour: 0x00ff0a, Description: "frontend"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), l.ID)
}

func TestGetRepos_Visibility(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "user/repos?per_page=100"}).
		Return(ok(`[{"id":1,"full_name":"o/a","private":true,"owner":{"login":"o"}},{"id":2,"full_name":"o/b","private":false,"fork":true}]`), nil)

	repos, err := f.GetOwnRepos(context.Background(), -1)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "private", repos[0].Visibility)
	assert.Equal(t, "o", repos[0].Owner)
	assert.Equal(t, "public", repos[1].Visibility)
	assert.True(t, repos[1].IsFork)
}

func TestGetNotifications(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "notifications?per_page=100"}).
		Return(ok(`[{"id":"101","reason":"mention","updated_at":"2024-01-01T00:00:00Z",
			"subject":{"title":"Crash","type":"Issue","url":"x"},"repository":{"full_name":"o/r"}}]`), nil)

	list, err := f.GetNotifications(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, []forge.Notification{{
		ID: "101", Title: "Crash", Reason: "mention", Date: "2024-01-01T00:00:00Z", Type: "Issue", Repository: "o/r",
	}}, list)
}

func TestSnippets(t *testing.T) {
	gist := `{"id":"aa1","description":"notes","owner":{"login":"o"},"files":{
		"a.txt":{"filename":"a.txt","language":"Text","raw_url":"https://gist.example/a.txt","size":3},
		"b.go":{"language":"Go","raw_url":"https://gist.example/b.go","size":5}}}`

	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "gists?per_page=100"}).
			Return(ok("["+gist+"]"), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "gists/aa1"}).
			Return(ok(gist), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "https://gist.example/a.txt"}).
			Return(ok("aaa"), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "https://gist.example/b.go"}).
			Return(ok("bbbbb"), nil),
	)

	snippets, err := f.GetSnippets(context.Background(), -1)
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	require.Len(t, snippets[0].Files, 2)
	assert.Equal(t, "a.txt", snippets[0].Files[0].FileName)
	assert.Equal(t, "b.go", snippets[0].Files[1].FileName)
	assert.Empty(t, snippets[0].RawURL)

	var buf bytes.Buffer
	require.NoError(t, f.SnippetGetContent(context.Background(), "aa1", &buf))
	assert.Equal(t, "aaabbbbb", buf.String())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "message", body: `{"message":"Not Found","documentation_url":"x"}`, expected: "Not Found"},
		{
			name:     "details",
			body:     `{"message":"Validation Failed","errors":[{"resource":"Label","field":"name","code":"already_exists"},{"message":"bad color"}]}`,
			expected: "Validation Failed (name: already_exists, bad color)",
		},
		{name: "string details", body: `{"message":"Invalid","errors":["title is empty"]}`, expected: "Invalid (title is empty)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseError([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg)
		})
	}

	_, err := ParseError([]byte(`<html>`))
	assert.Error(t, err)
}

func TestSession_AttachmentsRefusedWithoutFetch(t *testing.T) {
	f, _ := newTestForge(t)
	s := forge.NewSession(f, nil)

	var buf bytes.Buffer
	err := s.AttachmentGetContent(context.Background(), 1, &buf)
	assert.ErrorIs(t, err, forge.ErrUnsupported)
	_, err = s.GetPipelines(context.Background(), "o", "r", -1)
	assert.ErrorIs(t, err, forge.ErrUnsupported)
}

func TestSession_ErrorEnvelope(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, &transport.HTTPError{
		StatusCode: http.StatusNotFound,
		Body:       []byte(`{"message":"Not Found"}`),
	})

	s := forge.NewSession(f, nil)
	_, err := s.GetIssue(context.Background(), "o", "r", 1)
	assert.ErrorIs(t, err, forge.ErrAPI)
	assert.Equal(t, "github: get issue failed with status 404: Not Found", s.LastError())
}

func TestSplitHeadLabel(t *testing.T) {
	owner, branch := SplitHeadLabel("bob:fix", "o")
	assert.Equal(t, "bob", owner)
	assert.Equal(t, "fix", branch)

	owner, branch = SplitHeadLabel("fix", "o")
	assert.Equal(t, "o", owner)
	assert.Equal(t, "fix", branch)
}
