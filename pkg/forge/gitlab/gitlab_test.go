//go:build unit

package gitlab

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

func get(u string) transport.Request {
	return transport.Request{Method: http.MethodGet, URL: u}
}

func ok(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestProjectURL(t *testing.T) {
	assert.Equal(t, "projects/group%2Fsub%2Ftool/issues/3", project("group/sub", "tool", "/issues/%d", 3))
	assert.Equal(t, "projects/o%2Fr", project("o", "r", ""))
}

func TestGetIssues(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("projects/o%2Fr/issues?author_username=bob&per_page=100&state=opened")).
		Return(ok(`[{"iid":4,"id":900,"title":"Crash","state":"opened","author":{"username":"bob","id":3},
			"labels":["bug","p1"],"milestone":null,"user_notes_count":2}]`), nil)

	issues, err := f.GetIssues(context.Background(), "o", "r", forge.IssueFilter{Author: "bob"}, -1)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, forge.Issue{
		Number: 4, ID: 900, Title: "Crash", State: "opened", Author: "bob",
		Labels: []string{"bug", "p1"}, Comments: 2,
	}, issues[0])
}

func TestGetPull(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("projects/o%2Fr/merge_requests/7")).
		Return(ok(`{"iid":7,"state":"merged","merge_status":"can_be_merged","source_branch":"fix",
			"target_branch":"main","changes_count":"1000+","reviewers":[{"username":"eve"}],
			"head_pipeline":{"id":1,"coverage":"87.5"}}`), nil)

	mr, err := f.GetPull(context.Background(), "o", "r", 7)
	require.NoError(t, err)
	assert.True(t, mr.Merged)
	assert.True(t, mr.Mergeable)
	assert.Equal(t, "fix", mr.HeadLabel)
	assert.Equal(t, 1000, mr.ChangedFiles)
	assert.Equal(t, []string{"eve"}, mr.Reviewers)
	assert.Equal(t, "87.5", mr.Coverage)
}

func TestIssueAssign_ResolvesUser(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("users?username=bob")).Return(ok(`[{"id":31,"username":"bob"}]`), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPut, URL: "projects/o%2Fr/issues/4", Body: []byte(`{"assignee_ids":[31]}`),
		}).Return(ok(`{}`), nil),
	)

	require.NoError(t, f.IssueAssign(context.Background(), "o", "r", 4, "bob"))
}

func TestIssueAssign_UnknownUser(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("users?username=ghost")).Return(ok(`[]`), nil)

	err := f.IssueAssign(context.Background(), "o", "r", 4, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMutations(t *testing.T) {
	tests := []struct {
		name   string
		call   func(f *Forge) error
		method string
		url    string
		body   string
	}{
		{
			name:   "close issue",
			call:   func(f *Forge) error { return f.IssueClose(context.Background(), "o", "r", 1) },
			method: http.MethodPut, url: "projects/o%2Fr/issues/1", body: `{"state_event":"close"}`,
		},
		{
			name:   "add labels",
			call:   func(f *Forge) error { return f.PullAddLabels(context.Background(), "o", "r", 2, []string{"a", "b"}) },
			method: http.MethodPut, url: "projects/o%2Fr/merge_requests/2", body: `{"add_labels":"a,b"}`,
		},
		{
			name:   "merge",
			call:   func(f *Forge) error { return f.PullMerge(context.Background(), "o", "r", 2, forge.MergeSquash) },
			method: http.MethodPut, url: "projects/o%2Fr/merge_requests/2/merge",
			body: `{"squash":true,"should_remove_source_branch":false}`,
		},
		{
			name:   "visibility",
			call:   func(f *Forge) error { return f.RepoSetVisibility(context.Background(), "o", "r", forge.VisibilityInternal) },
			method: http.MethodPut, url: "projects/o%2Fr", body: `{"visibility":"internal"}`,
		},
		{
			name: "note on merge request",
			call: func(f *Forge) error {
				return f.SubmitComment(context.Background(), forge.SubmitCommentOptions{
					Owner: "o", Repo: "r", Target: forge.CommentOnPull, Number: 2, Body: "lgtm",
				})
			},
			method: http.MethodPost, url: "projects/o%2Fr/merge_requests/2/notes", body: `{"body":"lgtm"}`,
		},
		{
			name:   "mark todo done",
			call:   func(f *Forge) error { return f.NotificationMarkAsRead(context.Background(), "55") },
			method: http.MethodPost, url: "todos/55/mark_as_done",
		},
		{
			name:   "retry job",
			call:   func(f *Forge) error { return f.JobRetry(context.Background(), "o", "r", 9) },
			method: http.MethodPost, url: "projects/o%2Fr/jobs/9/retry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, tr := newTestForge(t)
			req := transport.Request{Method: tt.method, URL: tt.url}
			if tt.body != "" {
				req.Body = []byte(tt.body)
			}
			tr.EXPECT().Do(gomock.Any(), req).Return(ok(`{}`), nil)

			require.NoError(t, tt.call(f))
		})
	}
}

func TestGetReleases(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("projects/o%2Fr/releases?per_page=100")).
		Return(ok(`[{"tag_name":"v1.0","name":"One","description":"notes","author":{"username":"o"},
			"assets":{"count":3,"sources":[{"format":"zip","url":"z"},{"format":"tar.gz","url":"t"}],
			"links":[{"id":1,"name":"bin","url":"https://x/bin"}]}}]`), nil)

	releases, err := f.GetReleases(context.Background(), "o", "r", -1)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	r := releases[0]
	assert.Equal(t, "v1.0", r.ID)
	assert.Equal(t, "v1.0", r.TagName)
	assert.Equal(t, "t", r.TarballURL)
	assert.Equal(t, []forge.ReleaseAsset{{Name: "bin", URL: "https://x/bin"}}, r.Assets)
}

func TestGetPipelineJobs(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("projects/o%2Fr/pipelines/12/jobs?per_page=100")).
		Return(ok(`[{"id":5,"name":"test","status":"failed","stage":"test","ref":"main",
			"runner":{"description":"shared"},"duration":12.5}]`), nil)

	jobs, err := f.GetPipelineJobs(context.Background(), "o", "r", 12, -1)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "shared", jobs[0].Runner)
	assert.InDelta(t, 12.5, jobs[0].Duration, 0.001)
}

func TestJobGetLog(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "projects/o%2Fr/jobs/5/trace", Accept: "text/plain"}).
		Return(ok("$ make test\n"), nil)

	var buf bytes.Buffer
	require.NoError(t, f.JobGetLog(context.Background(), "o", "r", 5, &buf))
	assert.Equal(t, "$ make test\n", buf.String())
}

func TestGetOwnRepos(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("projects?owned=true&per_page=100")).
		Return(ok(`[{"id":1,"path":"tool","path_with_namespace":"o/tool","namespace":{"full_path":"o"},
			"visibility":"internal","forked_from_project":{"id":2}}]`), nil)

	repos, err := f.GetOwnRepos(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, []forge.Repo{{ID: 1, Name: "tool", FullName: "o/tool", Owner: "o", Visibility: "internal", IsFork: true}}, repos)
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "string", body: `{"message":"404 Project Not Found"}`, expected: "404 Project Not Found"},
		{name: "array", body: `{"message":["Title is too long","Branch is missing"]}`, expected: "Title is too long, Branch is missing"},
		{name: "object", body: `{"message":{"name":["has already been taken"],"color":["is invalid"]}}`, expected: "name: has already been taken; color: is invalid"},
		{name: "oauth", body: `{"error":"invalid_token","error_description":"Token was revoked"}`, expected: "invalid_token: Token was revoked"},
		{name: "fallback", body: `{"message":true,"errors":["nested failure"]}`, expected: "nested failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseError([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg)
		})
	}

	_, err := ParseError([]byte(`not json`))
	assert.Error(t, err)
}

func TestSession_AttachmentsRefused(t *testing.T) {
	f, _ := newTestForge(t)
	s := forge.NewSession(f, nil)

	_, err := s.GetIssueAttachments(context.Background(), "o", "r", 1, -1)
	assert.ErrorIs(t, err, forge.ErrUnsupported)
}
