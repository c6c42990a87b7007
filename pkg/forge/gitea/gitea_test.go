//go:build unit

package gitea

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

const labelsPage = `[{"id":11,"name":"bug","color":"#ee0701"},{"id":12,"name":"ui","color":"00aabb"}]`

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

func TestDescriptor(t *testing.T) {
	f, _ := newTestForge(t)
	assert.Equal(t, forge.KindGitea, f.Descriptor().Kind)
	assert.True(t, f.Descriptor().Quirks.Has(forge.QuirkNoSnippets))
	assert.False(t, f.Descriptor().Quirks.Has(forge.QuirkIssuesIncludePulls))
}

func TestGetIssues(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("repos/o/r/issues?labels=bug&limit=50&state=open&type=issues")).
		Return(ok(`[{"number":1,"title":"a","user":{"login":"bob"},"labels":[{"name":"bug"}]}]`), nil)

	issues, err := f.GetIssues(context.Background(), "o", "r", forge.IssueFilter{Label: "bug"}, -1)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "bob", issues[0].Author)
}

func TestIssueAddLabels_ResolvesIDs(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("repos/o/r/labels?limit=50")).Return(ok(labelsPage), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPost, URL: "repos/o/r/issues/3/labels", Body: []byte(`{"labels":[12,11]}`),
		}).Return(ok(`[]`), nil),
	)

	require.NoError(t, f.IssueAddLabels(context.Background(), "o", "r", 3, []string{"ui", "bug"}))
}

func TestIssueAddLabels_UnknownLabel(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("repos/o/r/labels?limit=50")).Return(ok(labelsPage), nil)

	err := f.PullAddLabels(context.Background(), "o", "r", 3, []string{"nope"})
	assert.ErrorIs(t, err, ErrLabelNotFound)
}

func TestDeleteLabel(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("repos/o/r/labels?limit=50")).Return(ok(labelsPage), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodDelete, URL: "repos/o/r/labels/11"}).
			Return(&transport.Response{StatusCode: http.StatusNoContent}, nil),
	)

	require.NoError(t, f.DeleteLabel(context.Background(), "o", "r", "bug"))
}

func TestPullMerge(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{
		Method: http.MethodPost,
		URL:    "repos/o/r/pulls/4/merge",
		Body:   []byte(`{"Do":"merge","delete_branch_after_merge":true}`),
	}).Return(ok(``), nil)

	require.NoError(t, f.PullMerge(context.Background(), "o", "r", 4, forge.MergeDeleteHead))
}

func TestPullGetDiff(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("repos/o/r/pulls/4.diff")).Return(ok("diff\n"), nil)

	var buf bytes.Buffer
	require.NoError(t, f.PullGetDiff(context.Background(), "o", "r", 4, &buf))
	assert.Equal(t, "diff\n", buf.String())
}

func TestCreatePull(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("repos/o/r/labels?limit=50")).Return(ok(labelsPage), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPost,
			URL:    "repos/o/r/pulls",
			Body:   []byte(`{"head":"fix","base":"main","title":"Fix","body":"b","labels":[11]}`),
		}).Return(ok(`{"number":8}`), nil),
		tr.EXPECT().Do(gomock.Any(), transport.Request{
			Method: http.MethodPost, URL: "repos/o/r/pulls/8/requested_reviewers", Body: []byte(`{"reviewers":["eve"]}`),
		}).Return(ok(`[]`), nil),
	)

	err := f.CreatePull(context.Background(), forge.SubmitPullOptions{
		Owner: "o", Repo: "r", From: "fix", To: "main", Title: "Fix", Body: "b",
		Labels: []string{"bug"}, Reviewers: []string{"eve"},
	})
	require.NoError(t, err)
}

func TestGetMilestones(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), get("repos/o/r/milestones?limit=50&state=all")).
		Return(ok(`[{"id":5,"title":"v1","state":"open","open_issues":2,"closed_issues":1,"due_on":null}]`), nil)

	ms, err := f.GetMilestones(context.Background(), "o", "r", -1)
	require.NoError(t, err)
	assert.Equal(t, []forge.Milestone{{ID: 5, Title: "v1", State: "open", OpenIssues: 2, ClosedIssues: 1}}, ms)
}

func TestCreateLabel(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{
		Method: http.MethodPost,
		URL:    "repos/o/r/labels",
		Body:   []byte(`{"name":"ui","color":"#00aabb","description":""}`),
	}).Return(ok(`{"id":12,"name":"ui","color":"00aabb"}`), nil)

	l, err := f.CreateLabel(context.Background(), "o", "r", forge.Label{Name: "ui", Colour: 0x00aabb})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00aabb), l.Colour)
}

func TestInheritedOperations(t *testing.T) {
	f, tr := newTestForge(t)
	tr.EXPECT().Do(gomock.Any(), transport.Request{
		Method: http.MethodPatch, URL: "repos/o/r/issues/2", Body: []byte(`{"state":"closed"}`),
	}).Return(ok(`{}`), nil)

	require.NoError(t, f.IssueClose(context.Background(), "o", "r", 2))
}

func TestSession_SnippetsRefused(t *testing.T) {
	f, _ := newTestForge(t)
	s := forge.NewSession(f, nil)

	_, err := s.GetSnippets(context.Background(), -1)
	assert.ErrorIs(t, err, forge.ErrUnsupported)
	assert.Contains(t, s.LastError(), "gitea")
	assert.ErrorIs(t, f.SnippetDelete(context.Background(), "1"), forge.ErrUnsupported)
}

func TestInheritedListingsPageWithLimit(t *testing.T) {
	f, tr := newTestForge(t)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("repos/o/r/pulls?limit=50&state=open")).Return(ok(`[]`), nil),
		tr.EXPECT().Do(gomock.Any(), get("repos/o/r/releases?limit=50")).Return(ok(`[]`), nil),
		tr.EXPECT().Do(gomock.Any(), get("user/repos?limit=50")).Return(ok(`[]`), nil),
	)

	_, err := f.GetPulls(context.Background(), "o", "r", forge.PullFilter{}, -1)
	require.NoError(t, err)
	_, err = f.GetReleases(context.Background(), "o", "r", -1)
	require.NoError(t, err)
	_, err = f.GetOwnRepos(context.Background(), -1)
	require.NoError(t, err)
}
