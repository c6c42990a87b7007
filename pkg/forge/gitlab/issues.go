package gitlab

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

func filterQuery(all bool, author, label, milestone, search string) url.Values {
	q := url.Values{
		"author_username": {author},
		"labels":          {label},
		"milestone":       {milestone},
		"search":          {search},
	}
	if !all {
		q.Set("state", "opened")
	}
	return q
}

// GetIssues lists the issues of a project.
func (f *Forge) GetIssues(ctx context.Context, owner, repo string, filter forge.IssueFilter, max int) ([]forge.Issue, error) {
	q := filterQuery(filter.All, filter.Author, filter.Label, filter.Milestone, filter.Search)
	return list(ctx, f.t, project(owner, repo, "/issues"), q, issueSchema, max)
}

func (f *Forge) GetIssue(ctx context.Context, owner, repo string, number int) (*forge.Issue, error) {
	return fetch.One(ctx, f.t, project(owner, repo, "/issues/%d", number), issueSchema.Parse)
}

func (f *Forge) CreateIssue(ctx context.Context, opts forge.SubmitIssueOptions) (*forge.Issue, error) {
	body := jsongen.MustObject(jsongen.M("title", opts.Title), jsongen.M("description", opts.Body))
	return fetch.Submit(ctx, f.t, http.MethodPost, project(opts.Owner, opts.Repo, "/issues"), body, issueSchema.Parse)
}

func (f *Forge) putIssue(ctx context.Context, owner, repo string, number int, members ...jsongen.Pair) error {
	return fetch.Exec(ctx, f.t, http.MethodPut, project(owner, repo, "/issues/%d", number), jsongen.MustObject(members...))
}

func (f *Forge) IssueClose(ctx context.Context, owner, repo string, number int) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("state_event", "close"))
}

func (f *Forge) IssueReopen(ctx context.Context, owner, repo string, number int) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("state_event", "reopen"))
}

func (f *Forge) IssueSetTitle(ctx context.Context, owner, repo string, number int, title string) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("title", title))
}

func (f *Forge) IssueSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("milestone_id", milestone))
}

func (f *Forge) IssueClearMilestone(ctx context.Context, owner, repo string, number int) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("milestone_id", nil))
}

func (f *Forge) IssueAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("add_labels", strings.Join(labels, ",")))
}

func (f *Forge) IssueRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.putIssue(ctx, owner, repo, number, jsongen.M("remove_labels", strings.Join(labels, ",")))
}

// IssueAssign assigns a user, who GitLab wants by id.
func (f *Forge) IssueAssign(ctx context.Context, owner, repo string, number int, assignee string) error {
	id, err := f.userID(ctx, assignee)
	if err != nil {
		return err
	}
	return f.putIssue(ctx, owner, repo, number, jsongen.M("assignee_ids", []int64{id}))
}

func (f *Forge) GetIssueComments(ctx context.Context, owner, repo string, number, max int) ([]forge.Comment, error) {
	return list(ctx, f.t, project(owner, repo, "/issues/%d/notes", number), url.Values{"sort": {"asc"}}, noteSchema, max)
}

func (f *Forge) GetPullComments(ctx context.Context, owner, repo string, number, max int) ([]forge.Comment, error) {
	return list(ctx, f.t, project(owner, repo, "/merge_requests/%d/notes", number), url.Values{"sort": {"asc"}}, noteSchema, max)
}

// SubmitComment adds a note to an issue or a merge request.
func (f *Forge) SubmitComment(ctx context.Context, opts forge.SubmitCommentOptions) error {
	kind := "issues"
	if opts.Target == forge.CommentOnPull {
		kind = "merge_requests"
	}
	u := project(opts.Owner, opts.Repo, "/%s/%d/notes", kind, opts.Number)
	return fetch.Exec(ctx, f.t, http.MethodPost, u, jsongen.MustObject(jsongen.M("body", opts.Body)))
}
