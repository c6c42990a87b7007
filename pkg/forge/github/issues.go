package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
	"github.com/lerenn/gcli/pkg/schema"
)

func issueState(all bool) string {
	if all {
		return "all"
	}
	return "open"
}

func notPull(i *forge.Issue) bool {
	return !i.IsPull
}

// GetIssues lists issues. The issues endpoint also returns pull requests,
// which are dropped before the cap applies.
func (f *Forge) GetIssues(ctx context.Context, owner, repo string, filter forge.IssueFilter, max int) ([]forge.Issue, error) {
	if filter.Search != "" {
		return f.searchIssues(ctx, owner, repo, filter, max)
	}

	q := url.Values{
		"state":     {issueState(filter.All)},
		"creator":   {filter.Author},
		"labels":    {filter.Label},
		"milestone": {filter.Milestone},
	}
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Issue]{
		URL:    fetch.WithQuery(fetch.URL("repos/%s/%s/issues", owner, repo), f.paged(q)),
		Parse:  IssueSchema.ParseArray,
		Filter: notPull,
		Max:    max,
	})
}

func (f *Forge) searchIssues(ctx context.Context, owner, repo string, filter forge.IssueFilter, max int) ([]forge.Issue, error) {
	terms := []string{"repo:" + owner + "/" + repo, "is:issue"}
	if !filter.All {
		terms = append(terms, "is:open")
	}
	if filter.Author != "" {
		terms = append(terms, "author:"+filter.Author)
	}
	if filter.Label != "" {
		terms = append(terms, "label:"+filter.Label)
	}
	if filter.Milestone != "" {
		terms = append(terms, "milestone:"+filter.Milestone)
	}
	terms = append(terms, filter.Search)

	q := url.Values{"q": {strings.Join(terms, " ")}}
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Issue]{
		URL:   fetch.WithQuery("search/issues", f.paged(q)),
		Parse: schema.Envelope("items", IssueSchema),
		Max:   max,
	})
}

// GetIssue fetches one issue.
func (f *Forge) GetIssue(ctx context.Context, owner, repo string, number int) (*forge.Issue, error) {
	return fetch.One(ctx, f.t, fetch.URL("repos/%s/%s/issues/%d", owner, repo, number), IssueSchema.Parse)
}

// CreateIssue opens an issue.
func (f *Forge) CreateIssue(ctx context.Context, opts forge.SubmitIssueOptions) (*forge.Issue, error) {
	body := jsongen.MustObject(jsongen.M("title", opts.Title), jsongen.M("body", opts.Body))
	return fetch.Submit(ctx, f.t, http.MethodPost, fetch.URL("repos/%s/%s/issues", opts.Owner, opts.Repo), body, IssueSchema.Parse)
}

func (f *Forge) patchIssue(ctx context.Context, owner, repo string, number int, members ...jsongen.Pair) error {
	u := fetch.URL("repos/%s/%s/issues/%d", owner, repo, number)
	return fetch.Exec(ctx, f.t, http.MethodPatch, u, jsongen.MustObject(members...))
}

func (f *Forge) IssueClose(ctx context.Context, owner, repo string, number int) error {
	return f.patchIssue(ctx, owner, repo, number, jsongen.M("state", "closed"))
}

func (f *Forge) IssueReopen(ctx context.Context, owner, repo string, number int) error {
	return f.patchIssue(ctx, owner, repo, number, jsongen.M("state", "open"))
}

func (f *Forge) IssueSetTitle(ctx context.Context, owner, repo string, number int, title string) error {
	return f.patchIssue(ctx, owner, repo, number, jsongen.M("title", title))
}

func (f *Forge) IssueSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error {
	return f.patchIssue(ctx, owner, repo, number, jsongen.M("milestone", milestone))
}

func (f *Forge) IssueClearMilestone(ctx context.Context, owner, repo string, number int) error {
	return f.patchIssue(ctx, owner, repo, number, jsongen.M("milestone", nil))
}

func (f *Forge) IssueAssign(ctx context.Context, owner, repo string, number int, assignee string) error {
	u := fetch.URL("repos/%s/%s/issues/%d/assignees", owner, repo, number)
	return fetch.Exec(ctx, f.t, http.MethodPost, u, jsongen.MustObject(jsongen.M("assignees", []string{assignee})))
}

func (f *Forge) IssueAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	u := fetch.URL("repos/%s/%s/issues/%d/labels", owner, repo, number)
	return fetch.Exec(ctx, f.t, http.MethodPost, u, jsongen.MustObject(jsongen.M("labels", labels)))
}

func (f *Forge) IssueRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	for _, l := range labels {
		u := fetch.URL("repos/%s/%s/issues/%d/labels/%s", owner, repo, number, l)
		if err := fetch.Exec(ctx, f.t, http.MethodDelete, u, nil); err != nil {
			return err
		}
	}
	return nil
}

// GetIssueComments lists the comments of an issue.
func (f *Forge) GetIssueComments(ctx context.Context, owner, repo string, number, max int) ([]forge.Comment, error) {
	return list(ctx, f, fetch.URL("repos/%s/%s/issues/%d/comments", owner, repo, number), CommentSchema, max)
}

// GetPullComments lists the conversation of a pull, which GitHub stores on
// the issue of the same number.
func (f *Forge) GetPullComments(ctx context.Context, owner, repo string, number, max int) ([]forge.Comment, error) {
	return f.GetIssueComments(ctx, owner, repo, number, max)
}

// SubmitComment posts a comment on an issue or a pull.
func (f *Forge) SubmitComment(ctx context.Context, opts forge.SubmitCommentOptions) error {
	u := fetch.URL("repos/%s/%s/issues/%d/comments", opts.Owner, opts.Repo, opts.Number)
	return fetch.Exec(ctx, f.t, http.MethodPost, u, jsongen.MustObject(jsongen.M("body", opts.Body)))
}
