package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

// GetLabels lists the labels of a repository.
func (f *Forge) GetLabels(ctx context.Context, owner, repo string, max int) ([]forge.Label, error) {
	return list(ctx, f, fetch.URL("repos/%s/%s/labels", owner, repo), LabelSchema, max)
}

// CreateLabel creates a label and returns it as stored by GitHub.
func (f *Forge) CreateLabel(ctx context.Context, owner, repo string, label forge.Label) (*forge.Label, error) {
	body := jsongen.MustObject(
		jsongen.M("name", label.Name),
		jsongen.M("color", fmt.Sprintf("%06x", label.Colour&0xffffff)),
		jsongen.M("description", label.Description),
	)
	return fetch.Submit(ctx, f.t, http.MethodPost, fetch.URL("repos/%s/%s/labels", owner, repo), body, LabelSchema.Parse)
}

func (f *Forge) DeleteLabel(ctx context.Context, owner, repo, name string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("repos/%s/%s/labels/%s", owner, repo, name), nil)
}

// GetMilestones lists open and closed milestones.
func (f *Forge) GetMilestones(ctx context.Context, owner, repo string, max int) ([]forge.Milestone, error) {
	u := fetch.WithQuery(fetch.URL("repos/%s/%s/milestones", owner, repo), url.Values{"state": {"all"}})
	return list(ctx, f, u, MilestoneSchema, max)
}

func (f *Forge) GetMilestone(ctx context.Context, owner, repo string, id int) (*forge.Milestone, error) {
	return fetch.One(ctx, f.t, fetch.URL("repos/%s/%s/milestones/%d", owner, repo, id), MilestoneSchema.Parse)
}

func (f *Forge) CreateMilestone(ctx context.Context, opts forge.CreateMilestoneOptions) error {
	body := jsongen.MustObject(jsongen.M("title", opts.Title), jsongen.M("description", opts.Description))
	return fetch.Exec(ctx, f.t, http.MethodPost, fetch.URL("repos/%s/%s/milestones", opts.Owner, opts.Repo), body)
}

func (f *Forge) DeleteMilestone(ctx context.Context, owner, repo string, id int) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("repos/%s/%s/milestones/%d", owner, repo, id), nil)
}

// MilestoneSetDueDate sets the due date, an ISO 8601 timestamp.
func (f *Forge) MilestoneSetDueDate(ctx context.Context, owner, repo string, id int, date string) error {
	u := fetch.URL("repos/%s/%s/milestones/%d", owner, repo, id)
	return fetch.Exec(ctx, f.t, http.MethodPatch, u, jsongen.MustObject(jsongen.M("due_on", date)))
}

// GetMilestoneIssues lists the issues of a milestone, pulls excluded.
func (f *Forge) GetMilestoneIssues(ctx context.Context, owner, repo string, id, max int) ([]forge.Issue, error) {
	q := url.Values{"state": {"all"}, "milestone": {itoa(id)}}
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Issue]{
		URL:    fetch.WithQuery(fetch.URL("repos/%s/%s/issues", owner, repo), f.paged(q)),
		Parse:  IssueSchema.ParseArray,
		Filter: notPull,
		Max:    max,
	})
}

func (f *Forge) GetReleases(ctx context.Context, owner, repo string, max int) ([]forge.Release, error) {
	return list(ctx, f, fetch.URL("repos/%s/%s/releases", owner, repo), ReleaseSchema, max)
}

// CreateRelease publishes a release. Assets are not uploaded.
func (f *Forge) CreateRelease(ctx context.Context, opts forge.CreateReleaseOptions) (*forge.Release, error) {
	members := []jsongen.Pair{
		jsongen.M("tag_name", opts.TagName),
		jsongen.M("name", opts.Name),
		jsongen.M("body", opts.Body),
		jsongen.M("draft", opts.Draft),
		jsongen.M("prerelease", opts.Prerelease),
	}
	if opts.CommitIsh != "" {
		members = append(members, jsongen.M("target_commitish", opts.CommitIsh))
	}
	u := fetch.URL("repos/%s/%s/releases", opts.Owner, opts.Repo)
	return fetch.Submit(ctx, f.t, http.MethodPost, u, jsongen.MustObject(members...), ReleaseSchema.Parse)
}

func (f *Forge) DeleteRelease(ctx context.Context, owner, repo, id string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("repos/%s/%s/releases/%s", owner, repo, id), nil)
}

func (f *Forge) GetForks(ctx context.Context, owner, repo string, max int) ([]forge.Fork, error) {
	return list(ctx, f, fetch.URL("repos/%s/%s/forks", owner, repo), ForkSchema, max)
}

// ForkCreate forks a repository. GitHub answers 202 and forks asynchronously.
func (f *Forge) ForkCreate(ctx context.Context, owner, repo, into string) error {
	var body []byte
	if into != "" {
		body = jsongen.MustObject(jsongen.M("organization", into))
	}
	return fetch.Exec(ctx, f.t, http.MethodPost, fetch.URL("repos/%s/%s/forks", owner, repo), body)
}

func (f *Forge) GetRepos(ctx context.Context, owner string, max int) ([]forge.Repo, error) {
	return list(ctx, f, fetch.URL("users/%s/repos", owner), RepoSchema, max)
}

func (f *Forge) GetOwnRepos(ctx context.Context, max int) ([]forge.Repo, error) {
	return list(ctx, f, "user/repos", RepoSchema, max)
}

func (f *Forge) RepoCreate(ctx context.Context, opts forge.RepoCreateOptions) (*forge.Repo, error) {
	body := jsongen.MustObject(
		jsongen.M("name", opts.Name),
		jsongen.M("description", opts.Description),
		jsongen.M("private", opts.Private),
	)
	return fetch.Submit(ctx, f.t, http.MethodPost, "user/repos", body, RepoSchema.Parse)
}

func (f *Forge) RepoDelete(ctx context.Context, owner, repo string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("repos/%s/%s", owner, repo), nil)
}

// RepoSetVisibility switches a repository between public and private.
func (f *Forge) RepoSetVisibility(ctx context.Context, owner, repo string, vis forge.Visibility) error {
	body := jsongen.MustObject(jsongen.M("private", vis != forge.VisibilityPublic))
	return fetch.Exec(ctx, f.t, http.MethodPatch, fetch.URL("repos/%s/%s", owner, repo), body)
}
