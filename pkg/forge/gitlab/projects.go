package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

func (f *Forge) GetLabels(ctx context.Context, owner, repo string, max int) ([]forge.Label, error) {
	return list(ctx, f.t, project(owner, repo, "/labels"), nil, labelSchema, max)
}

func (f *Forge) CreateLabel(ctx context.Context, owner, repo string, label forge.Label) (*forge.Label, error) {
	body := jsongen.MustObject(
		jsongen.M("name", label.Name),
		jsongen.M("color", fmt.Sprintf("#%06x", label.Colour&0xffffff)),
		jsongen.M("description", label.Description),
	)
	return fetch.Submit(ctx, f.t, http.MethodPost, project(owner, repo, "/labels"), body, labelSchema.Parse)
}

// DeleteLabel deletes a label; the API accepts its name in place of the id.
func (f *Forge) DeleteLabel(ctx context.Context, owner, repo, name string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, project(owner, repo, "/labels/%s", name), nil)
}

func (f *Forge) GetMilestones(ctx context.Context, owner, repo string, max int) ([]forge.Milestone, error) {
	return list(ctx, f.t, project(owner, repo, "/milestones"), nil, milestoneSchema, max)
}

func (f *Forge) GetMilestone(ctx context.Context, owner, repo string, id int) (*forge.Milestone, error) {
	return fetch.One(ctx, f.t, project(owner, repo, "/milestones/%d", id), milestoneSchema.Parse)
}

func (f *Forge) CreateMilestone(ctx context.Context, opts forge.CreateMilestoneOptions) error {
	body := jsongen.MustObject(jsongen.M("title", opts.Title), jsongen.M("description", opts.Description))
	return fetch.Exec(ctx, f.t, http.MethodPost, project(opts.Owner, opts.Repo, "/milestones"), body)
}

func (f *Forge) DeleteMilestone(ctx context.Context, owner, repo string, id int) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, project(owner, repo, "/milestones/%d", id), nil)
}

// MilestoneSetDueDate sets the due date, formatted YYYY-MM-DD.
func (f *Forge) MilestoneSetDueDate(ctx context.Context, owner, repo string, id int, date string) error {
	body := jsongen.MustObject(jsongen.M("due_date", date))
	return fetch.Exec(ctx, f.t, http.MethodPut, project(owner, repo, "/milestones/%d", id), body)
}

func (f *Forge) GetMilestoneIssues(ctx context.Context, owner, repo string, id, max int) ([]forge.Issue, error) {
	return list(ctx, f.t, project(owner, repo, "/milestones/%d/issues", id), nil, issueSchema, max)
}

func (f *Forge) GetReleases(ctx context.Context, owner, repo string, max int) ([]forge.Release, error) {
	return list(ctx, f.t, project(owner, repo, "/releases"), nil, releaseSchema, max)
}

// CreateRelease creates a release; GitLab identifies it by tag.
func (f *Forge) CreateRelease(ctx context.Context, opts forge.CreateReleaseOptions) (*forge.Release, error) {
	members := []jsongen.Pair{
		jsongen.M("tag_name", opts.TagName),
		jsongen.M("name", opts.Name),
		jsongen.M("description", opts.Body),
	}
	if opts.CommitIsh != "" {
		members = append(members, jsongen.M("ref", opts.CommitIsh))
	}
	u := project(opts.Owner, opts.Repo, "/releases")
	return fetch.Submit(ctx, f.t, http.MethodPost, u, jsongen.MustObject(members...), releaseSchema.Parse)
}

func (f *Forge) DeleteRelease(ctx context.Context, owner, repo, id string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, project(owner, repo, "/releases/%s", id), nil)
}

func (f *Forge) GetForks(ctx context.Context, owner, repo string, max int) ([]forge.Fork, error) {
	return list(ctx, f.t, project(owner, repo, "/forks"), nil, forkSchema, max)
}

func (f *Forge) ForkCreate(ctx context.Context, owner, repo, into string) error {
	var body []byte
	if into != "" {
		body = jsongen.MustObject(jsongen.M("namespace_path", into))
	}
	return fetch.Exec(ctx, f.t, http.MethodPost, project(owner, repo, "/fork"), body)
}

func (f *Forge) GetRepos(ctx context.Context, owner string, max int) ([]forge.Repo, error) {
	return list(ctx, f.t, fetch.URL("users/%s/projects", owner), nil, projectSchema, max)
}

func (f *Forge) GetOwnRepos(ctx context.Context, max int) ([]forge.Repo, error) {
	return list(ctx, f.t, "projects", url.Values{"owned": {"true"}}, projectSchema, max)
}

func (f *Forge) RepoCreate(ctx context.Context, opts forge.RepoCreateOptions) (*forge.Repo, error) {
	vis := forge.VisibilityPublic
	if opts.Private {
		vis = forge.VisibilityPrivate
	}
	body := jsongen.MustObject(
		jsongen.M("name", opts.Name),
		jsongen.M("description", opts.Description),
		jsongen.M("visibility", string(vis)),
	)
	return fetch.Submit(ctx, f.t, http.MethodPost, "projects", body, projectSchema.Parse)
}

func (f *Forge) RepoDelete(ctx context.Context, owner, repo string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, project(owner, repo, ""), nil)
}

func (f *Forge) RepoSetVisibility(ctx context.Context, owner, repo string, vis forge.Visibility) error {
	body := jsongen.MustObject(jsongen.M("visibility", string(vis)))
	return fetch.Exec(ctx, f.t, http.MethodPut, project(owner, repo, ""), body)
}
