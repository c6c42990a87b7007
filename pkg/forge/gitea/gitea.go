// Package gitea implements the forge vocabulary over the Gitea API, which
// mirrors most of GitHub's. Only the differences are implemented here.
package gitea

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/forge/github"
	"github.com/lerenn/gcli/pkg/jsongen"
	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
)

const (
	// DefaultAPIBase is the API root of gitea.com.
	DefaultAPIBase = "https://gitea.com/api/v1"

	pageParam = "limit"
	pageSize  = "50"
)

// Descriptor describes Gitea.
var Descriptor = forge.Descriptor{
	Kind: forge.KindGitea,
	Name: "gitea",
	Quirks: forge.QuirkNoAttachments |
		forge.QuirkNoSnippets |
		forge.QuirkNoPipelines |
		forge.QuirkNoPullCoverage |
		forge.QuirkNoMilestoneExpired,
	ParseError: github.ParseError,
}

// Forge talks to Gitea.
type Forge struct {
	*github.Forge
}

// New creates a Gitea forge over t, whose base URL is the /api/v1 root.
// Listings page through limit rather than GitHub's per_page.
func New(t transport.Transport) *Forge {
	return &Forge{Forge: github.NewWithPaging(t, pageParam, pageSize)}
}

// Descriptor implements forge.Forge.
func (f *Forge) Descriptor() *forge.Descriptor {
	return &Descriptor
}

var milestoneSchema = schema.NewObject("milestone",
	schema.Int("id", func(m *forge.Milestone) *int { return &m.ID }),
	schema.String("title", func(m *forge.Milestone) *string { return &m.Title }),
	schema.String("state", func(m *forge.Milestone) *string { return &m.State }),
	schema.String("description", func(m *forge.Milestone) *string { return &m.Description }),
	schema.String("created_at", func(m *forge.Milestone) *string { return &m.CreatedAt }),
	schema.String("updated_at", func(m *forge.Milestone) *string { return &m.UpdatedAt }),
	schema.String("due_on", func(m *forge.Milestone) *string { return &m.DueDate }),
	schema.Int("open_issues", func(m *forge.Milestone) *int { return &m.OpenIssues }),
	schema.Int("closed_issues", func(m *forge.Milestone) *int { return &m.ClosedIssues }),
)

func (f *Forge) listIssues(ctx context.Context, owner, repo string, q url.Values, max int) ([]forge.Issue, error) {
	q.Set("type", "issues")
	q.Set(pageParam, pageSize)
	return fetch.List(ctx, f.Transport(), fetch.ListParams[forge.Issue]{
		URL:   fetch.WithQuery(fetch.URL("repos/%s/%s/issues", owner, repo), q),
		Parse: github.IssueSchema.ParseArray,
		Max:   max,
	})
}

// GetIssues lists issues. Gitea filters pulls out server side.
func (f *Forge) GetIssues(ctx context.Context, owner, repo string, filter forge.IssueFilter, max int) ([]forge.Issue, error) {
	state := "open"
	if filter.All {
		state = "all"
	}
	return f.listIssues(ctx, owner, repo, url.Values{
		"state":      {state},
		"created_by": {filter.Author},
		"labels":     {filter.Label},
		"milestones": {filter.Milestone},
		"q":          {filter.Search},
	}, max)
}

func (f *Forge) GetMilestoneIssues(ctx context.Context, owner, repo string, id, max int) ([]forge.Issue, error) {
	return f.listIssues(ctx, owner, repo, url.Values{
		"state":      {"all"},
		"milestones": {fmt.Sprint(id)},
	}, max)
}

func (f *Forge) GetMilestones(ctx context.Context, owner, repo string, max int) ([]forge.Milestone, error) {
	q := url.Values{"state": {"all"}, pageParam: {pageSize}}
	return fetch.List(ctx, f.Transport(), fetch.ListParams[forge.Milestone]{
		URL:   fetch.WithQuery(fetch.URL("repos/%s/%s/milestones", owner, repo), q),
		Parse: milestoneSchema.ParseArray,
		Max:   max,
	})
}

func (f *Forge) GetMilestone(ctx context.Context, owner, repo string, id int) (*forge.Milestone, error) {
	return fetch.One(ctx, f.Transport(), fetch.URL("repos/%s/%s/milestones/%d", owner, repo, id), milestoneSchema.Parse)
}

// CreateLabel creates a label. Gitea wants the colour with a leading '#'.
func (f *Forge) CreateLabel(ctx context.Context, owner, repo string, label forge.Label) (*forge.Label, error) {
	body := jsongen.MustObject(
		jsongen.M("name", label.Name),
		jsongen.M("color", fmt.Sprintf("#%06x", label.Colour&0xffffff)),
		jsongen.M("description", label.Description),
	)
	u := fetch.URL("repos/%s/%s/labels", owner, repo)
	return fetch.Submit(ctx, f.Transport(), http.MethodPost, u, body, github.LabelSchema.Parse)
}

// DeleteLabel deletes a label, which Gitea addresses by id.
func (f *Forge) DeleteLabel(ctx context.Context, owner, repo, name string) error {
	ids, err := f.labelIDs(ctx, owner, repo, []string{name})
	if err != nil {
		return err
	}
	return fetch.Exec(ctx, f.Transport(), http.MethodDelete, fetch.URL("repos/%s/%s/labels/%d", owner, repo, ids[0]), nil)
}

// labelIDs resolves label names to ids, in order.
func (f *Forge) labelIDs(ctx context.Context, owner, repo string, names []string) ([]int64, error) {
	labels, err := f.GetLabels(ctx, owner, repo, -1)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int64, len(labels))
	for _, l := range labels {
		byName[l.Name] = l.ID
	}

	ids := make([]int64, 0, len(names))
	for _, n := range names {
		id, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLabelNotFound, n)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *Forge) IssueAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	ids, err := f.labelIDs(ctx, owner, repo, labels)
	if err != nil {
		return err
	}
	u := fetch.URL("repos/%s/%s/issues/%d/labels", owner, repo, number)
	return fetch.Exec(ctx, f.Transport(), http.MethodPost, u, jsongen.MustObject(jsongen.M("labels", ids)))
}

func (f *Forge) IssueRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	ids, err := f.labelIDs(ctx, owner, repo, labels)
	if err != nil {
		return err
	}
	for _, id := range ids {
		u := fetch.URL("repos/%s/%s/issues/%d/labels/%d", owner, repo, number, id)
		if err := fetch.Exec(ctx, f.Transport(), http.MethodDelete, u, nil); err != nil {
			return err
		}
	}
	return nil
}

func (f *Forge) PullAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.IssueAddLabels(ctx, owner, repo, number, labels)
}

func (f *Forge) PullRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.IssueRemoveLabels(ctx, owner, repo, number, labels)
}

// CreatePull opens a pull request. Labels go into the creation request as
// ids; reviewers are requested afterwards.
func (f *Forge) CreatePull(ctx context.Context, opts forge.SubmitPullOptions) error {
	members := []jsongen.Pair{
		jsongen.M("head", opts.From),
		jsongen.M("base", opts.To),
		jsongen.M("title", opts.Title),
		jsongen.M("body", opts.Body),
	}
	if len(opts.Labels) > 0 {
		ids, err := f.labelIDs(ctx, opts.Owner, opts.Repo, opts.Labels)
		if err != nil {
			return err
		}
		members = append(members, jsongen.M("labels", ids))
	}

	u := fetch.URL("repos/%s/%s/pulls", opts.Owner, opts.Repo)
	pull, err := fetch.Submit(ctx, f.Transport(), http.MethodPost, u, jsongen.MustObject(members...), github.PullSchema.Parse)
	if err != nil {
		return err
	}
	for _, r := range opts.Reviewers {
		if err := f.PullAddReviewer(ctx, opts.Owner, opts.Repo, pull.Number, r); err != nil {
			return err
		}
	}
	return nil
}

// PullMerge merges a pull request; Gitea deletes the head branch itself.
func (f *Forge) PullMerge(ctx context.Context, owner, repo string, number int, flags forge.MergeFlags) error {
	do := "merge"
	if flags.Has(forge.MergeSquash) {
		do = "squash"
	}
	body := jsongen.MustObject(
		jsongen.M("Do", do),
		jsongen.M("delete_branch_after_merge", flags.Has(forge.MergeDeleteHead)),
	)
	return fetch.Exec(ctx, f.Transport(), http.MethodPost, fetch.URL("repos/%s/%s/pulls/%d/merge", owner, repo, number), body)
}

// PullGetDiff writes the pull request as a unified diff.
func (f *Forge) PullGetDiff(ctx context.Context, owner, repo string, number int, w io.Writer) error {
	return fetch.Raw(ctx, f.Transport(), fetch.URL("repos/%s/%s/pulls/%d.diff", owner, repo, number), "", w)
}

// Gitea has no gists.

func (f *Forge) GetSnippets(context.Context, int) ([]forge.Snippet, error) {
	return nil, forge.ErrUnsupported
}

func (f *Forge) SnippetDelete(context.Context, string) error {
	return forge.ErrUnsupported
}

func (f *Forge) SnippetGetContent(context.Context, string, io.Writer) error {
	return forge.ErrUnsupported
}
