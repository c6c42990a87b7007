package github

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

// PullFilter keeps the pulls matching the client side parts of filter.
func PullFilter(filter forge.PullFilter) func(*forge.Pull) bool {
	if filter.Author == "" && filter.Label == "" && filter.Milestone == "" && filter.Search == "" {
		return nil
	}
	return func(p *forge.Pull) bool {
		if filter.Author != "" && !strings.EqualFold(p.Author, filter.Author) {
			return false
		}
		if filter.Milestone != "" && p.Milestone != filter.Milestone {
			return false
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			return false
		}
		if filter.Label == "" {
			return true
		}
		for _, l := range p.Labels {
			if l == filter.Label {
				return true
			}
		}
		return false
	}
}

// GetPulls lists pull requests. The endpoint only filters by state; the rest
// of the filter is applied on the results.
func (f *Forge) GetPulls(ctx context.Context, owner, repo string, filter forge.PullFilter, max int) ([]forge.Pull, error) {
	q := url.Values{"state": {issueState(filter.All)}}
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Pull]{
		URL:    fetch.WithQuery(fetch.URL("repos/%s/%s/pulls", owner, repo), f.paged(q)),
		Parse:  PullSchema.ParseArray,
		Filter: PullFilter(filter),
		Max:    max,
	})
}

// GetPull fetches one pull request with its statistics.
func (f *Forge) GetPull(ctx context.Context, owner, repo string, number int) (*forge.Pull, error) {
	return fetch.One(ctx, f.t, fetch.URL("repos/%s/%s/pulls/%d", owner, repo, number), PullSchema.Parse)
}

// CreatePull opens a pull request, then applies its labels and reviewers.
func (f *Forge) CreatePull(ctx context.Context, opts forge.SubmitPullOptions) error {
	body := jsongen.MustObject(
		jsongen.M("head", opts.From),
		jsongen.M("base", opts.To),
		jsongen.M("title", opts.Title),
		jsongen.M("body", opts.Body),
		jsongen.M("draft", opts.Draft),
	)
	u := fetch.URL("repos/%s/%s/pulls", opts.Owner, opts.Repo)
	pull, err := fetch.Submit(ctx, f.t, http.MethodPost, u, body, PullSchema.Parse)
	if err != nil {
		return err
	}

	if len(opts.Labels) > 0 {
		if err := f.IssueAddLabels(ctx, opts.Owner, opts.Repo, pull.Number, opts.Labels); err != nil {
			return err
		}
	}
	if len(opts.Reviewers) > 0 {
		return f.requestReviewers(ctx, opts.Owner, opts.Repo, pull.Number, opts.Reviewers)
	}
	return nil
}

// PullMerge merges a pull request and optionally deletes its head branch.
func (f *Forge) PullMerge(ctx context.Context, owner, repo string, number int, flags forge.MergeFlags) error {
	method := "merge"
	if flags.Has(forge.MergeSquash) {
		method = "squash"
	}

	u := fetch.URL("repos/%s/%s/pulls/%d/merge", owner, repo, number)
	if err := fetch.Exec(ctx, f.t, http.MethodPut, u, jsongen.MustObject(jsongen.M("merge_method", method))); err != nil {
		return err
	}
	if !flags.Has(forge.MergeDeleteHead) {
		return nil
	}

	pull, err := f.GetPull(ctx, owner, repo, number)
	if err != nil {
		return err
	}
	headOwner, branch := SplitHeadLabel(pull.HeadLabel, owner)
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("repos/%s/%s/git/refs/heads/%s", headOwner, repo, branch), nil)
}

// SplitHeadLabel splits an "owner:branch" head label. Labels without an
// owner belong to defaultOwner.
func SplitHeadLabel(label, defaultOwner string) (owner, branch string) {
	if o, b, ok := strings.Cut(label, ":"); ok {
		return o, b
	}
	return defaultOwner, label
}

func (f *Forge) patchPull(ctx context.Context, owner, repo string, number int, members ...jsongen.Pair) error {
	u := fetch.URL("repos/%s/%s/pulls/%d", owner, repo, number)
	return fetch.Exec(ctx, f.t, http.MethodPatch, u, jsongen.MustObject(members...))
}

func (f *Forge) PullClose(ctx context.Context, owner, repo string, number int) error {
	return f.patchPull(ctx, owner, repo, number, jsongen.M("state", "closed"))
}

func (f *Forge) PullReopen(ctx context.Context, owner, repo string, number int) error {
	return f.patchPull(ctx, owner, repo, number, jsongen.M("state", "open"))
}

func (f *Forge) PullSetTitle(ctx context.Context, owner, repo string, number int, title string) error {
	return f.patchPull(ctx, owner, repo, number, jsongen.M("title", title))
}

// GetPullCommits lists the commits of a pull request.
func (f *Forge) GetPullCommits(ctx context.Context, owner, repo string, number, max int) ([]forge.Commit, error) {
	return list(ctx, f, fetch.URL("repos/%s/%s/pulls/%d/commits", owner, repo, number), CommitSchema, max)
}

// PullGetDiff writes the pull request as a unified diff.
func (f *Forge) PullGetDiff(ctx context.Context, owner, repo string, number int, w io.Writer) error {
	return fetch.Raw(ctx, f.t, fetch.URL("repos/%s/%s/pulls/%d", owner, repo, number), DiffMediaType, w)
}

// Labels and milestones of pulls live on the issue of the same number.

func (f *Forge) PullAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.IssueAddLabels(ctx, owner, repo, number, labels)
}

func (f *Forge) PullRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.IssueRemoveLabels(ctx, owner, repo, number, labels)
}

func (f *Forge) PullSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error {
	return f.IssueSetMilestone(ctx, owner, repo, number, milestone)
}

func (f *Forge) PullClearMilestone(ctx context.Context, owner, repo string, number int) error {
	return f.IssueClearMilestone(ctx, owner, repo, number)
}

func (f *Forge) PullAddReviewer(ctx context.Context, owner, repo string, number int, username string) error {
	return f.requestReviewers(ctx, owner, repo, number, []string{username})
}

func (f *Forge) requestReviewers(ctx context.Context, owner, repo string, number int, reviewers []string) error {
	u := fetch.URL("repos/%s/%s/pulls/%d/requested_reviewers", owner, repo, number)
	return fetch.Exec(ctx, f.t, http.MethodPost, u, jsongen.MustObject(jsongen.M("reviewers", reviewers)))
}
