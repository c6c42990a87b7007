package gitlab

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

// GetPulls lists merge requests.
func (f *Forge) GetPulls(ctx context.Context, owner, repo string, filter forge.PullFilter, max int) ([]forge.Pull, error) {
	q := filterQuery(filter.All, filter.Author, filter.Label, filter.Milestone, filter.Search)
	return list(ctx, f.t, project(owner, repo, "/merge_requests"), q, mergeRequestSchema, max)
}

func (f *Forge) GetPull(ctx context.Context, owner, repo string, number int) (*forge.Pull, error) {
	return fetch.One(ctx, f.t, project(owner, repo, "/merge_requests/%d", number), mergeRequestSchema.Parse)
}

// CreatePull opens a merge request. A head given as "owner:branch" keeps
// only the branch.
func (f *Forge) CreatePull(ctx context.Context, opts forge.SubmitPullOptions) error {
	source := opts.From
	if _, branch, ok := strings.Cut(source, ":"); ok {
		source = branch
	}
	title := opts.Title
	if opts.Draft {
		title = "Draft: " + title
	}

	members := []jsongen.Pair{
		jsongen.M("source_branch", source),
		jsongen.M("target_branch", opts.To),
		jsongen.M("title", title),
		jsongen.M("description", opts.Body),
	}
	if len(opts.Labels) > 0 {
		members = append(members, jsongen.M("labels", strings.Join(opts.Labels, ",")))
	}
	if len(opts.Reviewers) > 0 {
		ids, err := f.userIDs(ctx, opts.Reviewers)
		if err != nil {
			return err
		}
		members = append(members, jsongen.M("reviewer_ids", ids))
	}

	return fetch.Exec(ctx, f.t, http.MethodPost, project(opts.Owner, opts.Repo, "/merge_requests"), jsongen.MustObject(members...))
}

func (f *Forge) putMR(ctx context.Context, owner, repo string, number int, members ...jsongen.Pair) error {
	return fetch.Exec(ctx, f.t, http.MethodPut, project(owner, repo, "/merge_requests/%d", number), jsongen.MustObject(members...))
}

func (f *Forge) PullMerge(ctx context.Context, owner, repo string, number int, flags forge.MergeFlags) error {
	body := jsongen.MustObject(
		jsongen.M("squash", flags.Has(forge.MergeSquash)),
		jsongen.M("should_remove_source_branch", flags.Has(forge.MergeDeleteHead)),
	)
	return fetch.Exec(ctx, f.t, http.MethodPut, project(owner, repo, "/merge_requests/%d/merge", number), body)
}

func (f *Forge) PullClose(ctx context.Context, owner, repo string, number int) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("state_event", "close"))
}

func (f *Forge) PullReopen(ctx context.Context, owner, repo string, number int) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("state_event", "reopen"))
}

func (f *Forge) PullSetTitle(ctx context.Context, owner, repo string, number int, title string) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("title", title))
}

func (f *Forge) PullAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("add_labels", strings.Join(labels, ",")))
}

func (f *Forge) PullRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("remove_labels", strings.Join(labels, ",")))
}

func (f *Forge) PullSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("milestone_id", milestone))
}

func (f *Forge) PullClearMilestone(ctx context.Context, owner, repo string, number int) error {
	return f.putMR(ctx, owner, repo, number, jsongen.M("milestone_id", nil))
}

// PullAddReviewer adds a reviewer while keeping the existing ones, since the
// endpoint replaces the whole list.
func (f *Forge) PullAddReviewer(ctx context.Context, owner, repo string, number int, username string) error {
	mr, err := f.GetPull(ctx, owner, repo, number)
	if err != nil {
		return err
	}
	ids, err := f.userIDs(ctx, append(mr.Reviewers, username))
	if err != nil {
		return err
	}
	return f.putMR(ctx, owner, repo, number, jsongen.M("reviewer_ids", ids))
}

func (f *Forge) GetPullCommits(ctx context.Context, owner, repo string, number, max int) ([]forge.Commit, error) {
	return list(ctx, f.t, project(owner, repo, "/merge_requests/%d/commits", number), nil, commitSchema, max)
}

// PullGetDiff writes the merge request as a unified diff.
func (f *Forge) PullGetDiff(ctx context.Context, owner, repo string, number int, w io.Writer) error {
	return fetch.Raw(ctx, f.t, project(owner, repo, "/merge_requests/%d/raw_diffs", number), "text/plain", w)
}
