package forge

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/gcli/pkg/logger"
	"github.com/lerenn/gcli/pkg/transport"
)

// Session dispatches operations to one forge. Every operation is checked
// against the forge's quirks before dispatch, and every failure is recorded
// as the session's last error. A Session is not safe for concurrent use.
type Session struct {
	forge   Forge
	desc    *Descriptor
	logger  logger.Logger
	lastErr string

	// UserData is left to the caller.
	UserData any
}

// NewSession creates a session over f. A nil logger discards output.
func NewSession(f Forge, l logger.Logger) *Session {
	return &Session{
		forge:  f,
		desc:   f.Descriptor(),
		logger: logger.OrNoop(l),
	}
}

// Forge returns the forge behind the session.
func (s *Session) Forge() Forge {
	return s.forge
}

// Descriptor returns the forge's static description.
func (s *Session) Descriptor() *Descriptor {
	return s.desc
}

// Supports reports whether the forge can perform op.
func (s *Session) Supports(op Op) bool {
	return op.Supported(s.desc.Quirks)
}

// LastError returns the message of the last failed operation, or an empty
// string if none failed yet.
func (s *Session) LastError() string {
	return s.lastErr
}

func (s *Session) fail(op Op, err error) error {
	var he *transport.HTTPError
	if errors.As(err, &he) {
		err = &APIError{
			Forge:      s.desc.Name,
			Op:         op,
			StatusCode: he.StatusCode,
			Message:    s.errorMessage(he.Body),
		}
	} else {
		err = fmt.Errorf("%s: %s: %w", s.desc.Name, op, err)
	}
	s.lastErr = err.Error()
	s.logger.Logf("%v", err)
	return err
}

func (s *Session) errorMessage(body []byte) string {
	if s.desc.ParseError == nil || len(body) == 0 {
		return NoMessage
	}
	msg, err := s.desc.ParseError(body)
	if err != nil || msg == "" {
		return NoMessage
	}
	return msg
}

func invoke[T any](s *Session, op Op, fn func() (T, error)) (T, error) {
	var zero T
	if !s.Supports(op) {
		return zero, s.fail(op, ErrUnsupported)
	}
	v, err := fn()
	if err != nil {
		return zero, s.fail(op, err)
	}
	return v, nil
}

func (s *Session) exec(op Op, fn func() error) error {
	_, err := invoke(s, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// GetIssues lists issues.
func (s *Session) GetIssues(ctx context.Context, owner, repo string, filter IssueFilter, max int) ([]Issue, error) {
	return invoke(s, OpGetIssues, func() ([]Issue, error) {
		return s.forge.GetIssues(ctx, owner, repo, filter, max)
	})
}

// GetIssue fetches one issue.
func (s *Session) GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error) {
	return invoke(s, OpGetIssue, func() (*Issue, error) {
		return s.forge.GetIssue(ctx, owner, repo, number)
	})
}

// CreateIssue opens an issue.
func (s *Session) CreateIssue(ctx context.Context, opts SubmitIssueOptions) (*Issue, error) {
	return invoke(s, OpCreateIssue, func() (*Issue, error) {
		return s.forge.CreateIssue(ctx, opts)
	})
}

// IssueClose closes an issue.
func (s *Session) IssueClose(ctx context.Context, owner, repo string, number int) error {
	return s.exec(OpIssueClose, func() error { return s.forge.IssueClose(ctx, owner, repo, number) })
}

// IssueReopen reopens a closed issue.
func (s *Session) IssueReopen(ctx context.Context, owner, repo string, number int) error {
	return s.exec(OpIssueReopen, func() error { return s.forge.IssueReopen(ctx, owner, repo, number) })
}

// IssueAssign assigns an issue to a user.
func (s *Session) IssueAssign(ctx context.Context, owner, repo string, number int, assignee string) error {
	return s.exec(OpIssueAssign, func() error {
		return s.forge.IssueAssign(ctx, owner, repo, number, assignee)
	})
}

// IssueAddLabels adds labels to an issue.
func (s *Session) IssueAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return s.exec(OpIssueAddLabels, func() error {
		return s.forge.IssueAddLabels(ctx, owner, repo, number, labels)
	})
}

// IssueRemoveLabels removes labels from an issue.
func (s *Session) IssueRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return s.exec(OpIssueRemoveLabels, func() error {
		return s.forge.IssueRemoveLabels(ctx, owner, repo, number, labels)
	})
}

// IssueSetMilestone attaches an issue to a milestone.
func (s *Session) IssueSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error {
	return s.exec(OpIssueSetMilestone, func() error {
		return s.forge.IssueSetMilestone(ctx, owner, repo, number, milestone)
	})
}

// IssueClearMilestone detaches an issue from its milestone.
func (s *Session) IssueClearMilestone(ctx context.Context, owner, repo string, number int) error {
	return s.exec(OpIssueClearMilestone, func() error {
		return s.forge.IssueClearMilestone(ctx, owner, repo, number)
	})
}

// IssueSetTitle renames an issue.
func (s *Session) IssueSetTitle(ctx context.Context, owner, repo string, number int, title string) error {
	return s.exec(OpIssueSetTitle, func() error {
		return s.forge.IssueSetTitle(ctx, owner, repo, number, title)
	})
}

// GetIssueAttachments lists the files attached to an issue.
func (s *Session) GetIssueAttachments(ctx context.Context, owner, repo string, number, max int) ([]Attachment, error) {
	return invoke(s, OpGetIssueAttachments, func() ([]Attachment, error) {
		return s.forge.GetIssueAttachments(ctx, owner, repo, number, max)
	})
}

// AttachmentGetContent writes the decoded content of an attachment to w.
func (s *Session) AttachmentGetContent(ctx context.Context, id int64, w io.Writer) error {
	return s.exec(OpAttachmentGetContent, func() error { return s.forge.AttachmentGetContent(ctx, id, w) })
}

// GetIssueComments lists the comments of an issue.
func (s *Session) GetIssueComments(ctx context.Context, owner, repo string, number, max int) ([]Comment, error) {
	return invoke(s, OpGetIssueComments, func() ([]Comment, error) {
		return s.forge.GetIssueComments(ctx, owner, repo, number, max)
	})
}

// GetPullComments lists the comments of a pull request.
func (s *Session) GetPullComments(ctx context.Context, owner, repo string, number, max int) ([]Comment, error) {
	return invoke(s, OpGetPullComments, func() ([]Comment, error) {
		return s.forge.GetPullComments(ctx, owner, repo, number, max)
	})
}

// SubmitComment posts a comment on an issue or pull request.
func (s *Session) SubmitComment(ctx context.Context, opts SubmitCommentOptions) error {
	op := OpSubmitComment
	if opts.Target == CommentOnPull && !OpGetPulls.Supported(s.desc.Quirks) {
		return s.fail(op, ErrUnsupported)
	}
	return s.exec(op, func() error { return s.forge.SubmitComment(ctx, opts) })
}

// GetPulls lists pull requests.
func (s *Session) GetPulls(ctx context.Context, owner, repo string, filter PullFilter, max int) ([]Pull, error) {
	return invoke(s, OpGetPulls, func() ([]Pull, error) {
		return s.forge.GetPulls(ctx, owner, repo, filter, max)
	})
}

// GetPull fetches one pull request.
func (s *Session) GetPull(ctx context.Context, owner, repo string, number int) (*Pull, error) {
	return invoke(s, OpGetPull, func() (*Pull, error) {
		return s.forge.GetPull(ctx, owner, repo, number)
	})
}

// CreatePull opens a pull request.
func (s *Session) CreatePull(ctx context.Context, opts SubmitPullOptions) error {
	return s.exec(OpCreatePull, func() error { return s.forge.CreatePull(ctx, opts) })
}

// PullMerge merges a pull request.
func (s *Session) PullMerge(ctx context.Context, owner, repo string, number int, flags MergeFlags) error {
	return s.exec(OpPullMerge, func() error { return s.forge.PullMerge(ctx, owner, repo, number, flags) })
}

// PullClose closes a pull request without merging it.
func (s *Session) PullClose(ctx context.Context, owner, repo string, number int) error {
	return s.exec(OpPullClose, func() error { return s.forge.PullClose(ctx, owner, repo, number) })
}

// PullReopen reopens a closed pull request.
func (s *Session) PullReopen(ctx context.Context, owner, repo string, number int) error {
	return s.exec(OpPullReopen, func() error { return s.forge.PullReopen(ctx, owner, repo, number) })
}

// GetPullCommits lists the commits of a pull request.
func (s *Session) GetPullCommits(ctx context.Context, owner, repo string, number, max int) ([]Commit, error) {
	return invoke(s, OpGetPullCommits, func() ([]Commit, error) {
		return s.forge.GetPullCommits(ctx, owner, repo, number, max)
	})
}

// PullGetDiff writes the unified diff of a pull to w.
func (s *Session) PullGetDiff(ctx context.Context, owner, repo string, number int, w io.Writer) error {
	return s.exec(OpPullGetDiff, func() error { return s.forge.PullGetDiff(ctx, owner, repo, number, w) })
}

// PullAddLabels adds labels to a pull request.
func (s *Session) PullAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return s.exec(OpPullAddLabels, func() error {
		return s.forge.PullAddLabels(ctx, owner, repo, number, labels)
	})
}

// PullRemoveLabels removes labels from a pull request.
func (s *Session) PullRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return s.exec(OpPullRemoveLabels, func() error {
		return s.forge.PullRemoveLabels(ctx, owner, repo, number, labels)
	})
}

// PullSetMilestone attaches a pull request to a milestone.
func (s *Session) PullSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error {
	return s.exec(OpPullSetMilestone, func() error {
		return s.forge.PullSetMilestone(ctx, owner, repo, number, milestone)
	})
}

// PullClearMilestone detaches a pull request from its milestone.
func (s *Session) PullClearMilestone(ctx context.Context, owner, repo string, number int) error {
	return s.exec(OpPullClearMilestone, func() error {
		return s.forge.PullClearMilestone(ctx, owner, repo, number)
	})
}

// PullSetTitle renames a pull request.
func (s *Session) PullSetTitle(ctx context.Context, owner, repo string, number int, title string) error {
	return s.exec(OpPullSetTitle, func() error {
		return s.forge.PullSetTitle(ctx, owner, repo, number, title)
	})
}

// PullAddReviewer requests a review from a user.
func (s *Session) PullAddReviewer(ctx context.Context, owner, repo string, number int, username string) error {
	return s.exec(OpPullAddReviewer, func() error {
		return s.forge.PullAddReviewer(ctx, owner, repo, number, username)
	})
}

// GetLabels lists the labels of a repository.
func (s *Session) GetLabels(ctx context.Context, owner, repo string, max int) ([]Label, error) {
	return invoke(s, OpGetLabels, func() ([]Label, error) {
		return s.forge.GetLabels(ctx, owner, repo, max)
	})
}

// CreateLabel creates a label.
func (s *Session) CreateLabel(ctx context.Context, owner, repo string, label Label) (*Label, error) {
	return invoke(s, OpCreateLabel, func() (*Label, error) {
		return s.forge.CreateLabel(ctx, owner, repo, label)
	})
}

// DeleteLabel deletes a label by name.
func (s *Session) DeleteLabel(ctx context.Context, owner, repo, name string) error {
	return s.exec(OpDeleteLabel, func() error { return s.forge.DeleteLabel(ctx, owner, repo, name) })
}

// GetMilestones lists the milestones of a repository.
func (s *Session) GetMilestones(ctx context.Context, owner, repo string, max int) ([]Milestone, error) {
	return invoke(s, OpGetMilestones, func() ([]Milestone, error) {
		return s.forge.GetMilestones(ctx, owner, repo, max)
	})
}

// GetMilestone fetches one milestone.
func (s *Session) GetMilestone(ctx context.Context, owner, repo string, id int) (*Milestone, error) {
	return invoke(s, OpGetMilestone, func() (*Milestone, error) {
		return s.forge.GetMilestone(ctx, owner, repo, id)
	})
}

// CreateMilestone creates a milestone.
func (s *Session) CreateMilestone(ctx context.Context, opts CreateMilestoneOptions) error {
	return s.exec(OpCreateMilestone, func() error { return s.forge.CreateMilestone(ctx, opts) })
}

// DeleteMilestone deletes a milestone.
func (s *Session) DeleteMilestone(ctx context.Context, owner, repo string, id int) error {
	return s.exec(OpDeleteMilestone, func() error { return s.forge.DeleteMilestone(ctx, owner, repo, id) })
}

// MilestoneSetDueDate sets the due date of a milestone.
func (s *Session) MilestoneSetDueDate(ctx context.Context, owner, repo string, id int, date string) error {
	return s.exec(OpMilestoneSetDueDate, func() error {
		return s.forge.MilestoneSetDueDate(ctx, owner, repo, id, date)
	})
}

// GetMilestoneIssues lists the issues of a milestone.
func (s *Session) GetMilestoneIssues(ctx context.Context, owner, repo string, id, max int) ([]Issue, error) {
	return invoke(s, OpGetMilestoneIssues, func() ([]Issue, error) {
		return s.forge.GetMilestoneIssues(ctx, owner, repo, id, max)
	})
}

// GetReleases lists the releases of a repository.
func (s *Session) GetReleases(ctx context.Context, owner, repo string, max int) ([]Release, error) {
	return invoke(s, OpGetReleases, func() ([]Release, error) {
		return s.forge.GetReleases(ctx, owner, repo, max)
	})
}

// CreateRelease publishes a release.
func (s *Session) CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*Release, error) {
	return invoke(s, OpCreateRelease, func() (*Release, error) {
		return s.forge.CreateRelease(ctx, opts)
	})
}

// DeleteRelease deletes a release.
func (s *Session) DeleteRelease(ctx context.Context, owner, repo, id string) error {
	return s.exec(OpDeleteRelease, func() error { return s.forge.DeleteRelease(ctx, owner, repo, id) })
}

// GetForks lists the forks of a repository.
func (s *Session) GetForks(ctx context.Context, owner, repo string, max int) ([]Fork, error) {
	return invoke(s, OpGetForks, func() ([]Fork, error) {
		return s.forge.GetForks(ctx, owner, repo, max)
	})
}

// ForkCreate forks a repository, into an organisation when into is set.
func (s *Session) ForkCreate(ctx context.Context, owner, repo, into string) error {
	return s.exec(OpForkCreate, func() error { return s.forge.ForkCreate(ctx, owner, repo, into) })
}

// GetRepos lists the repositories of a user or organisation.
func (s *Session) GetRepos(ctx context.Context, owner string, max int) ([]Repo, error) {
	return invoke(s, OpGetRepos, func() ([]Repo, error) {
		return s.forge.GetRepos(ctx, owner, max)
	})
}

// GetOwnRepos lists the repositories of the authenticated user.
func (s *Session) GetOwnRepos(ctx context.Context, max int) ([]Repo, error) {
	return invoke(s, OpGetOwnRepos, func() ([]Repo, error) {
		return s.forge.GetOwnRepos(ctx, max)
	})
}

// RepoCreate creates a repository.
func (s *Session) RepoCreate(ctx context.Context, opts RepoCreateOptions) (*Repo, error) {
	return invoke(s, OpRepoCreate, func() (*Repo, error) {
		return s.forge.RepoCreate(ctx, opts)
	})
}

// RepoDelete deletes a repository.
func (s *Session) RepoDelete(ctx context.Context, owner, repo string) error {
	return s.exec(OpRepoDelete, func() error { return s.forge.RepoDelete(ctx, owner, repo) })
}

// RepoSetVisibility makes a repository public or private.
func (s *Session) RepoSetVisibility(ctx context.Context, owner, repo string, vis Visibility) error {
	return s.exec(OpRepoSetVisibility, func() error {
		return s.forge.RepoSetVisibility(ctx, owner, repo, vis)
	})
}

// GetNotifications lists the notifications of the authenticated user.
func (s *Session) GetNotifications(ctx context.Context, max int) ([]Notification, error) {
	return invoke(s, OpGetNotifications, func() ([]Notification, error) {
		return s.forge.GetNotifications(ctx, max)
	})
}

// NotificationMarkAsRead marks a notification thread as read.
func (s *Session) NotificationMarkAsRead(ctx context.Context, id string) error {
	return s.exec(OpNotificationMarkAsRead, func() error { return s.forge.NotificationMarkAsRead(ctx, id) })
}

// GetSSHKeys lists the SSH keys of the authenticated user.
func (s *Session) GetSSHKeys(ctx context.Context, max int) ([]SSHKey, error) {
	return invoke(s, OpGetSSHKeys, func() ([]SSHKey, error) {
		return s.forge.GetSSHKeys(ctx, max)
	})
}

// AddSSHKey registers an SSH public key.
func (s *Session) AddSSHKey(ctx context.Context, title, key string) (*SSHKey, error) {
	return invoke(s, OpAddSSHKey, func() (*SSHKey, error) {
		return s.forge.AddSSHKey(ctx, title, key)
	})
}

// DeleteSSHKey removes an SSH key.
func (s *Session) DeleteSSHKey(ctx context.Context, id int64) error {
	return s.exec(OpDeleteSSHKey, func() error { return s.forge.DeleteSSHKey(ctx, id) })
}

// GetSnippets lists the snippets of the authenticated user.
func (s *Session) GetSnippets(ctx context.Context, max int) ([]Snippet, error) {
	return invoke(s, OpGetSnippets, func() ([]Snippet, error) {
		return s.forge.GetSnippets(ctx, max)
	})
}

// SnippetDelete deletes a snippet.
func (s *Session) SnippetDelete(ctx context.Context, id string) error {
	return s.exec(OpSnippetDelete, func() error { return s.forge.SnippetDelete(ctx, id) })
}

// SnippetGetContent writes the raw content of a snippet to w.
func (s *Session) SnippetGetContent(ctx context.Context, id string, w io.Writer) error {
	return s.exec(OpSnippetGetContent, func() error { return s.forge.SnippetGetContent(ctx, id, w) })
}

// GetPipelines lists the pipelines of a repository.
func (s *Session) GetPipelines(ctx context.Context, owner, repo string, max int) ([]Pipeline, error) {
	return invoke(s, OpGetPipelines, func() ([]Pipeline, error) {
		return s.forge.GetPipelines(ctx, owner, repo, max)
	})
}

// GetPipelineJobs lists the jobs of a pipeline.
func (s *Session) GetPipelineJobs(ctx context.Context, owner, repo string, pipeline int64, max int) ([]Job, error) {
	return invoke(s, OpGetPipelineJobs, func() ([]Job, error) {
		return s.forge.GetPipelineJobs(ctx, owner, repo, pipeline, max)
	})
}

// JobGetLog writes the log of a job to w.
func (s *Session) JobGetLog(ctx context.Context, owner, repo string, job int64, w io.Writer) error {
	return s.exec(OpJobGetLog, func() error { return s.forge.JobGetLog(ctx, owner, repo, job, w) })
}

// JobCancel cancels a running job.
func (s *Session) JobCancel(ctx context.Context, owner, repo string, job int64) error {
	return s.exec(OpJobCancel, func() error { return s.forge.JobCancel(ctx, owner, repo, job) })
}

// JobRetry restarts a job.
func (s *Session) JobRetry(ctx context.Context, owner, repo string, job int64) error {
	return s.exec(OpJobRetry, func() error { return s.forge.JobRetry(ctx, owner, repo, job) })
}
