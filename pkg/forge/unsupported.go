package forge

import (
	"context"
	"io"
)

// Unsupported implements every operation by failing with ErrUnsupported.
// Forges embed it and override what their API offers.
type Unsupported struct{}

func (Unsupported) GetIssues(context.Context, string, string, IssueFilter, int) ([]Issue, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetIssue(context.Context, string, string, int) (*Issue, error) {
	return nil, ErrUnsupported
}

func (Unsupported) CreateIssue(context.Context, SubmitIssueOptions) (*Issue, error) {
	return nil, ErrUnsupported
}

func (Unsupported) IssueClose(context.Context, string, string, int) error { return ErrUnsupported }

func (Unsupported) IssueReopen(context.Context, string, string, int) error { return ErrUnsupported }

func (Unsupported) IssueAssign(context.Context, string, string, int, string) error {
	return ErrUnsupported
}

func (Unsupported) IssueAddLabels(context.Context, string, string, int, []string) error {
	return ErrUnsupported
}

func (Unsupported) IssueRemoveLabels(context.Context, string, string, int, []string) error {
	return ErrUnsupported
}

func (Unsupported) IssueSetMilestone(context.Context, string, string, int, int) error {
	return ErrUnsupported
}

func (Unsupported) IssueClearMilestone(context.Context, string, string, int) error {
	return ErrUnsupported
}

func (Unsupported) IssueSetTitle(context.Context, string, string, int, string) error {
	return ErrUnsupported
}

func (Unsupported) GetIssueAttachments(context.Context, string, string, int, int) ([]Attachment, error) {
	return nil, ErrUnsupported
}

func (Unsupported) AttachmentGetContent(context.Context, int64, io.Writer) error {
	return ErrUnsupported
}

func (Unsupported) GetIssueComments(context.Context, string, string, int, int) ([]Comment, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetPullComments(context.Context, string, string, int, int) ([]Comment, error) {
	return nil, ErrUnsupported
}

func (Unsupported) SubmitComment(context.Context, SubmitCommentOptions) error { return ErrUnsupported }

func (Unsupported) GetPulls(context.Context, string, string, PullFilter, int) ([]Pull, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetPull(context.Context, string, string, int) (*Pull, error) {
	return nil, ErrUnsupported
}

func (Unsupported) CreatePull(context.Context, SubmitPullOptions) error { return ErrUnsupported }

func (Unsupported) PullMerge(context.Context, string, string, int, MergeFlags) error {
	return ErrUnsupported
}

func (Unsupported) PullClose(context.Context, string, string, int) error { return ErrUnsupported }

func (Unsupported) PullReopen(context.Context, string, string, int) error { return ErrUnsupported }

func (Unsupported) GetPullCommits(context.Context, string, string, int, int) ([]Commit, error) {
	return nil, ErrUnsupported
}

func (Unsupported) PullGetDiff(context.Context, string, string, int, io.Writer) error {
	return ErrUnsupported
}

func (Unsupported) PullAddLabels(context.Context, string, string, int, []string) error {
	return ErrUnsupported
}

func (Unsupported) PullRemoveLabels(context.Context, string, string, int, []string) error {
	return ErrUnsupported
}

func (Unsupported) PullSetMilestone(context.Context, string, string, int, int) error {
	return ErrUnsupported
}

func (Unsupported) PullClearMilestone(context.Context, string, string, int) error {
	return ErrUnsupported
}

func (Unsupported) PullSetTitle(context.Context, string, string, int, string) error {
	return ErrUnsupported
}

func (Unsupported) PullAddReviewer(context.Context, string, string, int, string) error {
	return ErrUnsupported
}

func (Unsupported) GetLabels(context.Context, string, string, int) ([]Label, error) {
	return nil, ErrUnsupported
}

func (Unsupported) CreateLabel(context.Context, string, string, Label) (*Label, error) {
	return nil, ErrUnsupported
}

func (Unsupported) DeleteLabel(context.Context, string, string, string) error { return ErrUnsupported }

func (Unsupported) GetMilestones(context.Context, string, string, int) ([]Milestone, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetMilestone(context.Context, string, string, int) (*Milestone, error) {
	return nil, ErrUnsupported
}

func (Unsupported) CreateMilestone(context.Context, CreateMilestoneOptions) error {
	return ErrUnsupported
}

func (Unsupported) DeleteMilestone(context.Context, string, string, int) error {
	return ErrUnsupported
}

func (Unsupported) MilestoneSetDueDate(context.Context, string, string, int, string) error {
	return ErrUnsupported
}

func (Unsupported) GetMilestoneIssues(context.Context, string, string, int, int) ([]Issue, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetReleases(context.Context, string, string, int) ([]Release, error) {
	return nil, ErrUnsupported
}

func (Unsupported) CreateRelease(context.Context, CreateReleaseOptions) (*Release, error) {
	return nil, ErrUnsupported
}

func (Unsupported) DeleteRelease(context.Context, string, string, string) error {
	return ErrUnsupported
}

func (Unsupported) GetForks(context.Context, string, string, int) ([]Fork, error) {
	return nil, ErrUnsupported
}

func (Unsupported) ForkCreate(context.Context, string, string, string) error { return ErrUnsupported }

func (Unsupported) GetRepos(context.Context, string, int) ([]Repo, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetOwnRepos(context.Context, int) ([]Repo, error) {
	return nil, ErrUnsupported
}

func (Unsupported) RepoCreate(context.Context, RepoCreateOptions) (*Repo, error) {
	return nil, ErrUnsupported
}

func (Unsupported) RepoDelete(context.Context, string, string) error { return ErrUnsupported }

func (Unsupported) RepoSetVisibility(context.Context, string, string, Visibility) error {
	return ErrUnsupported
}

func (Unsupported) GetNotifications(context.Context, int) ([]Notification, error) {
	return nil, ErrUnsupported
}

func (Unsupported) NotificationMarkAsRead(context.Context, string) error { return ErrUnsupported }

func (Unsupported) GetSSHKeys(context.Context, int) ([]SSHKey, error) {
	return nil, ErrUnsupported
}

func (Unsupported) AddSSHKey(context.Context, string, string) (*SSHKey, error) {
	return nil, ErrUnsupported
}

func (Unsupported) DeleteSSHKey(context.Context, int64) error { return ErrUnsupported }

func (Unsupported) GetSnippets(context.Context, int) ([]Snippet, error) {
	return nil, ErrUnsupported
}

func (Unsupported) SnippetDelete(context.Context, string) error { return ErrUnsupported }

func (Unsupported) SnippetGetContent(context.Context, string, io.Writer) error {
	return ErrUnsupported
}

func (Unsupported) GetPipelines(context.Context, string, string, int) ([]Pipeline, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetPipelineJobs(context.Context, string, string, int64, int) ([]Job, error) {
	return nil, ErrUnsupported
}

func (Unsupported) JobGetLog(context.Context, string, string, int64, io.Writer) error {
	return ErrUnsupported
}

func (Unsupported) JobCancel(context.Context, string, string, int64) error { return ErrUnsupported }

func (Unsupported) JobRetry(context.Context, string, string, int64) error { return ErrUnsupported }
