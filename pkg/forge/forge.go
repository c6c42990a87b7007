// Package forge defines one vocabulary over the APIs of GitHub, GitLab, Gitea
// and Bugzilla, and the session through which operations are dispatched.
package forge

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Kind identifies a forge implementation.
type Kind int

// Known forge kinds.
const (
	KindGitHub Kind = iota + 1
	KindGitLab
	KindGitea
	KindBugzilla
)

var kindNames = map[Kind]string{
	KindGitHub:   "github",
	KindGitLab:   "gitlab",
	KindGitea:    "gitea",
	KindBugzilla: "bugzilla",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a forge name as written in configuration.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownForge, name)
}

// ErrorParser extracts a human readable message from the body of a failed
// request.
type ErrorParser func(body []byte) (string, error)

// Descriptor is the static, read-only description of a forge kind.
type Descriptor struct {
	Kind   Kind
	Name   string
	Quirks Quirks
	// ParseError reads the forge's error envelope. Nil means the forge sends
	// nothing worth reading.
	ParseError ErrorParser
}

// Forge is implemented by one type per forge. Forges embed Unsupported for
// the operation families they lack; the matching quirks keep the session from
// ever calling them.
type Forge interface {
	Descriptor() *Descriptor

	Issues
	Comments
	Pulls
	Labels
	Milestones
	Releases
	Forks
	Repos
	Notifications
	SSHKeys
	Snippets
	Pipelines
}

// Issues covers issue listing, reading and editing.
type Issues interface {
	GetIssues(ctx context.Context, owner, repo string, filter IssueFilter, max int) ([]Issue, error)
	GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error)
	CreateIssue(ctx context.Context, opts SubmitIssueOptions) (*Issue, error)
	IssueClose(ctx context.Context, owner, repo string, number int) error
	IssueReopen(ctx context.Context, owner, repo string, number int) error
	IssueAssign(ctx context.Context, owner, repo string, number int, assignee string) error
	IssueAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error
	IssueRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error
	IssueSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error
	IssueClearMilestone(ctx context.Context, owner, repo string, number int) error
	IssueSetTitle(ctx context.Context, owner, repo string, number int, title string) error
	GetIssueAttachments(ctx context.Context, owner, repo string, number, max int) ([]Attachment, error)
	AttachmentGetContent(ctx context.Context, id int64, w io.Writer) error
}

// Comments covers the discussion on issues and pulls.
type Comments interface {
	GetIssueComments(ctx context.Context, owner, repo string, number, max int) ([]Comment, error)
	GetPullComments(ctx context.Context, owner, repo string, number, max int) ([]Comment, error)
	SubmitComment(ctx context.Context, opts SubmitCommentOptions) error
}

// Pulls covers pull requests.
type Pulls interface {
	GetPulls(ctx context.Context, owner, repo string, filter PullFilter, max int) ([]Pull, error)
	GetPull(ctx context.Context, owner, repo string, number int) (*Pull, error)
	CreatePull(ctx context.Context, opts SubmitPullOptions) error
	PullMerge(ctx context.Context, owner, repo string, number int, flags MergeFlags) error
	PullClose(ctx context.Context, owner, repo string, number int) error
	PullReopen(ctx context.Context, owner, repo string, number int) error
	GetPullCommits(ctx context.Context, owner, repo string, number, max int) ([]Commit, error)
	PullGetDiff(ctx context.Context, owner, repo string, number int, w io.Writer) error
	PullAddLabels(ctx context.Context, owner, repo string, number int, labels []string) error
	PullRemoveLabels(ctx context.Context, owner, repo string, number int, labels []string) error
	PullSetMilestone(ctx context.Context, owner, repo string, number, milestone int) error
	PullClearMilestone(ctx context.Context, owner, repo string, number int) error
	PullSetTitle(ctx context.Context, owner, repo string, number int, title string) error
	PullAddReviewer(ctx context.Context, owner, repo string, number int, username string) error
}

// Labels covers repository labels.
type Labels interface {
	GetLabels(ctx context.Context, owner, repo string, max int) ([]Label, error)
	CreateLabel(ctx context.Context, owner, repo string, label Label) (*Label, error)
	DeleteLabel(ctx context.Context, owner, repo, name string) error
}

// Milestones covers milestones.
type Milestones interface {
	GetMilestones(ctx context.Context, owner, repo string, max int) ([]Milestone, error)
	GetMilestone(ctx context.Context, owner, repo string, id int) (*Milestone, error)
	CreateMilestone(ctx context.Context, opts CreateMilestoneOptions) error
	DeleteMilestone(ctx context.Context, owner, repo string, id int) error
	MilestoneSetDueDate(ctx context.Context, owner, repo string, id int, date string) error
	GetMilestoneIssues(ctx context.Context, owner, repo string, id, max int) ([]Issue, error)
}

// Releases covers releases.
type Releases interface {
	GetReleases(ctx context.Context, owner, repo string, max int) ([]Release, error)
	CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*Release, error)
	DeleteRelease(ctx context.Context, owner, repo, id string) error
}

// Forks covers forks.
type Forks interface {
	GetForks(ctx context.Context, owner, repo string, max int) ([]Fork, error)
	// ForkCreate forks owner/repo into the user namespace, or into the
	// organisation given by into.
	ForkCreate(ctx context.Context, owner, repo, into string) error
}

// Repos covers repositories.
type Repos interface {
	GetRepos(ctx context.Context, owner string, max int) ([]Repo, error)
	GetOwnRepos(ctx context.Context, max int) ([]Repo, error)
	RepoCreate(ctx context.Context, opts RepoCreateOptions) (*Repo, error)
	RepoDelete(ctx context.Context, owner, repo string) error
	RepoSetVisibility(ctx context.Context, owner, repo string, vis Visibility) error
}

// Notifications covers the user's inbox.
type Notifications interface {
	GetNotifications(ctx context.Context, max int) ([]Notification, error)
	NotificationMarkAsRead(ctx context.Context, id string) error
}

// SSHKeys covers the user's public keys.
type SSHKeys interface {
	GetSSHKeys(ctx context.Context, max int) ([]SSHKey, error)
	AddSSHKey(ctx context.Context, title, key string) (*SSHKey, error)
	DeleteSSHKey(ctx context.Context, id int64) error
}

// Snippets covers gists and snippets.
type Snippets interface {
	GetSnippets(ctx context.Context, max int) ([]Snippet, error)
	SnippetDelete(ctx context.Context, id string) error
	SnippetGetContent(ctx context.Context, id string, w io.Writer) error
}

// Pipelines covers CI pipelines and their jobs.
type Pipelines interface {
	GetPipelines(ctx context.Context, owner, repo string, max int) ([]Pipeline, error)
	GetPipelineJobs(ctx context.Context, owner, repo string, pipeline int64, max int) ([]Job, error)
	JobGetLog(ctx context.Context, owner, repo string, job int64, w io.Writer) error
	JobCancel(ctx context.Context, owner, repo string, job int64) error
	JobRetry(ctx context.Context, owner, repo string, job int64) error
}
