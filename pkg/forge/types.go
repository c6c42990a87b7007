package forge

// Issue is a bug report or feature request.
type Issue struct {
	Number    int
	ID        int64
	Title     string
	State     string
	Author    string
	Body      string
	URL       string
	CreatedAt string
	Comments  int
	Locked    bool
	Labels    []string
	Assignees []string
	Milestone string
	// IsPull is set when the issue listing also returned a pull request.
	IsPull bool
	// Product and Component are only filled by bug trackers.
	Product   string
	Component string
}

// Pull is a pull request (merge request on GitLab).
type Pull struct {
	Number       int
	ID           int64
	Title        string
	State        string
	Author       string
	Body         string
	URL          string
	CreatedAt    string
	HeadLabel    string
	BaseLabel    string
	HeadSHA      string
	Milestone    string
	Coverage     string
	Merged       bool
	Mergeable    bool
	Draft        bool
	Comments     int
	Additions    int
	Deletions    int
	Commits      int
	ChangedFiles int
	Labels       []string
	Reviewers    []string
}

// Commit is a single commit of a pull request.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Email   string
	Date    string
}

// Label is a repository label. Colour is 0xRRGGBB.
type Label struct {
	ID          int64
	Name        string
	Description string
	Colour      uint32
}

// Milestone groups issues and pulls under a common goal.
type Milestone struct {
	ID           int
	Title        string
	State        string
	Description  string
	CreatedAt    string
	UpdatedAt    string
	DueDate      string
	Expired      bool
	OpenIssues   int
	ClosedIssues int
}

// Attachment is a file attached to an issue.
type Attachment struct {
	ID          int64
	FileName    string
	Summary     string
	Author      string
	ContentType string
	CreatedAt   string
	IsObsolete  bool
}

// Comment is a message on an issue or pull.
type Comment struct {
	ID     int64
	Author string
	Date   string
	Body   string
}

// Release is a tagged release.
type Release struct {
	ID         string
	Name       string
	TagName    string
	Body       string
	Author     string
	Date       string
	TarballURL string
	Draft      bool
	Prerelease bool
	Assets     []ReleaseAsset
}

// ReleaseAsset is a downloadable file of a release.
type ReleaseAsset struct {
	Name string
	URL  string
}

// Repo is a repository.
type Repo struct {
	ID         int64
	Name       string
	FullName   string
	Owner      string
	Date       string
	Visibility string
	IsFork     bool
}

// SSHKey is a public key of the authenticated user.
type SSHKey struct {
	ID        int64
	Title     string
	Key       string
	CreatedAt string
}

// Notification is an unread item in the user's inbox.
type Notification struct {
	ID         string
	Title      string
	Reason     string
	Date       string
	Type       string
	Repository string
}

// Fork is a fork of a repository.
type Fork struct {
	FullName string
	Owner    string
	Date     string
	Forks    int
}

// Snippet is a gist on GitHub or a snippet on GitLab.
type Snippet struct {
	ID    string
	Title string
	Owner string
	Date  string
	URL   string
	// RawURL points to the content of single-file snippets.
	RawURL string
	Files  []SnippetFile
}

// SnippetFile is one file of a multi-file snippet.
type SnippetFile struct {
	FileName string
	Language string
	Type     string
	URL      string
	Size     int
}

// Pipeline is a CI pipeline run.
type Pipeline struct {
	ID        int64
	Status    string
	Ref       string
	SHA       string
	Source    string
	CreatedAt string
	UpdatedAt string
}

// Job is one job of a pipeline.
type Job struct {
	ID         int64
	Name       string
	Status     string
	Stage      string
	Ref        string
	Runner     string
	CreatedAt  string
	StartedAt  string
	FinishedAt string
	Duration   float64
}

// IssueFilter narrows an issue listing.
type IssueFilter struct {
	// All includes closed issues.
	All       bool
	Author    string
	Label     string
	Milestone string
	Search    string
}

// PullFilter narrows a pull listing.
type PullFilter struct {
	// All includes closed and merged pulls.
	All       bool
	Author    string
	Label     string
	Milestone string
	Search    string
}

// SubmitIssueOptions describes a new issue.
type SubmitIssueOptions struct {
	Owner string
	Repo  string
	Title string
	Body  string
}

// CommentTarget tells whether a comment goes to an issue or a pull.
type CommentTarget uint8

// Comment targets.
const (
	CommentOnIssue CommentTarget = iota
	CommentOnPull
)

// SubmitCommentOptions describes a new comment.
type SubmitCommentOptions struct {
	Owner  string
	Repo   string
	Target CommentTarget
	Number int
	Body   string
}

// SubmitPullOptions describes a new pull request.
type SubmitPullOptions struct {
	Owner     string
	Repo      string
	From      string
	To        string
	Title     string
	Body      string
	Draft     bool
	Labels    []string
	Reviewers []string
}

// MergeFlags alter how a pull is merged.
type MergeFlags uint8

// Merge flags.
const (
	MergeSquash MergeFlags = 1 << iota
	MergeDeleteHead
)

// Has reports whether all bits of f are set.
func (m MergeFlags) Has(f MergeFlags) bool {
	return m&f == f
}

// CreateMilestoneOptions describes a new milestone.
type CreateMilestoneOptions struct {
	Owner       string
	Repo        string
	Title       string
	Description string
}

// CreateReleaseOptions describes a new release.
type CreateReleaseOptions struct {
	Owner      string
	Repo       string
	TagName    string
	Name       string
	Body       string
	CommitIsh  string
	Draft      bool
	Prerelease bool
}

// RepoCreateOptions describes a new repository owned by the user.
type RepoCreateOptions struct {
	Name        string
	Description string
	Private     bool
}

// Visibility of a repository.
type Visibility string

// Visibilities.
const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityInternal Visibility = "internal"
)
