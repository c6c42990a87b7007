package forge

import "fmt"

// Op names an abstract forge operation.
type Op int

// Operations, grouped like the Forge interface.
const (
	OpGetIssues Op = iota + 1
	OpGetIssue
	OpCreateIssue
	OpIssueClose
	OpIssueReopen
	OpIssueAssign
	OpIssueAddLabels
	OpIssueRemoveLabels
	OpIssueSetMilestone
	OpIssueClearMilestone
	OpIssueSetTitle
	OpGetIssueAttachments
	OpAttachmentGetContent

	OpGetIssueComments
	OpGetPullComments
	OpSubmitComment

	OpGetPulls
	OpGetPull
	OpCreatePull
	OpPullMerge
	OpPullClose
	OpPullReopen
	OpGetPullCommits
	OpPullGetDiff
	OpPullAddLabels
	OpPullRemoveLabels
	OpPullSetMilestone
	OpPullClearMilestone
	OpPullSetTitle
	OpPullAddReviewer

	OpGetLabels
	OpCreateLabel
	OpDeleteLabel

	OpGetMilestones
	OpGetMilestone
	OpCreateMilestone
	OpDeleteMilestone
	OpMilestoneSetDueDate
	OpGetMilestoneIssues

	OpGetReleases
	OpCreateRelease
	OpDeleteRelease

	OpGetForks
	OpForkCreate

	OpGetRepos
	OpGetOwnRepos
	OpRepoCreate
	OpRepoDelete
	OpRepoSetVisibility

	OpGetNotifications
	OpNotificationMarkAsRead

	OpGetSSHKeys
	OpAddSSHKey
	OpDeleteSSHKey

	OpGetSnippets
	OpSnippetDelete
	OpSnippetGetContent

	OpGetPipelines
	OpGetPipelineJobs
	OpJobGetLog
	OpJobCancel
	OpJobRetry
)

type opInfo struct {
	name string
	// gate lists the quirks any one of which makes the op unavailable.
	gate Quirks
}

var ops = map[Op]opInfo{
	OpGetIssues:            {"get issues", 0},
	OpGetIssue:             {"get issue", 0},
	OpCreateIssue:          {"create issue", QuirkReadOnlyIssues},
	OpIssueClose:           {"close issue", QuirkReadOnlyIssues},
	OpIssueReopen:          {"reopen issue", QuirkReadOnlyIssues},
	OpIssueAssign:          {"assign issue", QuirkReadOnlyIssues},
	OpIssueAddLabels:       {"add issue labels", QuirkReadOnlyIssues | QuirkNoLabels},
	OpIssueRemoveLabels:    {"remove issue labels", QuirkReadOnlyIssues | QuirkNoLabels},
	OpIssueSetMilestone:    {"set issue milestone", QuirkReadOnlyIssues | QuirkNoMilestones},
	OpIssueClearMilestone:  {"clear issue milestone", QuirkReadOnlyIssues | QuirkNoMilestones},
	OpIssueSetTitle:        {"set issue title", QuirkReadOnlyIssues},
	OpGetIssueAttachments:  {"get issue attachments", QuirkNoAttachments},
	OpAttachmentGetContent: {"get attachment content", QuirkNoAttachments},

	OpGetIssueComments: {"get issue comments", 0},
	OpGetPullComments:  {"get pull comments", QuirkNoPulls},
	OpSubmitComment:    {"submit comment", QuirkReadOnlyIssues},

	OpGetPulls:           {"get pulls", QuirkNoPulls},
	OpGetPull:            {"get pull", QuirkNoPulls},
	OpCreatePull:         {"create pull", QuirkNoPulls},
	OpPullMerge:          {"merge pull", QuirkNoPulls},
	OpPullClose:          {"close pull", QuirkNoPulls},
	OpPullReopen:         {"reopen pull", QuirkNoPulls},
	OpGetPullCommits:     {"get pull commits", QuirkNoPulls},
	OpPullGetDiff:        {"get pull diff", QuirkNoPulls},
	OpPullAddLabels:      {"add pull labels", QuirkNoPulls | QuirkNoLabels},
	OpPullRemoveLabels:   {"remove pull labels", QuirkNoPulls | QuirkNoLabels},
	OpPullSetMilestone:   {"set pull milestone", QuirkNoPulls | QuirkNoMilestones},
	OpPullClearMilestone: {"clear pull milestone", QuirkNoPulls | QuirkNoMilestones},
	OpPullSetTitle:       {"set pull title", QuirkNoPulls},
	OpPullAddReviewer:    {"add pull reviewer", QuirkNoPulls},

	OpGetLabels:   {"get labels", QuirkNoLabels},
	OpCreateLabel: {"create label", QuirkNoLabels},
	OpDeleteLabel: {"delete label", QuirkNoLabels},

	OpGetMilestones:       {"get milestones", QuirkNoMilestones},
	OpGetMilestone:        {"get milestone", QuirkNoMilestones},
	OpCreateMilestone:     {"create milestone", QuirkNoMilestones},
	OpDeleteMilestone:     {"delete milestone", QuirkNoMilestones},
	OpMilestoneSetDueDate: {"set milestone due date", QuirkNoMilestones},
	OpGetMilestoneIssues:  {"get milestone issues", QuirkNoMilestones},

	OpGetReleases:   {"get releases", QuirkNoReleases},
	OpCreateRelease: {"create release", QuirkNoReleases},
	OpDeleteRelease: {"delete release", QuirkNoReleases},

	OpGetForks:   {"get forks", QuirkNoForks},
	OpForkCreate: {"create fork", QuirkNoForks},

	OpGetRepos:          {"get repos", QuirkNoRepos},
	OpGetOwnRepos:       {"get own repos", QuirkNoRepos},
	OpRepoCreate:        {"create repo", QuirkNoRepos},
	OpRepoDelete:        {"delete repo", QuirkNoRepos},
	OpRepoSetVisibility: {"set repo visibility", QuirkNoRepos},

	OpGetNotifications:       {"get notifications", QuirkNoNotifications},
	OpNotificationMarkAsRead: {"mark notification as read", QuirkNoNotifications},

	OpGetSSHKeys:   {"get ssh keys", QuirkNoSSHKeys},
	OpAddSSHKey:    {"add ssh key", QuirkNoSSHKeys},
	OpDeleteSSHKey: {"delete ssh key", QuirkNoSSHKeys},

	OpGetSnippets:       {"get snippets", QuirkNoSnippets},
	OpSnippetDelete:     {"delete snippet", QuirkNoSnippets},
	OpSnippetGetContent: {"get snippet content", QuirkNoSnippets},

	OpGetPipelines:    {"get pipelines", QuirkNoPipelines},
	OpGetPipelineJobs: {"get pipeline jobs", QuirkNoPipelines},
	OpJobGetLog:       {"get job log", QuirkNoPipelines},
	OpJobCancel:       {"cancel job", QuirkNoPipelines},
	OpJobRetry:        {"retry job", QuirkNoPipelines},
}

func (o Op) String() string {
	if info, ok := ops[o]; ok {
		return info.name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Gate returns the quirks that make o unavailable.
func (o Op) Gate() Quirks {
	return ops[o].gate
}

// Supported reports whether a forge with quirks q can perform o.
func (o Op) Supported(q Quirks) bool {
	return !q.Any(o.Gate())
}
