package forge

import "strings"

// Quirks is a bitmask of documented deviations of a forge from the common
// vocabulary.
type Quirks uint32

// Capability gaps. An operation gated by one of these is refused before any
// request is sent.
const (
	QuirkNoAttachments Quirks = 1 << iota
	QuirkNoPulls
	QuirkNoLabels
	QuirkNoMilestones
	QuirkNoReleases
	QuirkNoForks
	QuirkNoRepos
	QuirkNoNotifications
	QuirkNoSSHKeys
	QuirkNoSnippets
	QuirkNoPipelines
	QuirkReadOnlyIssues

	// Behavioural quirks, consumed by forge code and rendering.

	// QuirkIssuesIncludePulls marks issue listings that also return pulls.
	QuirkIssuesIncludePulls
	// QuirkNoPullStats marks pull listings without additions and deletions.
	QuirkNoPullStats
	QuirkNoPullCoverage
	QuirkNoMilestoneExpired
	// QuirkIssueProductComponent means owner and repo name a product and a
	// component rather than a repository.
	QuirkIssueProductComponent
)

var quirkNames = []struct {
	q    Quirks
	name string
}{
	{QuirkNoAttachments, "no-attachments"},
	{QuirkNoPulls, "no-pulls"},
	{QuirkNoLabels, "no-labels"},
	{QuirkNoMilestones, "no-milestones"},
	{QuirkNoReleases, "no-releases"},
	{QuirkNoForks, "no-forks"},
	{QuirkNoRepos, "no-repos"},
	{QuirkNoNotifications, "no-notifications"},
	{QuirkNoSSHKeys, "no-sshkeys"},
	{QuirkNoSnippets, "no-snippets"},
	{QuirkNoPipelines, "no-pipelines"},
	{QuirkReadOnlyIssues, "read-only-issues"},
	{QuirkIssuesIncludePulls, "issues-include-pulls"},
	{QuirkNoPullStats, "no-pull-stats"},
	{QuirkNoPullCoverage, "no-pull-coverage"},
	{QuirkNoMilestoneExpired, "no-milestone-expired"},
	{QuirkIssueProductComponent, "issue-product-component"},
}

// Has reports whether every bit of want is set.
func (q Quirks) Has(want Quirks) bool {
	return q&want == want
}

// Any reports whether at least one bit of want is set.
func (q Quirks) Any(want Quirks) bool {
	return q&want != 0
}

func (q Quirks) String() string {
	var names []string
	for _, n := range quirkNames {
		if q.Has(n.q) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
