// Package format renders forge items for the terminal.
package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lerenn/gcli/pkg/forge"
)

const titleWidth = 60

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Truncate cuts s to n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Colour renders a 0xRRGGBB value as "#rrggbb".
func Colour(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}

// Date keeps the day part of an ISO 8601 timestamp.
func Date(s string) string {
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		return s[:10]
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Issues prints one line per issue.
func Issues(w io.Writer, issues []forge.Issue) error {
	tw := table(w)
	fmt.Fprintln(tw, "NUMBER\tSTATE\tAUTHOR\tCREATED\tTITLE")
	for _, i := range issues {
		title := i.Title
		if i.IsPull {
			title = "[PR] " + title
		}
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n", i.Number, i.State, i.Author, Date(i.CreatedAt), Truncate(title, titleWidth))
	}
	return tw.Flush()
}

// Issue prints the details of an issue.
func Issue(w io.Writer, i *forge.Issue) error {
	tw := table(w)
	fmt.Fprintf(tw, "NUMBER\t#%d\n", i.Number)
	fmt.Fprintf(tw, "TITLE\t%s\n", i.Title)
	fmt.Fprintf(tw, "STATE\t%s\n", i.State)
	fmt.Fprintf(tw, "AUTHOR\t%s\n", i.Author)
	fmt.Fprintf(tw, "CREATED\t%s\n", i.CreatedAt)
	if i.Product != "" {
		fmt.Fprintf(tw, "PRODUCT\t%s / %s\n", i.Product, i.Component)
	}
	fmt.Fprintf(tw, "COMMENTS\t%d\n", i.Comments)
	fmt.Fprintf(tw, "LOCKED\t%s\n", yesNo(i.Locked))
	if i.Milestone != "" {
		fmt.Fprintf(tw, "MILESTONE\t%s\n", i.Milestone)
	}
	if len(i.Labels) > 0 {
		fmt.Fprintf(tw, "LABELS\t%s\n", strings.Join(i.Labels, ", "))
	}
	if len(i.Assignees) > 0 {
		fmt.Fprintf(tw, "ASSIGNEES\t%s\n", strings.Join(i.Assignees, ", "))
	}
	if i.URL != "" {
		fmt.Fprintf(tw, "URL\t%s\n", i.URL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return body(w, i.Body)
}

// Pulls prints one line per pull.
func Pulls(w io.Writer, pulls []forge.Pull) error {
	tw := table(w)
	fmt.Fprintln(tw, "NUMBER\tSTATE\tAUTHOR\tCREATED\tTITLE")
	for _, p := range pulls {
		state := p.State
		if p.Draft {
			state += " (draft)"
		}
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n", p.Number, state, p.Author, Date(p.CreatedAt), Truncate(p.Title, titleWidth))
	}
	return tw.Flush()
}

// Pull prints the details of a pull.
func Pull(w io.Writer, p *forge.Pull) error {
	tw := table(w)
	fmt.Fprintf(tw, "NUMBER\t#%d\n", p.Number)
	fmt.Fprintf(tw, "TITLE\t%s\n", p.Title)
	fmt.Fprintf(tw, "STATE\t%s\n", p.State)
	fmt.Fprintf(tw, "AUTHOR\t%s\n", p.Author)
	fmt.Fprintf(tw, "CREATED\t%s\n", p.CreatedAt)
	fmt.Fprintf(tw, "HEAD\t%s (%s)\n", p.HeadLabel, p.HeadSHA)
	fmt.Fprintf(tw, "BASE\t%s\n", p.BaseLabel)
	fmt.Fprintf(tw, "DRAFT\t%s\n", yesNo(p.Draft))
	fmt.Fprintf(tw, "MERGED\t%s\n", yesNo(p.Merged))
	fmt.Fprintf(tw, "MERGEABLE\t%s\n", yesNo(p.Mergeable))
	fmt.Fprintf(tw, "CHANGES\t+%d -%d in %d files, %d commits\n", p.Additions, p.Deletions, p.ChangedFiles, p.Commits)
	fmt.Fprintf(tw, "COMMENTS\t%d\n", p.Comments)
	if p.Coverage != "" {
		fmt.Fprintf(tw, "COVERAGE\t%s%%\n", p.Coverage)
	}
	if p.Milestone != "" {
		fmt.Fprintf(tw, "MILESTONE\t%s\n", p.Milestone)
	}
	if len(p.Labels) > 0 {
		fmt.Fprintf(tw, "LABELS\t%s\n", strings.Join(p.Labels, ", "))
	}
	if len(p.Reviewers) > 0 {
		fmt.Fprintf(tw, "REVIEWERS\t%s\n", strings.Join(p.Reviewers, ", "))
	}
	if p.URL != "" {
		fmt.Fprintf(tw, "URL\t%s\n", p.URL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return body(w, p.Body)
}

func body(w io.Writer, b string) error {
	if strings.TrimSpace(b) == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", indent(b))
	return err
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + strings.TrimRight(l, "\r")
	}
	return strings.Join(lines, "\n")
}

// Comments prints a thread.
func Comments(w io.Writer, comments []forge.Comment) error {
	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "%s on %s:\n%s\n\n", c.Author, Date(c.Date), indent(c.Body)); err != nil {
			return err
		}
	}
	return nil
}

// Commits prints one line per commit.
func Commits(w io.Writer, commits []forge.Commit) error {
	tw := table(w)
	fmt.Fprintln(tw, "SHA\tAUTHOR\tDATE\tMESSAGE")
	for _, c := range commits {
		sha := c.SHA
		if len(sha) > 10 {
			sha = sha[:10]
		}
		subject, _, _ := strings.Cut(c.Message, "\n")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sha, c.Author, Date(c.Date), Truncate(subject, titleWidth))
	}
	return tw.Flush()
}

// Labels prints one line per label.
func Labels(w io.Writer, labels []forge.Label) error {
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tCOLOUR\tDESCRIPTION")
	for _, l := range labels {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Name, Colour(l.Colour), Truncate(l.Description, titleWidth))
	}
	return tw.Flush()
}

// Milestones prints one line per milestone.
func Milestones(w io.Writer, milestones []forge.Milestone) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tSTATE\tDUE\tOPEN\tCLOSED\tTITLE")
	for _, m := range milestones {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", m.ID, m.State, Date(m.DueDate), m.OpenIssues, m.ClosedIssues, Truncate(m.Title, titleWidth))
	}
	return tw.Flush()
}

// Milestone prints the details of a milestone.
func Milestone(w io.Writer, m *forge.Milestone) error {
	tw := table(w)
	fmt.Fprintf(tw, "ID\t%d\n", m.ID)
	fmt.Fprintf(tw, "TITLE\t%s\n", m.Title)
	fmt.Fprintf(tw, "STATE\t%s\n", m.State)
	fmt.Fprintf(tw, "CREATED\t%s\n", m.CreatedAt)
	fmt.Fprintf(tw, "UPDATED\t%s\n", m.UpdatedAt)
	if m.DueDate != "" {
		fmt.Fprintf(tw, "DUE\t%s\n", m.DueDate)
		fmt.Fprintf(tw, "EXPIRED\t%s\n", yesNo(m.Expired))
	}
	fmt.Fprintf(tw, "ISSUES\t%d open, %d closed\n", m.OpenIssues, m.ClosedIssues)
	if err := tw.Flush(); err != nil {
		return err
	}
	return body(w, m.Description)
}

// Releases prints one line per release.
func Releases(w io.Writer, releases []forge.Release) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tTAG\tDATE\tAUTHOR\tNAME")
	for _, r := range releases {
		name := r.Name
		switch {
		case r.Draft:
			name += " (draft)"
		case r.Prerelease:
			name += " (prerelease)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.TagName, Date(r.Date), r.Author, Truncate(name, titleWidth))
	}
	return tw.Flush()
}

// Forks prints one line per fork.
func Forks(w io.Writer, forks []forge.Fork) error {
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tOWNER\tDATE\tFORKS")
	for _, f := range forks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", f.FullName, f.Owner, Date(f.Date), f.Forks)
	}
	return tw.Flush()
}

// Repos prints one line per repository.
func Repos(w io.Writer, repos []forge.Repo) error {
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tVISIBILITY\tDATE\tFORK")
	for _, r := range repos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.FullName, r.Visibility, Date(r.Date), yesNo(r.IsFork))
	}
	return tw.Flush()
}

// Notifications prints one line per notification.
func Notifications(w io.Writer, notifications []forge.Notification) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tREPOSITORY\tTYPE\tREASON\tDATE\tTITLE")
	for _, n := range notifications {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", n.ID, n.Repository, n.Type, n.Reason, Date(n.Date), Truncate(n.Title, titleWidth))
	}
	return tw.Flush()
}

// SSHKeys prints one line per key.
func SSHKeys(w io.Writer, keys []forge.SSHKey) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tTITLE\tCREATED\tKEY")
	for _, k := range keys {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", k.ID, k.Title, Date(k.CreatedAt), Truncate(k.Key, 40))
	}
	return tw.Flush()
}

// Snippets prints one line per snippet.
func Snippets(w io.Writer, snippets []forge.Snippet) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tOWNER\tDATE\tFILES\tTITLE")
	for _, s := range snippets {
		files := len(s.Files)
		if files == 0 && s.RawURL != "" {
			files = 1
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Owner, Date(s.Date), files, Truncate(s.Title, titleWidth))
	}
	return tw.Flush()
}

// Pipelines prints one line per pipeline.
func Pipelines(w io.Writer, pipelines []forge.Pipeline) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tSTATUS\tREF\tSOURCE\tCREATED")
	for _, p := range pipelines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Status, p.Ref, p.Source, p.CreatedAt)
	}
	return tw.Flush()
}

// Jobs prints one line per job.
func Jobs(w io.Writer, jobs []forge.Job) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tSTATUS\tSTAGE\tNAME\tRUNNER\tDURATION")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.0fs\n", j.ID, j.Status, j.Stage, j.Name, j.Runner, j.Duration)
	}
	return tw.Flush()
}

// Attachments prints one line per attachment.
func Attachments(w io.Writer, attachments []forge.Attachment) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tFILE\tTYPE\tAUTHOR\tCREATED\tSUMMARY")
	for _, a := range attachments {
		file := a.FileName
		if a.IsObsolete {
			file += " (obsolete)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, file, a.ContentType, a.Author, Date(a.CreatedAt), Truncate(a.Summary, titleWidth))
	}
	return tw.Flush()
}
