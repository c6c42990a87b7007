package github

import (
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
)

// Record schemas shared with forges that mirror GitHub's API.
var (
	IssueSchema = schema.NewObject("issue",
		schema.Int("number", func(i *forge.Issue) *int { return &i.Number }),
		schema.Int64("id", func(i *forge.Issue) *int64 { return &i.ID }),
		schema.String("title", func(i *forge.Issue) *string { return &i.Title }),
		schema.String("state", func(i *forge.Issue) *string { return &i.State }),
		schema.User("user", func(i *forge.Issue) *string { return &i.Author }),
		schema.String("body", func(i *forge.Issue) *string { return &i.Body }),
		schema.String("html_url", func(i *forge.Issue) *string { return &i.URL }),
		schema.String("created_at", func(i *forge.Issue) *string { return &i.CreatedAt }),
		schema.Int("comments", func(i *forge.Issue) *int { return &i.Comments }),
		schema.Bool("locked", func(i *forge.Issue) *bool { return &i.Locked }),
		schema.List("labels", jsonstream.GetLabel, func(i *forge.Issue) *[]string { return &i.Labels }),
		schema.List("assignees", jsonstream.GetUser, func(i *forge.Issue) *[]string { return &i.Assignees }),
		schema.Flatten("milestone", schema.NewObject("milestone",
			schema.String("title", func(i *forge.Issue) *string { return &i.Milestone }),
		)),
		schema.Present("pull_request", func(i *forge.Issue) *bool { return &i.IsPull }),
	)

	PullSchema = schema.NewObject("pull",
		schema.Int("number", func(p *forge.Pull) *int { return &p.Number }),
		schema.Int64("id", func(p *forge.Pull) *int64 { return &p.ID }),
		schema.String("title", func(p *forge.Pull) *string { return &p.Title }),
		schema.String("state", func(p *forge.Pull) *string { return &p.State }),
		schema.User("user", func(p *forge.Pull) *string { return &p.Author }),
		schema.String("body", func(p *forge.Pull) *string { return &p.Body }),
		schema.String("html_url", func(p *forge.Pull) *string { return &p.URL }),
		schema.String("created_at", func(p *forge.Pull) *string { return &p.CreatedAt }),
		schema.Bool("merged", func(p *forge.Pull) *bool { return &p.Merged }),
		schema.Bool("mergeable", func(p *forge.Pull) *bool { return &p.Mergeable }),
		schema.Bool("draft", func(p *forge.Pull) *bool { return &p.Draft }),
		schema.Int("comments", func(p *forge.Pull) *int { return &p.Comments }),
		schema.Int("additions", func(p *forge.Pull) *int { return &p.Additions }),
		schema.Int("deletions", func(p *forge.Pull) *int { return &p.Deletions }),
		schema.Int("commits", func(p *forge.Pull) *int { return &p.Commits }),
		schema.Int("changed_files", func(p *forge.Pull) *int { return &p.ChangedFiles }),
		schema.List("labels", jsonstream.GetLabel, func(p *forge.Pull) *[]string { return &p.Labels }),
		schema.List("requested_reviewers", jsonstream.GetUser, func(p *forge.Pull) *[]string { return &p.Reviewers }),
		schema.Flatten("milestone", schema.NewObject("milestone",
			schema.String("title", func(p *forge.Pull) *string { return &p.Milestone }),
		)),
		schema.Flatten("head", schema.NewObject("head",
			schema.String("label", func(p *forge.Pull) *string { return &p.HeadLabel }),
			schema.String("sha", func(p *forge.Pull) *string { return &p.HeadSHA }),
		)),
		schema.Flatten("base", schema.NewObject("base",
			schema.String("label", func(p *forge.Pull) *string { return &p.BaseLabel }),
		)),
	)

	CommitSchema = schema.NewObject("commit",
		schema.String("sha", func(c *forge.Commit) *string { return &c.SHA }),
		schema.Flatten("commit", schema.NewObject("commit detail",
			schema.String("message", func(c *forge.Commit) *string { return &c.Message }),
			schema.Flatten("author", schema.NewObject("commit author",
				schema.String("name", func(c *forge.Commit) *string { return &c.Author }),
				schema.String("email", func(c *forge.Commit) *string { return &c.Email }),
				schema.String("date", func(c *forge.Commit) *string { return &c.Date }),
			)),
		)),
	)

	LabelSchema = schema.NewObject("label",
		schema.Int64("id", func(l *forge.Label) *int64 { return &l.ID }),
		schema.String("name", func(l *forge.Label) *string { return &l.Name }),
		schema.String("description", func(l *forge.Label) *string { return &l.Description }),
		schema.Value("color", jsonstream.GetGitHubColour, func(l *forge.Label) *uint32 { return &l.Colour }),
	)

	MilestoneSchema = schema.NewObject("milestone",
		schema.Int("number", func(m *forge.Milestone) *int { return &m.ID }),
		schema.String("title", func(m *forge.Milestone) *string { return &m.Title }),
		schema.String("state", func(m *forge.Milestone) *string { return &m.State }),
		schema.String("description", func(m *forge.Milestone) *string { return &m.Description }),
		schema.String("created_at", func(m *forge.Milestone) *string { return &m.CreatedAt }),
		schema.String("updated_at", func(m *forge.Milestone) *string { return &m.UpdatedAt }),
		schema.String("due_on", func(m *forge.Milestone) *string { return &m.DueDate }),
		schema.Int("open_issues", func(m *forge.Milestone) *int { return &m.OpenIssues }),
		schema.Int("closed_issues", func(m *forge.Milestone) *int { return &m.ClosedIssues }),
	)

	CommentSchema = schema.NewObject("comment",
		schema.Int64("id", func(c *forge.Comment) *int64 { return &c.ID }),
		schema.User("user", func(c *forge.Comment) *string { return &c.Author }),
		schema.String("created_at", func(c *forge.Comment) *string { return &c.Date }),
		schema.String("body", func(c *forge.Comment) *string { return &c.Body }),
	)

	ReleaseSchema = schema.NewObject("release",
		schema.Value("id", jsonstream.GetID, func(r *forge.Release) *string { return &r.ID }),
		schema.String("name", func(r *forge.Release) *string { return &r.Name }),
		schema.String("tag_name", func(r *forge.Release) *string { return &r.TagName }),
		schema.String("body", func(r *forge.Release) *string { return &r.Body }),
		schema.User("author", func(r *forge.Release) *string { return &r.Author }),
		schema.String("created_at", func(r *forge.Release) *string { return &r.Date }),
		schema.String("tarball_url", func(r *forge.Release) *string { return &r.TarballURL }),
		schema.Bool("draft", func(r *forge.Release) *bool { return &r.Draft }),
		schema.Bool("prerelease", func(r *forge.Release) *bool { return &r.Prerelease }),
		schema.ObjectList("assets", schema.NewObject("asset",
			schema.String("name", func(a *forge.ReleaseAsset) *string { return &a.Name }),
			schema.String("browser_download_url", func(a *forge.ReleaseAsset) *string { return &a.URL }),
		), func(r *forge.Release) *[]forge.ReleaseAsset { return &r.Assets }),
	)

	RepoSchema = schema.NewObject("repo",
		schema.Int64("id", func(r *forge.Repo) *int64 { return &r.ID }),
		schema.String("name", func(r *forge.Repo) *string { return &r.Name }),
		schema.String("full_name", func(r *forge.Repo) *string { return &r.FullName }),
		schema.User("owner", func(r *forge.Repo) *string { return &r.Owner }),
		schema.String("created_at", func(r *forge.Repo) *string { return &r.Date }),
		schema.Custom("private", func(s *jsonstream.Stream, r *forge.Repo) error {
			private, err := jsonstream.GetBool(s)
			if err != nil {
				return err
			}
			r.Visibility = string(forge.VisibilityPublic)
			if private {
				r.Visibility = string(forge.VisibilityPrivate)
			}
			return nil
		}),
		schema.Bool("fork", func(r *forge.Repo) *bool { return &r.IsFork }),
	)

	ForkSchema = schema.NewObject("fork",
		schema.String("full_name", func(f *forge.Fork) *string { return &f.FullName }),
		schema.User("owner", func(f *forge.Fork) *string { return &f.Owner }),
		schema.String("created_at", func(f *forge.Fork) *string { return &f.Date }),
		schema.Int("forks_count", func(f *forge.Fork) *int { return &f.Forks }),
	)

	SSHKeySchema = schema.NewObject("ssh key",
		schema.Int64("id", func(k *forge.SSHKey) *int64 { return &k.ID }),
		schema.String("title", func(k *forge.SSHKey) *string { return &k.Title }),
		schema.String("key", func(k *forge.SSHKey) *string { return &k.Key }),
		schema.String("created_at", func(k *forge.SSHKey) *string { return &k.CreatedAt }),
	)

	NotificationSchema = schema.NewObject("notification",
		schema.Value("id", jsonstream.GetID, func(n *forge.Notification) *string { return &n.ID }),
		schema.String("reason", func(n *forge.Notification) *string { return &n.Reason }),
		schema.String("updated_at", func(n *forge.Notification) *string { return &n.Date }),
		schema.Flatten("subject", schema.NewObject("subject",
			schema.String("title", func(n *forge.Notification) *string { return &n.Title }),
			schema.String("type", func(n *forge.Notification) *string { return &n.Type }),
		)),
		schema.Flatten("repository", schema.NewObject("repository",
			schema.String("full_name", func(n *forge.Notification) *string { return &n.Repository }),
		)),
	)
)

var snippetFileSchema = schema.NewObject("gist file",
	schema.String("filename", func(f *forge.SnippetFile) *string { return &f.FileName }),
	schema.String("language", func(f *forge.SnippetFile) *string { return &f.Language }),
	schema.String("type", func(f *forge.SnippetFile) *string { return &f.Type }),
	schema.String("raw_url", func(f *forge.SnippetFile) *string { return &f.URL }),
	schema.Int("size", func(f *forge.SnippetFile) *int { return &f.Size }),
)

// gistSchema maps gists to snippets. The files member is an object keyed by
// file name rather than an array.
var gistSchema = schema.NewObject("gist",
	schema.String("id", func(g *forge.Snippet) *string { return &g.ID }),
	schema.String("description", func(g *forge.Snippet) *string { return &g.Title }),
	schema.User("owner", func(g *forge.Snippet) *string { return &g.Owner }),
	schema.String("created_at", func(g *forge.Snippet) *string { return &g.Date }),
	schema.String("html_url", func(g *forge.Snippet) *string { return &g.URL }),
	schema.Custom("files", func(s *jsonstream.Stream, g *forge.Snippet) error {
		err := jsonstream.ForEachMember(s, func(name string) error {
			var f forge.SnippetFile
			if err := snippetFileSchema.Parse(s, &f); err != nil {
				return err
			}
			if f.FileName == "" {
				f.FileName = name
			}
			g.Files = append(g.Files, f)
			return nil
		})
		if err != nil {
			return err
		}
		if len(g.Files) == 1 {
			g.RawURL = g.Files[0].URL
		}
		return nil
	}),
)
