package gitlab

import (
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
)

var issueSchema = schema.NewObject("issue",
	schema.Int("iid", func(i *forge.Issue) *int { return &i.Number }),
	schema.Int64("id", func(i *forge.Issue) *int64 { return &i.ID }),
	schema.String("title", func(i *forge.Issue) *string { return &i.Title }),
	schema.String("state", func(i *forge.Issue) *string { return &i.State }),
	schema.User("author", func(i *forge.Issue) *string { return &i.Author }),
	schema.String("description", func(i *forge.Issue) *string { return &i.Body }),
	schema.String("web_url", func(i *forge.Issue) *string { return &i.URL }),
	schema.String("created_at", func(i *forge.Issue) *string { return &i.CreatedAt }),
	schema.Int("user_notes_count", func(i *forge.Issue) *int { return &i.Comments }),
	schema.Bool("discussion_locked", func(i *forge.Issue) *bool { return &i.Locked }),
	schema.List("labels", jsonstream.GetLabel, func(i *forge.Issue) *[]string { return &i.Labels }),
	schema.List("assignees", jsonstream.GetUser, func(i *forge.Issue) *[]string { return &i.Assignees }),
	schema.Flatten("milestone", schema.NewObject("milestone",
		schema.String("title", func(i *forge.Issue) *string { return &i.Milestone }),
	)),
)

var mergeRequestSchema = schema.NewObject("merge request",
	schema.Int("iid", func(p *forge.Pull) *int { return &p.Number }),
	schema.Int64("id", func(p *forge.Pull) *int64 { return &p.ID }),
	schema.String("title", func(p *forge.Pull) *string { return &p.Title }),
	schema.Custom("state", func(s *jsonstream.Stream, p *forge.Pull) error {
		state, err := jsonstream.GetString(s)
		p.State = state
		p.Merged = state == "merged"
		return err
	}),
	schema.Custom("merge_status", func(s *jsonstream.Stream, p *forge.Pull) error {
		status, err := jsonstream.GetString(s)
		p.Mergeable = status == "can_be_merged"
		return err
	}),
	schema.User("author", func(p *forge.Pull) *string { return &p.Author }),
	schema.String("description", func(p *forge.Pull) *string { return &p.Body }),
	schema.String("web_url", func(p *forge.Pull) *string { return &p.URL }),
	schema.String("created_at", func(p *forge.Pull) *string { return &p.CreatedAt }),
	schema.String("source_branch", func(p *forge.Pull) *string { return &p.HeadLabel }),
	schema.String("target_branch", func(p *forge.Pull) *string { return &p.BaseLabel }),
	schema.String("sha", func(p *forge.Pull) *string { return &p.HeadSHA }),
	schema.Bool("draft", func(p *forge.Pull) *bool { return &p.Draft }),
	schema.Int("user_notes_count", func(p *forge.Pull) *int { return &p.Comments }),
	// A string, and "1000+" on huge merge requests.
	schema.Value("changes_count", jsonstream.GetParseInt, func(p *forge.Pull) *int { return &p.ChangedFiles }),
	schema.List("labels", jsonstream.GetLabel, func(p *forge.Pull) *[]string { return &p.Labels }),
	schema.List("reviewers", jsonstream.GetUser, func(p *forge.Pull) *[]string { return &p.Reviewers }),
	schema.Flatten("milestone", schema.NewObject("milestone",
		schema.String("title", func(p *forge.Pull) *string { return &p.Milestone }),
	)),
	schema.Flatten("head_pipeline", schema.NewObject("pipeline",
		schema.Value("coverage", jsonstream.GetID, func(p *forge.Pull) *string { return &p.Coverage }),
	)),
)

var commitSchema = schema.NewObject("commit",
	schema.String("id", func(c *forge.Commit) *string { return &c.SHA }),
	schema.String("message", func(c *forge.Commit) *string { return &c.Message }),
	schema.String("author_name", func(c *forge.Commit) *string { return &c.Author }),
	schema.String("author_email", func(c *forge.Commit) *string { return &c.Email }),
	schema.String("created_at", func(c *forge.Commit) *string { return &c.Date }),
)

var noteSchema = schema.NewObject("note",
	schema.Int64("id", func(c *forge.Comment) *int64 { return &c.ID }),
	schema.User("author", func(c *forge.Comment) *string { return &c.Author }),
	schema.String("created_at", func(c *forge.Comment) *string { return &c.Date }),
	schema.String("body", func(c *forge.Comment) *string { return &c.Body }),
)

var labelSchema = schema.NewObject("label",
	schema.Int64("id", func(l *forge.Label) *int64 { return &l.ID }),
	schema.String("name", func(l *forge.Label) *string { return &l.Name }),
	schema.String("description", func(l *forge.Label) *string { return &l.Description }),
	schema.Value("color", jsonstream.GetGitLabColour, func(l *forge.Label) *uint32 { return &l.Colour }),
)

var milestoneSchema = schema.NewObject("milestone",
	schema.Int("id", func(m *forge.Milestone) *int { return &m.ID }),
	schema.String("title", func(m *forge.Milestone) *string { return &m.Title }),
	schema.String("state", func(m *forge.Milestone) *string { return &m.State }),
	schema.String("description", func(m *forge.Milestone) *string { return &m.Description }),
	schema.String("created_at", func(m *forge.Milestone) *string { return &m.CreatedAt }),
	schema.String("updated_at", func(m *forge.Milestone) *string { return &m.UpdatedAt }),
	schema.String("due_date", func(m *forge.Milestone) *string { return &m.DueDate }),
	schema.Bool("expired", func(m *forge.Milestone) *bool { return &m.Expired }),
)

var releaseSchema = schema.NewObject("release",
	schema.Custom("tag_name", func(s *jsonstream.Stream, r *forge.Release) error {
		tag, err := jsonstream.GetString(s)
		r.ID, r.TagName = tag, tag
		return err
	}),
	schema.String("name", func(r *forge.Release) *string { return &r.Name }),
	schema.String("description", func(r *forge.Release) *string { return &r.Body }),
	schema.User("author", func(r *forge.Release) *string { return &r.Author }),
	schema.String("created_at", func(r *forge.Release) *string { return &r.Date }),
	schema.Bool("upcoming_release", func(r *forge.Release) *bool { return &r.Prerelease }),
	schema.Flatten("assets", schema.NewObject("assets",
		schema.ObjectList("links", schema.NewObject("link",
			schema.String("name", func(a *forge.ReleaseAsset) *string { return &a.Name }),
			schema.String("url", func(a *forge.ReleaseAsset) *string { return &a.URL }),
		), func(r *forge.Release) *[]forge.ReleaseAsset { return &r.Assets }),
		schema.Custom("sources", parseSources),
	)),
)

type source struct {
	Format string
	URL    string
}

var sourceSchema = schema.NewObject("source",
	schema.String("format", func(s *source) *string { return &s.Format }),
	schema.String("url", func(s *source) *string { return &s.URL }),
)

// parseSources keeps the tarball among the generated source archives.
func parseSources(s *jsonstream.Stream, r *forge.Release) error {
	sources, err := sourceSchema.List(s, -1)
	if err != nil {
		return err
	}
	for _, src := range sources {
		if src.Format == "tar.gz" {
			r.TarballURL = src.URL
		}
	}
	return nil
}

var namespaceOwner = schema.NewObject("namespace",
	schema.String("full_path", func(r *forge.Repo) *string { return &r.Owner }),
)

var projectSchema = schema.NewObject("project",
	schema.Int64("id", func(r *forge.Repo) *int64 { return &r.ID }),
	schema.String("path", func(r *forge.Repo) *string { return &r.Name }),
	schema.String("path_with_namespace", func(r *forge.Repo) *string { return &r.FullName }),
	schema.Flatten("namespace", namespaceOwner),
	schema.String("created_at", func(r *forge.Repo) *string { return &r.Date }),
	schema.String("visibility", func(r *forge.Repo) *string { return &r.Visibility }),
	schema.Present("forked_from_project", func(r *forge.Repo) *bool { return &r.IsFork }),
)

var forkSchema = schema.NewObject("fork",
	schema.String("path_with_namespace", func(f *forge.Fork) *string { return &f.FullName }),
	schema.Flatten("namespace", schema.NewObject("namespace",
		schema.String("full_path", func(f *forge.Fork) *string { return &f.Owner }),
	)),
	schema.String("created_at", func(f *forge.Fork) *string { return &f.Date }),
	schema.Int("forks_count", func(f *forge.Fork) *int { return &f.Forks }),
)

var sshKeySchema = schema.NewObject("ssh key",
	schema.Int64("id", func(k *forge.SSHKey) *int64 { return &k.ID }),
	schema.String("title", func(k *forge.SSHKey) *string { return &k.Title }),
	schema.String("key", func(k *forge.SSHKey) *string { return &k.Key }),
	schema.String("created_at", func(k *forge.SSHKey) *string { return &k.CreatedAt }),
)

// todoSchema maps todos, GitLab's notification inbox.
var todoSchema = schema.NewObject("todo",
	schema.Value("id", jsonstream.GetID, func(n *forge.Notification) *string { return &n.ID }),
	schema.String("action_name", func(n *forge.Notification) *string { return &n.Reason }),
	schema.String("created_at", func(n *forge.Notification) *string { return &n.Date }),
	schema.String("target_type", func(n *forge.Notification) *string { return &n.Type }),
	schema.Flatten("target", schema.NewObject("target",
		schema.String("title", func(n *forge.Notification) *string { return &n.Title }),
	)),
	schema.Flatten("project", schema.NewObject("project",
		schema.String("path_with_namespace", func(n *forge.Notification) *string { return &n.Repository }),
	)),
)

var snippetSchema = schema.NewObject("snippet",
	schema.Value("id", jsonstream.GetID, func(s *forge.Snippet) *string { return &s.ID }),
	schema.String("title", func(s *forge.Snippet) *string { return &s.Title }),
	schema.User("author", func(s *forge.Snippet) *string { return &s.Owner }),
	schema.String("created_at", func(s *forge.Snippet) *string { return &s.Date }),
	schema.String("web_url", func(s *forge.Snippet) *string { return &s.URL }),
	schema.String("raw_url", func(s *forge.Snippet) *string { return &s.RawURL }),
	schema.ObjectList("files", schema.NewObject("snippet file",
		schema.String("path", func(f *forge.SnippetFile) *string { return &f.FileName }),
		schema.String("raw_url", func(f *forge.SnippetFile) *string { return &f.URL }),
	), func(s *forge.Snippet) *[]forge.SnippetFile { return &s.Files }),
)

var pipelineSchema = schema.NewObject("pipeline",
	schema.Int64("id", func(p *forge.Pipeline) *int64 { return &p.ID }),
	schema.String("status", func(p *forge.Pipeline) *string { return &p.Status }),
	schema.String("ref", func(p *forge.Pipeline) *string { return &p.Ref }),
	schema.String("sha", func(p *forge.Pipeline) *string { return &p.SHA }),
	schema.String("source", func(p *forge.Pipeline) *string { return &p.Source }),
	schema.String("created_at", func(p *forge.Pipeline) *string { return &p.CreatedAt }),
	schema.String("updated_at", func(p *forge.Pipeline) *string { return &p.UpdatedAt }),
)

var jobSchema = schema.NewObject("job",
	schema.Int64("id", func(j *forge.Job) *int64 { return &j.ID }),
	schema.String("name", func(j *forge.Job) *string { return &j.Name }),
	schema.String("status", func(j *forge.Job) *string { return &j.Status }),
	schema.String("stage", func(j *forge.Job) *string { return &j.Stage }),
	schema.String("ref", func(j *forge.Job) *string { return &j.Ref }),
	schema.Flatten("runner", schema.NewObject("runner",
		schema.String("description", func(j *forge.Job) *string { return &j.Runner }),
	)),
	schema.String("created_at", func(j *forge.Job) *string { return &j.CreatedAt }),
	schema.String("started_at", func(j *forge.Job) *string { return &j.StartedAt }),
	schema.String("finished_at", func(j *forge.Job) *string { return &j.FinishedAt }),
	schema.Float("duration", func(j *forge.Job) *float64 { return &j.Duration }),
)
