package bugzilla

import (
	"strconv"

	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
)

var bugSchema = schema.NewObject("bug",
	schema.Custom("id", func(s *jsonstream.Stream, i *forge.Issue) error {
		id, err := jsonstream.GetInt64(s)
		i.ID, i.Number = id, int(id)
		return err
	}),
	schema.String("summary", func(i *forge.Issue) *string { return &i.Title }),
	schema.String("status", func(i *forge.Issue) *string { return &i.State }),
	schema.String("creator", func(i *forge.Issue) *string { return &i.Author }),
	schema.String("creation_time", func(i *forge.Issue) *string { return &i.CreatedAt }),
	schema.String("product", func(i *forge.Issue) *string { return &i.Product }),
	schema.String("component", func(i *forge.Issue) *string { return &i.Component }),
	schema.String("target_milestone", func(i *forge.Issue) *string { return &i.Milestone }),
	schema.List("keywords", jsonstream.GetString, func(i *forge.Issue) *[]string { return &i.Labels }),
	schema.Custom("assigned_to", func(s *jsonstream.Stream, i *forge.Issue) error {
		who, err := jsonstream.GetString(s)
		if who != "" {
			i.Assignees = append(i.Assignees, who)
		}
		return err
	}),
)

var commentSchema = schema.NewObject("comment",
	schema.Int64("id", func(c *forge.Comment) *int64 { return &c.ID }),
	schema.String("creator", func(c *forge.Comment) *string { return &c.Author }),
	schema.String("creation_time", func(c *forge.Comment) *string { return &c.Date }),
	schema.String("text", func(c *forge.Comment) *string { return &c.Body }),
)

var attachmentSchema = schema.NewObject("attachment",
	schema.Int64("id", func(a *forge.Attachment) *int64 { return &a.ID }),
	schema.String("file_name", func(a *forge.Attachment) *string { return &a.FileName }),
	schema.String("summary", func(a *forge.Attachment) *string { return &a.Summary }),
	schema.String("creator", func(a *forge.Attachment) *string { return &a.Author }),
	schema.String("content_type", func(a *forge.Attachment) *string { return &a.ContentType }),
	schema.String("creation_time", func(a *forge.Attachment) *string { return &a.CreatedAt }),
	// 0 or 1 on older instances.
	schema.Value("is_obsolete", jsonstream.GetBoolRelaxed, func(a *forge.Attachment) *bool { return &a.IsObsolete }),
)

type attachmentData struct {
	Data string
}

var attachmentDataSchema = schema.NewObject("attachment",
	schema.String("data", func(a *attachmentData) *string { return &a.Data }),
)

// parseAttachmentData reads {"attachments": {"<id>": {"data": "..."}}} and
// keeps the entry of the wanted attachment.
func parseAttachmentData(id int64) func(s *jsonstream.Stream, out *attachmentData) error {
	want := strconv.FormatInt(id, 10)
	return func(s *jsonstream.Stream, out *attachmentData) error {
		found := false
		err := jsonstream.ForEachMember(s, func(key string) error {
			if key != "attachments" {
				return jsonstream.SkipValue(s)
			}
			return jsonstream.ForEachMember(s, func(key string) error {
				if key != want {
					return jsonstream.SkipValue(s)
				}
				found = true
				return attachmentDataSchema.Parse(s, out)
			})
		})
		if err != nil {
			return err
		}
		if !found {
			return ErrAttachmentNotFound
		}
		return nil
	}
}
