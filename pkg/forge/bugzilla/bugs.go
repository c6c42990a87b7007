package bugzilla

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/schema"
)

// GetIssues searches the bugs of a product, optionally narrowed to one
// component. Unless filter.All is set only unresolved bugs are listed.
func (f *Forge) GetIssues(ctx context.Context, product, component string, filter forge.IssueFilter, max int) ([]forge.Issue, error) {
	q := url.Values{
		"product":          {product},
		"component":        {component},
		"creator":          {filter.Author},
		"keywords":         {filter.Label},
		"target_milestone": {filter.Milestone},
		"quicksearch":      {filter.Search},
	}
	if !filter.All {
		q.Set("resolution", "---")
	}
	if max > 0 {
		q.Set("limit", strconv.Itoa(max))
	}
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Issue]{
		URL:   fetch.WithQuery("rest/bug", q),
		Parse: schema.Envelope("bugs", bugSchema),
		Max:   max,
	})
}

// GetIssue reads one bug. Product and component are not needed, bug ids are
// global to the instance.
func (f *Forge) GetIssue(ctx context.Context, _, _ string, number int) (*forge.Issue, error) {
	bugs, err := fetch.List(ctx, f.t, fetch.ListParams[forge.Issue]{
		URL:   fetch.URL("rest/bug/%d", number),
		Parse: schema.Envelope("bugs", bugSchema),
		Max:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(bugs) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBugNotFound, number)
	}
	return &bugs[0], nil
}

// GetIssueComments lists the comments of a bug, the description first.
func (f *Forge) GetIssueComments(ctx context.Context, _, _ string, number, max int) ([]forge.Comment, error) {
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Comment]{
		URL:   fetch.URL("rest/bug/%d/comment", number),
		Parse: keyedByBug[forge.Comment](schema.Envelope("comments", commentSchema)),
		Max:   max,
	})
}

// GetIssueAttachments lists the attachments of a bug without their content.
func (f *Forge) GetIssueAttachments(ctx context.Context, _, _ string, number, max int) ([]forge.Attachment, error) {
	u := fetch.WithQuery(fetch.URL("rest/bug/%d/attachment", number), url.Values{"exclude_fields": {"data"}})
	return fetch.List(ctx, f.t, fetch.ListParams[forge.Attachment]{
		URL:   u,
		Parse: keyedByBug[forge.Attachment](attachmentSchema.ParseArray),
		Max:   max,
	})
}

// AttachmentGetContent writes the decoded content of an attachment.
func (f *Forge) AttachmentGetContent(ctx context.Context, id int64, w io.Writer) error {
	u := fetch.WithQuery(fetch.URL("rest/bug/attachment/%d", id), url.Values{"include_fields": {"data"}})
	a, err := fetch.One(ctx, f.t, u, parseAttachmentData(id))
	if err != nil {
		return err
	}

	data, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return fmt.Errorf("%w: attachment %d: %w", fetch.ErrParse, id, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing output: %w", fetch.ErrFetch, err)
	}
	return nil
}
