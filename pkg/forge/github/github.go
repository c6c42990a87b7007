// Package github implements the forge vocabulary over the GitHub REST API.
package github

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
)

const (
	// DefaultAPIBase is the API root of github.com.
	DefaultAPIBase = "https://api.github.com"
	// DiffMediaType asks for a pull request as a unified diff.
	DiffMediaType = "application/vnd.github.v3.diff"

	pageParam = "per_page"
	pageSize  = "100"
)

// Descriptor describes GitHub.
var Descriptor = forge.Descriptor{
	Kind: forge.KindGitHub,
	Name: "github",
	Quirks: forge.QuirkNoAttachments |
		forge.QuirkNoPipelines |
		forge.QuirkIssuesIncludePulls |
		forge.QuirkNoPullStats |
		forge.QuirkNoPullCoverage |
		forge.QuirkNoMilestoneExpired,
	ParseError: ParseError,
}

// Forge talks to GitHub.
type Forge struct {
	// GitHub has no issue attachments and no pipelines.
	forge.Unsupported

	t         transport.Transport
	pageParam string
	pageSize  string
}

// New creates a GitHub forge over t, whose base URL is the API root.
func New(t transport.Transport) *Forge {
	return NewWithPaging(t, pageParam, pageSize)
}

// NewWithPaging creates a forge for GitHub compatible APIs whose listings
// take the page size through the param query parameter.
func NewWithPaging(t transport.Transport, param, size string) *Forge {
	return &Forge{t: t, pageParam: param, pageSize: size}
}

// Descriptor implements forge.Forge.
func (f *Forge) Descriptor() *forge.Descriptor {
	return &Descriptor
}

// Transport returns the transport requests are sent through.
func (f *Forge) Transport() transport.Transport {
	return f.t
}

// paged adds the page size to the listing query q.
func (f *Forge) paged(q url.Values) url.Values {
	q.Set(f.pageParam, f.pageSize)
	return q
}

func list[T any](ctx context.Context, f *Forge, u string, o *schema.Object[T], max int) ([]T, error) {
	return fetch.List(ctx, f.t, fetch.ListParams[T]{
		URL:   fetch.WithQuery(u, f.paged(url.Values{})),
		Parse: o.ParseArray,
		Max:   max,
	})
}

type errorDetail struct {
	Field   string
	Code    string
	Message string
}

type errorEnvelope struct {
	Message string
	Details []errorDetail
}

var errorDetailSchema = schema.NewObject("error detail",
	schema.String("field", func(d *errorDetail) *string { return &d.Field }),
	schema.String("code", func(d *errorDetail) *string { return &d.Code }),
	schema.String("message", func(d *errorDetail) *string { return &d.Message }),
)

var errorSchema = schema.NewObject("error",
	schema.String("message", func(e *errorEnvelope) *string { return &e.Message }),
	// Entries are usually objects, older endpoints send plain strings.
	schema.Custom("errors", func(s *jsonstream.Stream, e *errorEnvelope) error {
		return jsonstream.ForEachElement(s, func(_ int) error {
			kind, err := s.Peek()
			if err != nil {
				return err
			}
			var d errorDetail
			if kind == jsonstream.String {
				d.Message, err = jsonstream.GetString(s)
			} else {
				err = errorDetailSchema.Parse(s, &d)
			}
			if err != nil {
				return err
			}
			e.Details = append(e.Details, d)
			return nil
		})
	}),
)

// ParseError reads a GitHub error envelope and renders it as
// "message (field: code, ...)".
func ParseError(body []byte) (string, error) {
	var e errorEnvelope
	if err := errorSchema.Parse(jsonstream.NewBytes(body), &e); err != nil {
		return "", err
	}
	if len(e.Details) == 0 {
		return e.Message, nil
	}

	details := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		switch {
		case d.Message != "":
			details = append(details, d.Message)
		case d.Field != "":
			details = append(details, d.Field+": "+d.Code)
		default:
			details = append(details, d.Code)
		}
	}
	return e.Message + " (" + strings.Join(details, ", ") + ")", nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
