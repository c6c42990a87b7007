// Package gitlab implements the forge vocabulary over the GitLab v4 API.
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
	"github.com/theory/jsonpath"
)

const (
	// DefaultAPIBase is the API root of gitlab.com.
	DefaultAPIBase = "https://gitlab.com/api/v4"

	pageSize = "100"
)

// Descriptor describes GitLab.
var Descriptor = forge.Descriptor{
	Kind:       forge.KindGitLab,
	Name:       "gitlab",
	Quirks:     forge.QuirkNoAttachments,
	ParseError: ParseError,
}

// Forge talks to GitLab.
type Forge struct {
	forge.Unsupported

	t transport.Transport
}

// New creates a GitLab forge over t, whose base URL is the /api/v4 root.
func New(t transport.Transport) *Forge {
	return &Forge{t: t}
}

// Descriptor implements forge.Forge.
func (f *Forge) Descriptor() *forge.Descriptor {
	return &Descriptor
}

// project returns the URL of a project, addressed by its escaped full path.
func project(owner, repo string, format string, args ...any) string {
	return fetch.URL("projects/%s", owner+"/"+repo) + fetch.URL(format, args...)
}

func list[T any](ctx context.Context, t transport.Transport, u string, q url.Values, o *schema.Object[T], max int) ([]T, error) {
	if q == nil {
		q = url.Values{}
	}
	q.Set("per_page", pageSize)
	return fetch.List(ctx, t, fetch.ListParams[T]{
		URL:   fetch.WithQuery(u, q),
		Parse: o.ParseArray,
		Max:   max,
	})
}

type user struct {
	ID int64
}

var userSchema = schema.NewObject("user",
	schema.Int64("id", func(u *user) *int64 { return &u.ID }),
)

// userID resolves a user name to the numeric id most write endpoints want.
func (f *Forge) userID(ctx context.Context, username string) (int64, error) {
	u := fetch.WithQuery("users", url.Values{"username": {username}})
	users, err := fetch.List(ctx, f.t, fetch.ListParams[user]{URL: u, Parse: userSchema.ParseArray, Max: 1})
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	return users[0].ID, nil
}

func (f *Forge) userIDs(ctx context.Context, usernames []string) ([]int64, error) {
	ids := make([]int64, 0, len(usernames))
	for _, name := range usernames {
		id, err := f.userID(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type errorEnvelope struct {
	Message     string
	Error       string
	Description string
}

// errorSchema covers the envelopes GitLab sends:
//
//	{"message": "..."}
//	{"message": ["...", "..."]}
//	{"message": {"field": ["..."]}}
//	{"error": "...", "error_description": "..."}
var errorSchema = schema.NewObject("error",
	schema.Custom("message", func(s *jsonstream.Stream, e *errorEnvelope) error {
		msg, err := flattenMessage(s)
		e.Message = msg
		return err
	}),
	schema.String("error", func(e *errorEnvelope) *string { return &e.Error }),
	schema.String("error_description", func(e *errorEnvelope) *string { return &e.Description }),
)

func flattenMessage(s *jsonstream.Stream) (string, error) {
	kind, err := s.Peek()
	if err != nil {
		return "", err
	}
	switch kind {
	case jsonstream.ArrayStart:
		var parts []string
		err := jsonstream.ForEachElement(s, func(_ int) error {
			part, err := flattenMessage(s)
			parts = append(parts, part)
			return err
		})
		return strings.Join(parts, ", "), err
	case jsonstream.ObjectStart:
		var parts []string
		err := jsonstream.ForEachMember(s, func(field string) error {
			part, err := flattenMessage(s)
			parts = append(parts, field+": "+part)
			return err
		})
		return strings.Join(parts, "; "), err
	}
	return jsonstream.GetID(s)
}

var fallbackPaths = []*jsonpath.Path{
	jsonpath.MustParse("$..message"),
	jsonpath.MustParse("$..error"),
	jsonpath.MustParse("$.errors[*]"),
}

// ParseError reads a GitLab error envelope. Bodies that do not match any of
// the known envelopes are searched for the first message-like string.
func ParseError(body []byte) (string, error) {
	var e errorEnvelope
	if err := errorSchema.Parse(jsonstream.NewBytes(body), &e); err == nil {
		switch {
		case e.Message != "":
			return e.Message, nil
		case e.Error != "" && e.Description != "":
			return e.Error + ": " + e.Description, nil
		case e.Error != "":
			return e.Error, nil
		}
	}
	return searchMessage(body)
}

func searchMessage(body []byte) (string, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	for _, p := range fallbackPaths {
		for _, node := range p.Select(data) {
			if s, ok := node.(string); ok && s != "" {
				return s, nil
			}
		}
	}
	return "", nil
}
