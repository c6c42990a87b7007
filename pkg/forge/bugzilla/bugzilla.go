// Package bugzilla implements the forge vocabulary over the Bugzilla 5 REST
// API. Bugzilla is a bug tracker only: owner and repo name a product and a
// component, and everything but reading bugs, their comments and their
// attachments is refused by the session.
package bugzilla

import (
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
)

// AuthHeader carries the API key on every request.
const AuthHeader = "X-BUGZILLA-API-KEY"

// Descriptor describes Bugzilla.
var Descriptor = forge.Descriptor{
	Kind: forge.KindBugzilla,
	Name: "bugzilla",
	Quirks: forge.QuirkNoPulls | forge.QuirkNoLabels | forge.QuirkNoMilestones |
		forge.QuirkNoReleases | forge.QuirkNoForks | forge.QuirkNoRepos |
		forge.QuirkNoNotifications | forge.QuirkNoSSHKeys | forge.QuirkNoSnippets |
		forge.QuirkNoPipelines | forge.QuirkReadOnlyIssues | forge.QuirkIssueProductComponent,
	ParseError: ParseError,
}

// Forge talks to Bugzilla.
type Forge struct {
	forge.Unsupported

	t transport.Transport
}

// New creates a Bugzilla forge over t, whose base URL is the instance root
// (the one serving /rest).
func New(t transport.Transport) *Forge {
	return &Forge{t: t}
}

// Descriptor implements forge.Forge.
func (f *Forge) Descriptor() *forge.Descriptor {
	return &Descriptor
}

type errorEnvelope struct {
	Error   bool
	Code    int
	Message string
}

var errorSchema = schema.NewObject("error",
	schema.Bool("error", func(e *errorEnvelope) *bool { return &e.Error }),
	schema.Int("code", func(e *errorEnvelope) *int { return &e.Code }),
	schema.String("message", func(e *errorEnvelope) *string { return &e.Message }),
)

// ParseError reads {"error": true, "code": 101, "message": "..."}.
func ParseError(body []byte) (string, error) {
	var e errorEnvelope
	if err := errorSchema.Parse(jsonstream.NewBytes(body), &e); err != nil {
		return "", err
	}
	return e.Message, nil
}

// keyedByBug parses {"bugs": {"<id>": value}} documents, handing every value
// to inner. Other top level members are skipped.
func keyedByBug[T any](inner schema.PageParser[T]) schema.PageParser[T] {
	return func(s *jsonstream.Stream, out *[]T, max int) error {
		return jsonstream.ForEachMember(s, func(key string) error {
			if key != "bugs" {
				return jsonstream.SkipValue(s)
			}
			return jsonstream.ForEachMember(s, func(string) error {
				return inner(s, out, max)
			})
		})
	}
}
