package issue

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Reference is a parsed issue or pull reference. Owner and Repository are
// empty when the reference is a bare number.
type Reference struct {
	Owner      string
	Repository string
	Number     int
	// Host is set when the reference was a URL.
	Host string
}

var (
	numberRe    = regexp.MustCompile(`^#?(\d+)$`)
	shorthandRe = regexp.MustCompile(`^([^\s#]+)/([^/\s#]+)#(\d+)$`)
	// Web pages of GitHub, GitLab and Gitea issues and pulls.
	webPathRe = regexp.MustCompile(`^/(.+)/([^/]+)/(?:issues|pull|pulls|merge_requests)/(\d+)(?:/|$)`)
)

// ParseReference parses "12", "#12", "owner/repo#12", the web URL of an issue
// or pull request, or the URL of a Bugzilla bug.
func ParseReference(ref string) (Reference, error) {
	ref = strings.TrimSpace(ref)

	if m := numberRe.FindStringSubmatch(ref); m != nil {
		return number(Reference{}, m[1], ref)
	}
	if m := shorthandRe.FindStringSubmatch(ref); m != nil {
		return number(Reference{Owner: m[1], Repository: m[2]}, m[3], ref)
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return parseURL(ref)
	}
	return Reference{}, fmt.Errorf("%w: %q", ErrInvalidIssueReference, ref)
}

func parseURL(ref string) (Reference, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %w", ErrInvalidIssueReference, err)
	}
	host := strings.ToLower(u.Hostname())

	if strings.HasSuffix(u.Path, "/show_bug.cgi") {
		return number(Reference{Host: host}, u.Query().Get("id"), ref)
	}
	// GitLab puts its pages under "/-/".
	path := strings.Replace(u.Path, "/-/", "/", 1)
	if m := webPathRe.FindStringSubmatch(path); m != nil {
		return number(Reference{Host: host, Owner: m[1], Repository: m[2]}, m[3], ref)
	}
	return Reference{}, fmt.Errorf("%w: %q", ErrInvalidIssueReference, ref)
}

func number(r Reference, digits, ref string) (Reference, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidIssueReference, ref)
	}
	r.Number = n
	return r, nil
}

// HasRepository reports whether the reference names its repository.
func (r Reference) HasRepository() bool {
	return r.Owner != "" && r.Repository != ""
}
