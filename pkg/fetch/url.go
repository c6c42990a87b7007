package fetch

import (
	"fmt"
	"net/url"
	"strings"
)

// URL formats a request path. String arguments are path-escaped, so owner
// and repository names cannot break out of their segment.
func URL(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			escaped[i] = url.PathEscape(s)
			continue
		}
		escaped[i] = a
	}
	return fmt.Sprintf(format, escaped...)
}

// WithQuery appends the non-empty values of q to u.
func WithQuery(u string, q url.Values) string {
	for k, v := range q {
		if len(v) == 0 || (len(v) == 1 && v[0] == "") {
			delete(q, k)
		}
	}
	if len(q) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + q.Encode()
}
