package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/gcli/pkg/logger"
)

// Options configures a transport.
type Options struct {
	// BaseURL is the API root, e.g. https://gitlab.com/api/v4.
	BaseURL string
	// Token is the API token. Empty means anonymous requests.
	Token string
	// AuthHeader sends the token in this header instead of as a bearer token.
	AuthHeader string
	// HTTPClient is used for requests. Defaults to a plain http.Client.
	HTTPClient *http.Client
	Logger     logger.Logger
}

// client is built on the go-github client: it provides request construction
// and error response capture for every forge we talk to. Next-page links are
// read from the Link header as sent.
type client struct {
	gh     *github.Client
	logger logger.Logger
}

// New creates a transport.
func New(opts Options) (Transport, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if opts.Token != "" && opts.AuthHeader != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *httpClient
		wrapped.Transport = &headerTransport{header: opts.AuthHeader, token: opts.Token, base: base}
		httpClient = &wrapped
	}

	gh := github.NewClient(httpClient)
	if opts.Token != "" && opts.AuthHeader == "" {
		gh = gh.WithAuthToken(opts.Token)
	}

	if opts.BaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBaseURL, opts.BaseURL)
		}
		gh.BaseURL = u
	}

	return &client{
		gh:     gh,
		logger: logger.OrNoop(opts.Logger),
	}, nil
}

// Do performs the request.
func (c *client) Do(ctx context.Context, r Request) (*Response, error) {
	var body interface{}
	if r.Body != nil {
		body = json.RawMessage(r.Body)
	}

	req, err := c.gh.NewRequest(r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	if r.Accept != "" {
		req.Header.Set("Accept", r.Accept)
	}

	c.logger.Logf("%s %s", req.Method, req.URL)
	resp, err := c.gh.BareDo(ctx, req)
	if err != nil {
		return c.handleError(resp, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrRequest, err)
	}
	c.logger.Logf("%s %s: %s", req.Method, req.URL, resp.Status)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		NextURL:    nextURL(req.URL, resp.Header.Get("Link")),
	}, nil
}

// handleError converts go-github errors back into raw responses so that each
// forge can decode its own error envelope.
func (c *client) handleError(resp *github.Response, err error) (*Response, error) {
	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		return &Response{StatusCode: http.StatusAccepted, Body: accepted.Raw}, nil
	}

	if resp == nil || resp.Response == nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	// go-github re-populates the body after reading the error envelope.
	var data []byte
	if resp.Body != nil {
		data, _ = io.ReadAll(resp.Body)
	}
	c.logger.Logf("%s %s: %s", resp.Request.Method, resp.Request.URL, resp.Status)

	return nil, &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       data,
	}
}

// nextURL returns the target of the rel="next" link, resolved against the
// request URL. The target is kept verbatim so that cursor and keyset paging
// work like page numbers.
func nextURL(current *url.URL, header string) string {
	target := nextLink(header)
	if target == "" {
		return ""
	}
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return target
	}
	return current.ResolveReference(u).String()
}

// nextLink scans a Link header (RFC 8288) for the rel="next" target.
func nextLink(header string) string {
	for header != "" {
		start := strings.IndexByte(header, '<')
		if start < 0 {
			return ""
		}
		end := strings.IndexByte(header[start:], '>')
		if end < 0 {
			return ""
		}
		target := header[start+1 : start+end]
		header = header[start+end+1:]

		params := header
		if i := strings.IndexByte(header, '<'); i >= 0 {
			params = header[:i]
		}
		for _, p := range strings.Split(params, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
				continue
			}
			for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(value), `",`)) {
				if strings.EqualFold(rel, "next") {
					return target
				}
			}
		}
	}
	return ""
}

type headerTransport struct {
	header string
	token  string
	base   http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(t.header, t.token)
	return t.base.RoundTrip(req)
}
