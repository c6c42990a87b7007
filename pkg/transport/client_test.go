//go:build unit

package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) (Transport, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts.BaseURL = srv.URL
	tr, err := New(opts)
	require.NoError(t, err)
	return tr, srv
}

func TestClient_Do_NextPage(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/o/r/issues", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Link", `<`+"http://"+r.Host+`/repos/o/r/issues?page=2&per_page=10>; rel="next", <http://`+r.Host+`/repos/o/r/issues?page=3&per_page=10>; rel="last"`)
		_, _ = io.WriteString(w, `[{"number":1}]`)
	}, Options{Token: "secret"})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/repos/o/r/issues?per_page=10"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `[{"number":1}]`, string(resp.Body))
	assert.Equal(t, srv.URL+"/repos/o/r/issues?page=2&per_page=10", resp.NextURL)
}

func TestClient_Do_CursorNextPage(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", `<http://`+r.Host+`/x?cursor=abc&per_page=10>; rel="next"`)
		_, _ = io.WriteString(w, `[]`)
	}, Options{})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/x?per_page=10"})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/x?cursor=abc&per_page=10", resp.NextURL)
}

func TestClient_Do_RelativeNextPage(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Link", `</projects/1/issues?id_after=42&pagination=keyset>; rel="next"`)
		_, _ = io.WriteString(w, `[]`)
	}, Options{})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/projects/1/issues"})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/projects/1/issues?id_after=42&pagination=keyset", resp.NextURL)
}

func TestNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: ""},
		{name: "next only", header: `<https://h/x?page=2>; rel="next"`, want: "https://h/x?page=2"},
		{
			name:   "next after prev",
			header: `<https://h/x?page=1>; rel="prev", <https://h/x?page=3>; rel="next", <https://h/x?page=9>; rel="last"`,
			want:   "https://h/x?page=3",
		},
		{name: "no next", header: `<https://h/x?page=1>; rel="first", <https://h/x?page=9>; rel="last"`, want: ""},
		{name: "unquoted", header: `<https://h/x?after=Y3Vy>; rel=next`, want: "https://h/x?after=Y3Vy"},
		{name: "several relations", header: `<https://h/x?cursor=c>; rel="next last"`, want: "https://h/x?cursor=c"},
		{name: "other params first", header: `<https://h/x?page=2>; type="application/json"; REL="Next"`, want: "https://h/x?page=2"},
		{name: "comma in target", header: `<https://h/x?ids=1,2&page=2>; rel="next"`, want: "https://h/x?ids=1,2&page=2"},
		{name: "unterminated", header: `<https://h/x?page=2; rel="next"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextLink(tt.header))
		})
	}
}

func TestClient_Do_LastPage(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	}, Options{})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/x"})
	require.NoError(t, err)
	assert.Empty(t, resp.NextURL)
}

func TestClient_Do_RelativeURL(t *testing.T) {
	tr, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/keys", r.URL.Path)
		_, _ = io.WriteString(w, `[]`)
	}, Options{})

	_, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: "user/keys"})
	require.NoError(t, err)
}

func TestClient_Do_Body(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"body":"hi"}`, strings.TrimSpace(string(body)))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":1}`)
	}, Options{})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodPost, URL: srv.URL + "/c", Body: []byte(`{"body":"hi"}`)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClient_Do_Accept(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github.v3.diff", r.Header.Get("Accept"))
		_, _ = io.WriteString(w, "diff --git a/x b/x\n")
	}, Options{})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/d", Accept: "application/vnd.github.v3.diff"})
	require.NoError(t, err)
	assert.Equal(t, "diff --git a/x b/x\n", string(resp.Body))
}

func TestClient_Do_HTTPError(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"Validation Failed"}`)
	}, Options{})

	_, err := tr.Do(context.Background(), Request{Method: http.MethodPost, URL: srv.URL + "/x", Body: []byte(`{}`)})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, `{"message":"Validation Failed"}`, string(httpErr.Body))
}

func TestClient_Do_Accepted(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"full_name":"me/r"}`)
	}, Options{})

	resp, err := tr.Do(context.Background(), Request{Method: http.MethodPost, URL: srv.URL + "/repos/o/r/forks"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, `{"full_name":"me/r"}`, string(resp.Body))
}

func TestClient_Do_AuthHeader(t *testing.T) {
	tr, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("X-BUGZILLA-API-KEY"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{}`)
	}, Options{Token: "key", AuthHeader: "X-BUGZILLA-API-KEY"})

	_, err := tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/rest/bug"})
	require.NoError(t, err)
}

func TestClient_Do_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	tr, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = tr.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL + "/x"})
	assert.ErrorIs(t, err, ErrRequest)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}
