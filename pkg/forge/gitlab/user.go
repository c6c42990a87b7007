package gitlab

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

// GetNotifications lists the pending todos of the user.
func (f *Forge) GetNotifications(ctx context.Context, max int) ([]forge.Notification, error) {
	return list(ctx, f.t, "todos", url.Values{"state": {"pending"}}, todoSchema, max)
}

func (f *Forge) NotificationMarkAsRead(ctx context.Context, id string) error {
	return fetch.Exec(ctx, f.t, http.MethodPost, fetch.URL("todos/%s/mark_as_done", id), nil)
}

func (f *Forge) GetSSHKeys(ctx context.Context, max int) ([]forge.SSHKey, error) {
	return list(ctx, f.t, "user/keys", nil, sshKeySchema, max)
}

func (f *Forge) AddSSHKey(ctx context.Context, title, key string) (*forge.SSHKey, error) {
	body := jsongen.MustObject(jsongen.M("title", title), jsongen.M("key", key))
	return fetch.Submit(ctx, f.t, http.MethodPost, "user/keys", body, sshKeySchema.Parse)
}

func (f *Forge) DeleteSSHKey(ctx context.Context, id int64) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("user/keys/%d", id), nil)
}

func (f *Forge) GetSnippets(ctx context.Context, max int) ([]forge.Snippet, error) {
	return list(ctx, f.t, "snippets", nil, snippetSchema, max)
}

func (f *Forge) SnippetDelete(ctx context.Context, id string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("snippets/%s", id), nil)
}

func (f *Forge) SnippetGetContent(ctx context.Context, id string, w io.Writer) error {
	return fetch.Raw(ctx, f.t, fetch.URL("snippets/%s/raw", id), "text/plain", w)
}
