package github

import (
	"context"
	"io"
	"net/http"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/jsongen"
)

func (f *Forge) GetNotifications(ctx context.Context, max int) ([]forge.Notification, error) {
	return list(ctx, f, "notifications", NotificationSchema, max)
}

func (f *Forge) NotificationMarkAsRead(ctx context.Context, id string) error {
	return fetch.Exec(ctx, f.t, http.MethodPatch, fetch.URL("notifications/threads/%s", id), nil)
}

func (f *Forge) GetSSHKeys(ctx context.Context, max int) ([]forge.SSHKey, error) {
	return list(ctx, f, "user/keys", SSHKeySchema, max)
}

func (f *Forge) AddSSHKey(ctx context.Context, title, key string) (*forge.SSHKey, error) {
	body := jsongen.MustObject(jsongen.M("title", title), jsongen.M("key", key))
	return fetch.Submit(ctx, f.t, http.MethodPost, "user/keys", body, SSHKeySchema.Parse)
}

func (f *Forge) DeleteSSHKey(ctx context.Context, id int64) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("user/keys/%d", id), nil)
}

// GetSnippets lists the user's gists.
func (f *Forge) GetSnippets(ctx context.Context, max int) ([]forge.Snippet, error) {
	return list(ctx, f, "gists", gistSchema, max)
}

func (f *Forge) SnippetDelete(ctx context.Context, id string) error {
	return fetch.Exec(ctx, f.t, http.MethodDelete, fetch.URL("gists/%s", id), nil)
}

// SnippetGetContent writes the raw content of every file of a gist.
func (f *Forge) SnippetGetContent(ctx context.Context, id string, w io.Writer) error {
	gist, err := fetch.One(ctx, f.t, fetch.URL("gists/%s", id), gistSchema.Parse)
	if err != nil {
		return err
	}
	for _, file := range gist.Files {
		if err := fetch.Raw(ctx, f.t, file.URL, "", w); err != nil {
			return err
		}
	}
	return nil
}
