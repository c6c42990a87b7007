package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
)

// Parser consumes a single record.
type Parser[T any] func(s *jsonstream.Stream, out *T) error

// One fetches and parses a single record.
func One[T any](ctx context.Context, t transport.Transport, url string, parse Parser[T]) (*T, error) {
	return Submit(ctx, t, http.MethodGet, url, nil, parse)
}

// Submit sends a request with an optional JSON body and parses the record the
// forge answers with.
func Submit[T any](ctx context.Context, t transport.Transport, method, url string, body []byte, parse Parser[T]) (*T, error) {
	resp, err := t.Do(ctx, transport.Request{Method: method, URL: url, Body: body})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	var rec T
	s := jsonstream.NewBytes(resp.Body)
	if err := parse(s, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, url, err)
	}
	if err := schema.End(s, "response"); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, url, err)
	}
	return &rec, nil
}

// Exec sends a request whose answer carries nothing of interest.
func Exec(ctx context.Context, t transport.Transport, method, url string, body []byte) error {
	if _, err := t.Do(ctx, transport.Request{Method: method, URL: url, Body: body}); err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return nil
}

// Raw fetches a non-JSON document (diffs, logs, snippet contents) into w.
func Raw(ctx context.Context, t transport.Transport, url, accept string, w io.Writer) error {
	resp, err := t.Do(ctx, transport.Request{Method: http.MethodGet, URL: url, Accept: accept})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if _, err := w.Write(resp.Body); err != nil {
		return fmt.Errorf("%w: writing output: %w", ErrFetch, err)
	}
	return nil
}
