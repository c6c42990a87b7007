package fetch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lerenn/gcli/pkg/jsonstream"
	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
)

// ListParams describes a paginated listing.
type ListParams[T any] struct {
	// URL of the first page.
	URL string
	// Parse consumes one page.
	Parse schema.PageParser[T]
	// Filter drops records for which it returns false. Optional.
	Filter func(*T) bool
	// Max caps the number of records; negative means no cap.
	Max int
}

// List follows next-page links, accumulating records until the pages run out
// or Max records are collected. No page is requested once the cap is met.
// On failure nothing is returned, so a truncated list is never mistaken for a
// complete one.
func List[T any](ctx context.Context, t transport.Transport, p ListParams[T]) ([]T, error) {
	list := []T{}
	if p.Max == 0 {
		return list, nil
	}

	for url := p.URL; url != ""; {
		resp, err := t.Do(ctx, transport.Request{Method: http.MethodGet, URL: url})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		page, err := parsePage(resp.Body, p, len(list))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, url, err)
		}
		list = append(list, page...)

		if p.Max > 0 && len(list) >= p.Max {
			return list[:p.Max], nil
		}
		url = resp.NextURL
	}

	return list, nil
}

func parsePage[T any](body []byte, p ListParams[T], have int) ([]T, error) {
	limit := -1
	if p.Max > 0 && p.Filter == nil {
		limit = p.Max - have
	}

	var page []T
	s := jsonstream.NewBytes(body)
	if err := p.Parse(s, &page, limit); err != nil {
		return nil, err
	}
	if err := schema.End(s, "page"); err != nil {
		return nil, err
	}
	if p.Filter == nil {
		return page, nil
	}

	kept := page[:0]
	for i := range page {
		if p.Filter(&page[i]) {
			kept = append(kept, page[i])
		}
	}
	return kept, nil
}
