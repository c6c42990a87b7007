package transport

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=transport.go -destination=mocks/transport.gen.go -package=mocks

// Request is a single exchange with a forge API.
type Request struct {
	Method string
	URL    string
	// Body is a JSON payload; nil sends no body.
	Body []byte
	// Accept overrides the default JSON Accept header (raw diffs, logs).
	Accept string
}

// Response is the result of a successful exchange.
type Response struct {
	StatusCode int
	Body       []byte
	// NextURL is the URL of the next page, empty on the last page.
	NextURL string
}

// Transport interface performs forge API requests.
type Transport interface {
	// Do performs the request. Non-2xx answers are returned as *HTTPError.
	Do(ctx context.Context, req Request) (*Response, error)
}
