package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the single outbound HTTP surface: the feed and scrape
// services fetch through Get, the REST translation providers submit
// through Post. Keeping both behind one interface lets tests swap in
// canned responses and keeps retry/timeout policy in one adapter.
type HTTPClient interface {
	// Get performs an HTTP GET request to the given URL.
	// Returns a Response or an error if the request fails.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request with the given body.
	// The body is consumed by the call; the response body must be
	// closed by the caller.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the minimal view of an HTTP response the services need.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the named header, or an empty
	// string if it is not present. Header names are case-insensitive.
	Header(key string) string
}
