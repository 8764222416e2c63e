package middleware

import (
	"strconv"

	"httplite/internal/http/response"
)

// ContentHeaders makes sure every response with a body carries Content-Type
// and a Content-Length matching the body.
type ContentHeaders struct{}

func NewContentHeaders() *ContentHeaders {
	return &ContentHeaders{}
}

func (ch *ContentHeaders) HandleResponse(resp *response.Response) error {
	if len(resp.Body) == 0 {
		return nil
	}
	if _, ok := resp.Headers.Lookup("Content-Type"); !ok {
		resp.Headers.Set("Content-Type", response.ContentTypeBinary)
	}
	resp.Headers.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	return nil
}
