package response

import (
	"strconv"

	"httplite/internal/http/header"
)

const (
	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

type Response struct {
	Status  Status
	Headers *header.Headers
	Body    []byte
}

func New(status Status) *Response {
	return &Response{
		Status:  status,
		Headers: header.New(),
	}
}

// OK builds a 200 response carrying body with its content headers.
func OK(contentType string, body []byte) *Response {
	return &Response{
		Status:  StatusOK,
		Headers: ContentHeaders(contentType, len(body)),
		Body:    body,
	}
}

func Created() *Response          { return New(StatusCreated) }
func BadRequest() *Response       { return New(StatusBadRequest) }
func NotFound() *Response         { return New(StatusNotFound) }
func MethodNotAllowed() *Response { return New(StatusMethodNotAllowed) }

// ContentHeaders returns a fresh mapping holding Content-Type and
// Content-Length, in that order.
func ContentHeaders(contentType string, length int) *header.Headers {
	h := header.New()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(length))
	return h
}
