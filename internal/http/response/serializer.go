package response

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"httplite/internal/http/header"
)

const (
	protocol = "HTTP/1.1"
	crlf     = "\r\n"
)

var (
	ErrMalformedStatusLine = errors.New("malformed status line")
	ErrTruncatedBody       = errors.New("body shorter than content length")
)

// Serialize renders resp as wire bytes. Headers are written in insertion
// order and the body is copied verbatim.
func Serialize(resp *Response) []byte {
	statusLine := resp.Status.String()

	size := len(protocol) + 1 + len(statusLine) + 2
	if resp.Headers != nil {
		size += resp.Headers.Size()
	}
	size += 2 + len(resp.Body)

	buf := make([]byte, 0, size)
	buf = append(buf, protocol...)
	buf = append(buf, ' ')
	buf = append(buf, statusLine...)
	buf = append(buf, crlf...)
	if resp.Headers != nil {
		buf = resp.Headers.AppendTo(buf)
	}
	buf = append(buf, crlf...)
	buf = append(buf, resp.Body...)
	return buf
}

// Parse reads a serialized response back. The body is bounded by
// Content-Length when present, otherwise it is the rest of data.
func Parse(data []byte) (*Response, error) {
	lineEnd := bytes.Index(data, []byte(crlf))
	if lineEnd == -1 {
		return nil, fmt.Errorf("%w: no CRLF found in status line", ErrMalformedStatusLine)
	}

	version, statusText, ok := strings.Cut(string(data[:lineEnd]), " ")
	if !ok || version != protocol {
		return nil, fmt.Errorf("%w: %q", ErrMalformedStatusLine, data[:lineEnd])
	}
	status, err := ParseStatus(statusText)
	if err != nil {
		return nil, err
	}

	var (
		lines []string
		body  []byte
	)
	rest := data[lineEnd+2:]
	if after, ok := bytes.CutPrefix(rest, []byte(crlf)); ok {
		body = after
	} else {
		head, after, _ := bytes.Cut(rest, []byte(crlf+crlf))
		lines = strings.Split(string(head), crlf)
		body = after
	}

	headers, _, err := header.Parse(lines)
	if err != nil {
		return nil, err
	}

	if raw, ok := headers.Lookup("Content-Length"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid Content-Length %q", raw)
		}
		if n > len(body) {
			return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncatedBody, n, len(body))
		}
		body = body[:n]
	}

	return &Response{
		Status:  status,
		Headers: headers,
		Body:    bytes.Clone(body),
	}, nil
}
