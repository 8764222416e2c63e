package request

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"httplite/internal/http/header"

	"golang.org/x/text/encoding/unicode"
)

var (
	ErrEmptyRequest         = errors.New("empty request")
	ErrMalformedStartLine   = errors.New("malformed start line")
	ErrMalformedHeader      = errors.New("malformed header")
	ErrInvalidContentLength = errors.New("invalid content length")
	ErrTruncatedBody        = errors.New("body shorter than content length")
	ErrRequestTooLarge      = errors.New("request too large")
)

var delimiter = []byte("\r\n\r\n")

const crlf = "\r\n"

// Request is a parsed HTTP request. It is built once per connection and is
// not modified after parsing.
type Request struct {
	Method  Method
	Path    string
	Version string
	Headers *header.Headers
	Body    []byte
}

// Parse parses a complete request held in raw. Without a blank line the whole
// input is treated as the head and the body is empty.
func Parse(raw []byte, opts ...Option) (*Request, error) {
	o := newOptions(opts)
	if len(raw) == 0 {
		return nil, ErrEmptyRequest
	}

	head, body, _ := bytes.Cut(raw, delimiter)
	req, err := parseHead(head)
	if err != nil {
		return nil, err
	}

	length, err := contentLength(req.Headers)
	if err != nil {
		return nil, err
	}
	if length > len(body) {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncatedBody, length, len(body))
	}

	req.Body = buildBody(body, length, o.lineJoinedBody)
	return req, nil
}

func parseHead(head []byte) (*Request, error) {
	lines := strings.Split(decodeLossy(head), crlf)

	method, path, version, err := parseStartLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers, _, err := header.Parse(lines[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	return &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: headers,
	}, nil
}

func parseStartLine(line string) (Method, string, string, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < 2 || tokens[1] == "" {
		return "", "", "", fmt.Errorf("%w: %q", ErrMalformedStartLine, line)
	}

	method, err := ParseMethod(tokens[0])
	if err != nil {
		return "", "", "", err
	}

	return method, tokens[1], strings.Join(tokens[2:], " "), nil
}

// contentLength returns -1 when the header is absent.
func contentLength(h *header.Headers) (int, error) {
	raw, ok := h.LookupFold("Content-Length")
	if !ok {
		return -1, nil
	}
	n, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidContentLength, raw)
	}
	return int(n), nil
}

func buildBody(body []byte, length int, lineJoined bool) []byte {
	if length >= 0 {
		body = body[:length]
	}
	if lineJoined {
		return joinLines(body)
	}
	return bytes.Clone(body)
}

func joinLines(body []byte) []byte {
	out := make([]byte, 0, len(body)+1)
	for _, line := range strings.Split(decodeLossy(body), crlf) {
		if line == "" {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// decodeLossy converts b to text, replacing invalid UTF-8 with U+FFFD.
func decodeLossy(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
