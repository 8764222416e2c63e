package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Read reads a single request from r. It reads until the blank line ending
// the head, then until Content-Length body bytes have arrived. Without a
// Content-Length the body is whatever arrived together with the head. If the
// peer stops sending before the blank line, the bytes received so far are
// parsed as the request.
func Read(r io.Reader, opts ...Option) (*Request, error) {
	o := newOptions(opts)

	buf := make([]byte, 0, readChunkSize)
	chunk := make([]byte, readChunkSize)

	var (
		req     *Request
		headEnd = -1
		want    = -1
		length  = -1
		eof     bool
	)

	for {
		if headEnd == -1 {
			if idx := bytes.Index(buf, delimiter); idx != -1 {
				var err error
				if req, err = parseHead(buf[:idx]); err != nil {
					return nil, err
				}
				if length, err = contentLength(req.Headers); err != nil {
					return nil, err
				}
				headEnd = idx + len(delimiter)
				want = headEnd + max(length, 0)
				if want > o.maxSize {
					return nil, fmt.Errorf("%w: declared %d bytes, limit %d", ErrRequestTooLarge, want, o.maxSize)
				}
			}
		}

		if (headEnd != -1 && len(buf) >= want) || eof {
			break
		}

		n, err := r.Read(chunk)
		if n > 0 {
			if len(buf)+n > o.maxSize {
				return nil, fmt.Errorf("%w: limit %d", ErrRequestTooLarge, o.maxSize)
			}
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read request: %w", err)
			}
			eof = true
		}
	}

	if headEnd == -1 {
		return Parse(buf, opts...)
	}
	if have := len(buf) - headEnd; length > have {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncatedBody, length, have)
	}

	req.Body = buildBody(buf[headEnd:], length, o.lineJoinedBody)
	return req, nil
}
