package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status     Status
		expectLine string
		code       int
	}{
		{StatusOK, "200 OK", 200},
		{StatusCreated, "201 Created", 201},
		{StatusBadRequest, "400 Bad Request", 400},
		{StatusNotFound, "404 Not Found", 404},
		{StatusMethodNotAllowed, "405 Method Not Allowed", 405},
	}

	for _, tt := range tests {
		t.Run(tt.expectLine, func(t *testing.T) {
			assert.Equal(t, tt.expectLine, tt.status.String())
			assert.Equal(t, tt.code, tt.status.Code())
			assert.True(t, tt.status.Valid())

			parsed, err := ParseStatus(tt.expectLine)
			require.NoError(t, err)
			assert.Equal(t, tt.status, parsed)
		})
	}

	assert.False(t, Status(500).Valid())
	_, err := ParseStatus("500 Internal Server Error")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, StatusCreated, Created().Status)
	assert.Equal(t, StatusBadRequest, BadRequest().Status)
	assert.Equal(t, StatusNotFound, NotFound().Status)
	assert.Equal(t, StatusMethodNotAllowed, MethodNotAllowed().Status)
	assert.Equal(t, 0, NotFound().Headers.Len())
	assert.Empty(t, NotFound().Body)

	resp := OK(ContentTypeText, []byte("hello"))
	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "text/plain", resp.Headers.Value("Content-Type"))
	assert.Equal(t, "5", resp.Headers.Value("Content-Length"))
}

func TestContentHeadersAreFresh(t *testing.T) {
	a := ContentHeaders(ContentTypeText, 1)
	b := ContentHeaders(ContentTypeText, 1)
	a.Set("X-Extra", "1")
	assert.Equal(t, 2, b.Len())
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name   string
		resp   *Response
		expect string
	}{
		{
			name:   "ok empty",
			resp:   New(StatusOK),
			expect: "HTTP/1.1 200 OK\r\n\r\n",
		},
		{
			name:   "echo",
			resp:   OK(ContentTypeText, []byte("hello")),
			expect: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello",
		},
		{
			name:   "created",
			resp:   Created(),
			expect: "HTTP/1.1 201 Created\r\n\r\n",
		},
		{
			name:   "bad request",
			resp:   BadRequest(),
			expect: "HTTP/1.1 400 Bad Request\r\n\r\n",
		},
		{
			name:   "not found",
			resp:   NotFound(),
			expect: "HTTP/1.1 404 Not Found\r\n\r\n",
		},
		{
			name:   "method not allowed",
			resp:   MethodNotAllowed(),
			expect: "HTTP/1.1 405 Method Not Allowed\r\n\r\n",
		},
		{
			name:   "binary body is not altered",
			resp:   OK(ContentTypeBinary, []byte{0x00, 0xff, 0xfe}),
			expect: "HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 3\r\n\r\n\x00\xff\xfe",
		},
		{
			name:   "nil headers",
			resp:   &Response{Status: StatusNotFound},
			expect: "HTTP/1.1 404 Not Found\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Serialize(tt.resp)
			assert.Equal(t, tt.expect, string(out))
			assert.Equal(t, len(out), cap(out))
		})
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	withExtra := OK(ContentTypeText, []byte("a\r\n\r\nb"))
	withExtra.Headers.Set("X-Trace", "abc: def")

	responses := []*Response{
		New(StatusOK),
		OK(ContentTypeText, []byte("hello")),
		OK(ContentTypeBinary, []byte{0x01, 0x02, 0xff}),
		OK(ContentTypeText, []byte{}),
		Created(),
		BadRequest(),
		NotFound(),
		MethodNotAllowed(),
		withExtra,
	}

	for _, resp := range responses {
		t.Run(resp.Status.String(), func(t *testing.T) {
			parsed, err := Parse(Serialize(resp))
			require.NoError(t, err)
			assert.Equal(t, resp.Status, parsed.Status)
			assert.Equal(t, resp.Headers.Map(), parsed.Headers.Map())
			assert.Equal(t, string(resp.Body), string(parsed.Body))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectErr   error
		errContains string
	}{
		{name: "no CRLF", data: "HTTP/1.1 200 OK", expectErr: ErrMalformedStatusLine},
		{name: "wrong protocol", data: "HTTP/1.0 200 OK\r\n\r\n", expectErr: ErrMalformedStatusLine},
		{name: "unknown status", data: "HTTP/1.1 302 Found\r\n\r\n", expectErr: ErrUnknownStatus},
		{name: "short body", data: "HTTP/1.1 200 OK\r\nContent-Length: 9\r\n\r\nabc", expectErr: ErrTruncatedBody},
		{name: "bad length", data: "HTTP/1.1 200 OK\r\nContent-Length: x\r\n\r\n", errContains: "invalid Content-Length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
			assert.Nil(t, resp)
		})
	}
}
