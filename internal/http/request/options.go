package request

const (
	DefaultMaxSize = 1 << 20
	readChunkSize  = 1024
)

type options struct {
	maxSize        int
	lineJoinedBody bool
}

type Option func(*options)

// WithMaxSize bounds the number of bytes Read accepts for a single request,
// head and body together. Values below one keep the default.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithLineJoinedBody rebuilds the body from the lines after the blank line,
// skipping empty lines and terminating each remaining line with '\n'. The
// result is not byte exact for payloads containing CRLF, empty lines or
// invalid UTF-8.
func WithLineJoinedBody() Option {
	return func(o *options) {
		o.lineJoinedBody = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
