package transport

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"httplite/internal/log"
	"httplite/internal/router"
)

type Option func(*httpHandler)

// WithMaxRequestSize bounds the bytes read for a single request.
func WithMaxRequestSize(n int) Option {
	return func(hh *httpHandler) {
		hh.maxRequestSize = n
	}
}

// WithReadTimeout sets a deadline for reading the request. Zero disables it.
func WithReadTimeout(d time.Duration) Option {
	return func(hh *httpHandler) {
		hh.readTimeout = d
	}
}

// WithLineJoinedBody enables the legacy line-joined body reconstruction.
func WithLineJoinedBody(enabled bool) Option {
	return func(hh *httpHandler) {
		hh.lineJoinedBody = enabled
	}
}

type httpServer struct {
	addr    string
	handler *httpHandler

	mu       sync.Mutex
	listener net.Listener
	closing  bool
	conns    sync.WaitGroup
}

func NewHTTPServer(addr string, r router.Handler, opts ...Option) Transport {
	handler := newHTTPHandler(r)
	for _, opt := range opts {
		opt(handler)
	}
	return &httpServer{
		addr:    addr,
		handler: handler,
	}
}

func (hs *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", hs.addr)
}

// Serve accepts connections until the listener is closed and handles each
// one in its own goroutine. It never waits for a connection to finish.
func (hs *httpServer) Serve(listener net.Listener) error {
	hs.mu.Lock()
	if hs.closing {
		hs.mu.Unlock()
		return net.ErrClosed
	}
	hs.listener = listener
	hs.mu.Unlock()

	log.Infof("HTTP server is listening on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Errorf("Error accepting connection: %v", err)
			continue
		}

		hs.mu.Lock()
		if hs.closing {
			hs.mu.Unlock()
			hs.handler.closeConnection(conn)
			return net.ErrClosed
		}
		hs.conns.Go(func() {
			hs.handler.handle(conn)
		})
		hs.mu.Unlock()
	}
}

// Shutdown closes the listener and waits for in-flight connections until ctx
// is done.
func (hs *httpServer) Shutdown(ctx context.Context) error {
	hs.mu.Lock()
	hs.closing = true
	listener := hs.listener
	hs.mu.Unlock()

	var err error
	if listener != nil {
		if cerr := listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = cerr
		}
	}

	done := make(chan struct{})
	go func() {
		hs.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		return errors.Join(err, ctx.Err())
	}
}
