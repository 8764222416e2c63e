package transport

import (
	"errors"
	"net"
	"time"

	"httplite/internal/http/request"
	"httplite/internal/http/response"
	"httplite/internal/log"
	"httplite/internal/middleware"
	"httplite/internal/router"

	"github.com/google/uuid"
)

type httpHandler struct {
	router         router.Handler
	maxRequestSize int
	readTimeout    time.Duration
	lineJoinedBody bool
}

func newHTTPHandler(r router.Handler) *httpHandler {
	return &httpHandler{
		router:         r,
		maxRequestSize: request.DefaultMaxSize,
	}
}

func (hh *httpHandler) requestOptions() []request.Option {
	opts := []request.Option{request.WithMaxSize(hh.maxRequestSize)}
	if hh.lineJoinedBody {
		opts = append(opts, request.WithLineJoinedBody())
	}
	return opts
}

// handle serves exactly one request on conn and closes it.
func (hh *httpHandler) handle(conn net.Conn) {
	connID := uuid.NewString()
	defer hh.closeConnection(conn)
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("conn=%s recovered from panic: %v", connID, r)
			hh.write(connID, conn, response.BadRequest())
		}
	}()

	if hh.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(hh.readTimeout)); err != nil {
			log.Warnf("conn=%s Failed to set read deadline: %v", connID, err)
		}
	}

	req, err := request.Read(conn, hh.requestOptions()...)
	if err != nil {
		if errors.Is(err, request.ErrEmptyRequest) {
			log.Debugf("conn=%s closed without sending a request", connID)
			return
		}
		log.Warnf("conn=%s Error reading request: %v", connID, err)
		hh.write(connID, conn, response.BadRequest())
		return
	}

	hh.write(connID, conn, hh.dispatch(connID, conn.RemoteAddr(), req))
}

func (hh *httpHandler) dispatch(connID string, addr net.Addr, req *request.Request) *response.Response {
	if !req.Method.Routable() {
		return response.MethodNotAllowed()
	}

	reqMW := []middleware.RequestMiddleware{middleware.NewAccessLog(connID, addr)}
	for _, m := range reqMW {
		if err := m.HandleRequest(req); err != nil {
			log.Warnf("conn=%s Error applying request middleware: %v", connID, err)
			return response.BadRequest()
		}
	}

	resp := hh.router.Route(req)

	respMW := []middleware.ResponseMiddleware{middleware.NewContentHeaders()}
	for _, m := range respMW {
		if err := m.HandleResponse(resp); err != nil {
			log.Warnf("conn=%s Error applying response middleware: %v", connID, err)
		}
	}
	return resp
}

func (hh *httpHandler) write(connID string, conn net.Conn, resp *response.Response) {
	if _, err := conn.Write(response.Serialize(resp)); err != nil {
		log.Errorf("conn=%s Failed to write %s response: %v", connID, resp.Status, err)
	}
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Errorf("Error closing connection: %v", err)
	}
}
