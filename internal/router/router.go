package router

import (
	"strings"

	"httplite/internal/http/request"
	"httplite/internal/http/response"
	"httplite/internal/storage"
)

// Handler turns a request into a response. Route is total: every request
// yields exactly one response.
type Handler interface {
	Route(req *request.Request) *response.Response
}

type matcher func(path string) (param string, ok bool)

type route struct {
	method request.Method
	match  matcher
	handle func(req *request.Request, param string) *response.Response
}

type Router struct {
	store  storage.Store
	routes []route
}

// New builds the route table. A nil store means no base directory was
// configured and every /files route answers 404.
func New(store storage.Store) *Router {
	r := &Router{store: store}
	r.routes = []route{
		{method: request.MethodGet, match: exact("/"), handle: r.handleRoot},
		{method: request.MethodGet, match: prefix("/echo/"), handle: r.handleEcho},
		{method: request.MethodGet, match: exact("/user-agent"), handle: r.handleUserAgent},
		{method: request.MethodGet, match: prefix("/files/"), handle: r.handleGetFile},
		{method: request.MethodPost, match: prefix("/files/"), handle: r.handlePostFile},
	}
	return r
}

func (r *Router) Route(req *request.Request) *response.Response {
	if !req.Method.Routable() {
		return response.MethodNotAllowed()
	}
	for _, rt := range r.routes {
		if rt.method != req.Method {
			continue
		}
		if param, ok := rt.match(req.Path); ok {
			return rt.handle(req, param)
		}
	}
	return response.NotFound()
}

func exact(path string) matcher {
	return func(p string) (string, bool) {
		return "", p == path
	}
}

func prefix(pre string) matcher {
	return func(p string) (string, bool) {
		return strings.CutPrefix(p, pre)
	}
}
