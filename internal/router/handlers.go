package router

import (
	"httplite/internal/http/request"
	"httplite/internal/http/response"
	"httplite/internal/log"
)

func (r *Router) handleRoot(_ *request.Request, _ string) *response.Response {
	return response.New(response.StatusOK)
}

func (r *Router) handleEcho(_ *request.Request, value string) *response.Response {
	return response.OK(response.ContentTypeText, []byte(value))
}

func (r *Router) handleUserAgent(req *request.Request, _ string) *response.Response {
	if req.Headers == nil {
		return response.NotFound()
	}
	ua, ok := req.Headers.Lookup("User-Agent")
	if !ok {
		return response.NotFound()
	}
	return response.OK(response.ContentTypeText, []byte(ua))
}

func (r *Router) handleGetFile(_ *request.Request, name string) *response.Response {
	if r.store == nil {
		return response.NotFound()
	}
	data, err := r.store.Read(name)
	if err != nil {
		return response.NotFound()
	}
	return response.OK(response.ContentTypeBinary, data)
}

func (r *Router) handlePostFile(req *request.Request, name string) *response.Response {
	if r.store == nil {
		return response.NotFound()
	}
	if err := r.store.Write(name, req.Body); err != nil {
		log.Errorf("Failed to write file %q: %v", name, err)
		return response.BadRequest()
	}
	return response.Created()
}
