package middleware

import (
	"httplite/internal/http/request"
	"httplite/internal/http/response"
)

type RequestMiddleware interface {
	HandleRequest(req *request.Request) error
}

type ResponseMiddleware interface {
	HandleResponse(resp *response.Response) error
}
