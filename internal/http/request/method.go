package request

import (
	"errors"
	"fmt"
)

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

var ErrUnknownMethod = errors.New("unknown method")

func ParseMethod(token string) (Method, error) {
	switch m := Method(token); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, token)
	}
}

// Routable reports whether requests with this method are dispatched to the
// router. PUT and DELETE parse fine but are answered with 405 directly.
func (m Method) Routable() bool {
	return m == MethodGet || m == MethodPost
}

func (m Method) String() string {
	return string(m)
}
