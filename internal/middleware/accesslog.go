package middleware

import (
	"net"

	"httplite/internal/http/request"
	"httplite/internal/log"
)

type AccessLog struct {
	connID string
	addr   net.Addr
}

func NewAccessLog(connID string, addr net.Addr) *AccessLog {
	return &AccessLog{connID: connID, addr: addr}
}

func (al *AccessLog) HandleRequest(req *request.Request) error {
	remote := "unknown"
	if al.addr != nil {
		remote = al.addr.String()
	}
	log.Debugf("conn=%s remote=%s %s %s body=%dB", al.connID, remote, req.Method, req.Path, len(req.Body))
	return nil
}
