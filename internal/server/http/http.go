package http

import (
	"net"

	"github.com/ghettp/ghettp/config"
	"github.com/ghettp/ghettp/http"
	"github.com/ghettp/ghettp/internal/parser"
	"github.com/ghettp/ghettp/internal/render"
)

// Router is the dispatch surface the connection handler relies on.
type Router interface {
	OnRequest(http.Request) http.Response
}

// fixed500 is written when a handler panics. Pre-rendered, as nothing in it
// depends on the request.
var fixed500 = []byte(
	"HTTP/1.1 500 Internal Server Error\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Length: 21\r\n" +
		"\r\n" +
		"Internal Server Error",
)

// Server handles accepted connections.
type Server struct {
	router Router
	cfg    *config.Config
}

func NewServer(router Router, cfg *config.Config) *Server {
	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// ServeConn owns the connection end to end: a single read into a
// fixed-size buffer (a request that doesn't fit is truncated), parse,
// dispatch, write, close. Read and write failures aren't surfaced: the
// connection is simply closed.
func (s *Server) ServeConn(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	buff := make([]byte, s.cfg.NET.ReadBufferSize)
	n, err := conn.Read(buff)
	if err != nil || n == 0 {
		return
	}

	_, _ = conn.Write(s.respond(parser.Parse(buff[:n])))
}

// respond dispatches the request. A handler panic is converted into the
// fixed 500 response, so a faulty handler can't take the connection
// goroutine down.
func (s *Server) respond(request http.Request) (raw []byte) {
	defer func() {
		if p := recover(); p != nil {
			raw = fixed500
		}
	}()

	return render.Response(s.router.OnRequest(request))
}
