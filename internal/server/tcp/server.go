package tcp

import (
	"net"
	"sync/atomic"

	"github.com/ghettp/ghettp/http/status"
)

type onConnection func(net.Conn)

// Server owns the listening socket and the accept loop.
type Server struct {
	sock     net.Listener
	onConn   onConnection
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
	}
}

// Start accepts connections until the listener fails, spawning a goroutine
// per connection. Concurrency is unbounded and the goroutines aren't
// awaited: by the time Start returns, in-flight connections may still be
// being served. Returns status.ErrShutdown if the listener went down
// because of Stop.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return status.ErrShutdown
			}

			return err
		}

		go s.onConn(conn)
	}
}

// Stop closes the listener, unblocking a pending Accept. In-flight
// connections are left to finish on their own.
func (s *Server) Stop() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}
