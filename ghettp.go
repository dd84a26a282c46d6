package ghettp

import (
	"fmt"
	"net"

	"github.com/ghettp/ghettp/config"
	"github.com/ghettp/ghettp/http"
	"github.com/ghettp/ghettp/http/status"
	httpserver "github.com/ghettp/ghettp/internal/server/http"
	"github.com/ghettp/ghettp/internal/server/tcp"
	"github.com/ghettp/ghettp/router"
)

// App ties the engine together: the listening socket, the route table and
// the accept loop lifecycle.
type App struct {
	sock   net.Listener
	server *tcp.Server
	router *router.Router
	cfg    *config.Config
	hooks  hooks
	errCh  chan error
}

// New binds the address and starts listening on it. A bind or listen
// failure is fatal and returned as is: the engine never retries it.
func New(addr string, cfg ...*config.Config) (*App, error) {
	sock, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("ghettp: listen: %w", err)
	}

	return &App{
		sock:   sock,
		router: router.New(),
		cfg:    config.Fill(optional(cfg, nil)),
		errCh:  make(chan error, 1),
	}, nil
}

// Addr reports the address the listener is bound to. Handy with a
// zero-port address.
func (a *App) Addr() net.Addr {
	return a.sock.Addr()
}

// Route registers a handler for the method and the exact request target.
// All registration must complete before Start is called: the route table
// is read without synchronization while serving.
func (a *App) Route(method, path string, handler http.Handler) *App {
	a.router.Route(method, path, handler)
	return a
}

func (a *App) Get(path string, handler http.Handler) *App {
	a.router.Get(path, handler)
	return a
}

func (a *App) Post(path string, handler http.Handler) *App {
	a.router.Post(path, handler)
	return a
}

func (a *App) Put(path string, handler http.Handler) *App {
	a.router.Put(path, handler)
	return a
}

func (a *App) Delete(path string, handler http.Handler) *App {
	a.router.Delete(path, handler)
	return a
}

// NotifyOnStart calls the callback at the moment the accept loop is
// spawned. The listener itself is ready as soon as New returns.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the accept loop has exited.
// Connections accepted earlier may still be being served at that point.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Start spawns the accept loop on its own goroutine and returns
// immediately. Every accepted connection is served on a dedicated
// goroutine with no upper bound on how many are live at once.
func (a *App) Start() {
	conns := httpserver.NewServer(a.router, a.cfg)
	a.server = tcp.NewServer(a.sock, conns.ServeConn)

	go func() {
		a.errCh <- a.server.Start()
	}()

	callIfNotNil(a.hooks.OnStart)
}

// Stop closes the listener and waits for the accept loop to exit.
// In-flight connections aren't awaited. Must not be called before Start.
func (a *App) Stop() error {
	_ = a.server.Stop()
	err := <-a.errCh
	callIfNotNil(a.hooks.OnStop)

	if err == status.ErrShutdown {
		return nil
	}

	return err
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}

func optional[T any](optionals []T, otherwise T) T {
	if len(optionals) == 0 {
		return otherwise
	}

	return optionals[0]
}
