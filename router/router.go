package router

import (
	"github.com/ghettp/ghettp/http"
	"github.com/ghettp/ghettp/http/status"
)

// Router is the route table: request method to exact request target to
// handler. It is populated before serving begins and read without any
// synchronization afterwards, so all registration must complete before the
// server starts.
type Router struct {
	routes map[string]map[string]http.Handler
}

func New() *Router {
	return &Router{
		routes: make(map[string]map[string]http.Handler),
	}
}

// Route registers a handler for the method and the exact request target.
// The target is compared verbatim at dispatch, query string included: a
// route for /hello doesn't match a request to /hello?name=x. Registering
// the same pair twice silently overwrites the previous handler.
func (r *Router) Route(method, path string, handler http.Handler) *Router {
	paths := r.routes[method]
	if paths == nil {
		paths = make(map[string]http.Handler)
		r.routes[method] = paths
	}

	paths[path] = handler

	return r
}

func (r *Router) Get(path string, handler http.Handler) *Router {
	return r.Route("GET", path, handler)
}

func (r *Router) Post(path string, handler http.Handler) *Router {
	return r.Route("POST", path, handler)
}

func (r *Router) Put(path string, handler http.Handler) *Router {
	return r.Route("PUT", path, handler)
}

func (r *Router) Delete(path string, handler http.Handler) *Router {
	return r.Route("DELETE", path, handler)
}

// OnRequest dispatches the request to the registered handler, falling back
// to the fixed 404 response on a miss. A miss is a normal outcome, not an
// error.
func (r *Router) OnRequest(request http.Request) http.Response {
	if handler, found := r.routes[request.Method][request.Path]; found {
		return handler(request)
	}

	return fallback()
}

func fallback() http.Response {
	return http.Response{
		Code:    status.NotFound,
		Status:  "Not Found",
		Headers: map[string]string{"Content-Type": "text/html"},
		Body:    []byte("<html><body><h1>404 - Not Found</h1></body></html>"),
	}
}
