package http

// Request represents a single parsed HTTP request. It is constructed once
// per connection by the parser and must be treated as read-only afterwards.
type Request struct {
	// Method is the request method verbatim. Never validated.
	Method string
	// Path is the raw request target, query string included. No decoding,
	// splitting or normalization is performed.
	Path string
	// Version is the protocol token of the request line, e.g. HTTP/1.1.
	Version string
	// Headers holds header pairs with keys exactly as received. On a
	// duplicate key the last value wins.
	Headers map[string]string
	// Body is everything that followed the blank line, with line endings
	// collapsed to bare LF. Content-Length is not consulted.
	Body string
}

// Handler maps a request to a response. A handler may be invoked from any
// connection goroutine, concurrently with other handlers.
type Handler func(Request) Response
