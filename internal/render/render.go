package render

import (
	"strconv"

	"github.com/ghettp/ghettp/http"
)

var (
	protocol      = []byte("HTTP/1.1 ")
	contentLength = []byte("Content-Length: ")
	colonsp       = []byte(": ")
	crlf          = []byte("\r\n")
)

// Response serializes a response into wire bytes: the status line, the
// caller's headers in map iteration order, a computed Content-Length, a
// blank line and the raw body.
//
// Content-Length is always appended after the caller's headers and equals
// the body length in bytes. A caller-supplied Content-Length header is
// still written, which results in two such lines.
func Response(resp http.Response) []byte {
	buff := make([]byte, 0, approxLen(resp))

	buff = append(buff, protocol...)
	buff = strconv.AppendUint(buff, uint64(resp.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, resp.Status...)
	buff = append(buff, crlf...)

	for key, value := range resp.Headers {
		buff = append(buff, key...)
		buff = append(buff, colonsp...)
		buff = append(buff, value...)
		buff = append(buff, crlf...)
	}

	buff = append(buff, contentLength...)
	buff = strconv.AppendInt(buff, int64(len(resp.Body)), 10)
	buff = append(buff, crlf...)
	buff = append(buff, crlf...)

	return append(buff, resp.Body...)
}

func approxLen(resp http.Response) int {
	length := len(protocol) + 3 + 1 + len(resp.Status) + len(crlf)

	for key, value := range resp.Headers {
		length += len(key) + len(colonsp) + len(value) + len(crlf)
	}

	return length + len(contentLength) + 20 + 2*len(crlf) + len(resp.Body)
}
