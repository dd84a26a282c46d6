package parser

import (
	"strings"

	"github.com/ghettp/ghettp/http"
	"github.com/indigo-web/utils/uf"
)

// Parse turns a raw request buffer into a structured request. It never
// fails: missing request-line tokens stay empty strings, header lines
// without a colon are skipped, and on a duplicate header key the last
// occurrence wins.
//
// The returned request aliases the passed buffer, so the buffer must not
// be reused while the request is alive.
func Parse(data []byte) http.Request {
	request := http.Request{Headers: make(map[string]string)}

	line, rest, _ := nextLine(uf.B2S(data))
	tokens := strings.Fields(strings.TrimSuffix(line, "\r"))
	if len(tokens) > 0 {
		request.Method = tokens[0]
	}
	if len(tokens) > 1 {
		request.Path = tokens[1]
	}
	if len(tokens) > 2 {
		request.Version = tokens[2]
	}

	for {
		var ok bool
		line, rest, ok = nextLine(rest)
		// a lone CR is the blank line terminating the headers section
		if !ok || line == "\r" {
			break
		}

		key, value, found := strings.Cut(strings.TrimSuffix(line, "\r"), ":")
		if !found {
			continue
		}

		request.Headers[key] = strings.TrimPrefix(value, " ")
	}

	request.Body = strings.TrimSuffix(rest, "\n")

	return request
}

// nextLine cuts the input at the first LF. The returned line keeps its
// trailing CR, if any. ok reports whether there was anything left to cut.
func nextLine(s string) (line, rest string, ok bool) {
	if len(s) == 0 {
		return "", "", false
	}

	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx], s[idx+1:], true
	}

	return s, "", true
}
