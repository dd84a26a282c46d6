package parser

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("simple get", func(t *testing.T) {
		request := Parse([]byte("GET /hello HTTP/1.1\r\nHost: localhost\r\n\r\n"))
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/hello", request.Path)
		assert.Equal(t, "HTTP/1.1", request.Version)
		assert.Equal(t, "localhost", request.Headers["Host"])
		assert.Empty(t, request.Body)
	})

	t.Run("with body", func(t *testing.T) {
		raw := "POST /api/echo HTTP/1.1\r\nContent-Type: text/plain\r\n\r\nhello"
		request := Parse([]byte(raw))
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/api/echo", request.Path)
		assert.Equal(t, "text/plain", request.Headers["Content-Type"])
		assert.Equal(t, "hello", request.Body)
	})

	t.Run("query string stays in path", func(t *testing.T) {
		request := Parse([]byte("GET /hello?name=Ann HTTP/1.1\r\n\r\n"))
		assert.Equal(t, "/hello?name=Ann", request.Path)
	})

	t.Run("random body", func(t *testing.T) {
		body := uniuri.NewLen(512)
		request := Parse([]byte("POST / HTTP/1.1\r\n\r\n" + body))
		assert.Equal(t, body, request.Body)
	})
}

func TestParseLeniency(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		request := Parse(nil)
		assert.Empty(t, request.Method)
		assert.Empty(t, request.Path)
		assert.Empty(t, request.Version)
		assert.Empty(t, request.Headers)
		assert.Empty(t, request.Body)
	})

	t.Run("short request line", func(t *testing.T) {
		request := Parse([]byte("GET\r\n\r\n"))
		assert.Equal(t, "GET", request.Method)
		assert.Empty(t, request.Path)
		assert.Empty(t, request.Version)
	})

	t.Run("extra request line tokens ignored", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1 garbage\r\n\r\n"))
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/", request.Path)
		assert.Equal(t, "HTTP/1.1", request.Version)
	})

	t.Run("colonless header skipped", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1\r\nnot a header\r\nHost: x\r\n\r\n"))
		require.Len(t, request.Headers, 1)
		assert.Equal(t, "x", request.Headers["Host"])
	})

	t.Run("no trailing blank line", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1\r\nHost: x"))
		assert.Equal(t, "x", request.Headers["Host"])
		assert.Empty(t, request.Body)
	})
}

func TestParseHeaders(t *testing.T) {
	t.Run("keys are not normalized", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1\r\ncOnTeNt-TyPe: text/plain\r\n\r\n"))
		assert.Equal(t, "text/plain", request.Headers["cOnTeNt-TyPe"])
		_, found := request.Headers["Content-Type"]
		assert.False(t, found)
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1\r\nAccept: a\r\nAccept: b\r\n\r\n"))
		assert.Equal(t, "b", request.Headers["Accept"])
	})

	t.Run("exactly one leading space is stripped", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1\r\nA:v\r\nB:  v\r\n\r\n"))
		assert.Equal(t, "v", request.Headers["A"])
		assert.Equal(t, " v", request.Headers["B"])
	})

	t.Run("value split on first colon", func(t *testing.T) {
		request := Parse([]byte("GET / HTTP/1.1\r\nHost: localhost:8080\r\n\r\n"))
		assert.Equal(t, "localhost:8080", request.Headers["Host"])
	})
}

func TestParseBody(t *testing.T) {
	t.Run("one trailing newline dropped", func(t *testing.T) {
		request := Parse([]byte("POST / HTTP/1.1\r\n\r\nline\n"))
		assert.Equal(t, "line", request.Body)

		request = Parse([]byte("POST / HTTP/1.1\r\n\r\nline\n\n"))
		assert.Equal(t, "line\n", request.Body)
	})

	t.Run("inner newlines preserved", func(t *testing.T) {
		request := Parse([]byte("POST / HTTP/1.1\r\n\r\nfirst\nsecond"))
		assert.Equal(t, "first\nsecond", request.Body)
	})

	t.Run("carriage returns kept verbatim", func(t *testing.T) {
		request := Parse([]byte("POST / HTTP/1.1\r\n\r\nfirst\r\nsecond"))
		assert.Equal(t, "first\r\nsecond", request.Body)
	})
}
