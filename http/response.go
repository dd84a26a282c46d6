package http

import (
	"github.com/ghettp/ghettp/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const (
	mimeHTML = "text/html"
	mimeJSON = "application/json"
	mimeText = "text/plain"
)

// Response is built by a handler and consumed exactly once by the
// serializer.
type Response struct {
	Code status.Code
	// Status is the reason phrase of the status line. The convenience
	// constructors fill it coarsely: "OK" for 200, "Error" for everything
	// else. Set it explicitly if a canonical phrase matters.
	Status  string
	Headers map[string]string
	Body    []byte
}

// WithHeader sets an extra header and returns the response for chaining.
func (r Response) WithHeader(key, value string) Response {
	if r.Headers == nil {
		r.Headers = make(map[string]string, 1)
	}

	r.Headers[key] = value

	return r
}

// HTML returns a text/html response. The status code defaults to 200.
func HTML(content string, code ...status.Code) Response {
	return build(uf.S2B(content), mimeHTML, optional(code, status.OK))
}

// JSON returns an application/json response with the content passed as is.
// The status code defaults to 200.
func JSON(content string, code ...status.Code) Response {
	return build(uf.S2B(content), mimeJSON, optional(code, status.OK))
}

// Text returns a text/plain response. The status code defaults to 200.
func Text(content string, code ...status.Code) Response {
	return build(uf.S2B(content), mimeText, optional(code, status.OK))
}

// JSONOf marshals the model and returns an application/json response. A
// marshalling failure yields a plain 500 instead.
func JSONOf(model any, code ...status.Code) Response {
	data, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return Text("Internal Server Error", status.InternalServerError)
	}

	return build(data, mimeJSON, optional(code, status.OK))
}

func build(body []byte, contentType string, code status.Code) Response {
	return Response{
		Code:    code,
		Status:  statusText(code),
		Headers: map[string]string{"Content-Type": contentType},
		Body:    body,
	}
}

func statusText(code status.Code) string {
	if code == status.OK {
		return "OK"
	}

	return "Error"
}

func optional[T any](optionals []T, otherwise T) T {
	if len(optionals) == 0 {
		return otherwise
	}

	return optionals[0]
}
