package status

type Code uint16

// Codes the engine emits by itself. Handlers are free to respond with any
// value, including ones not listed here.
const (
	OK                  Code = 200
	NotFound            Code = 404
	InternalServerError Code = 500
)
