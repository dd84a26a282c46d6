package status

import "errors"

// ErrShutdown is returned by the accept loop when it exits because Stop
// closed the listener, as opposed to the listener failing on its own.
var ErrShutdown = errors.New("server is shut down")
