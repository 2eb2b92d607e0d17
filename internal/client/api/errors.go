package api

import "fmt"

// genericFailureMessage is shown when a non-2xx response carries no usable
// message body.
const genericFailureMessage = "request failed"

// TransportError wraps a failure to complete the HTTP exchange at all:
// network errors, timeouts, and gateway timeouts after the retry budget is
// exhausted. It is the retried class; BusinessError never is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BusinessError is a completed non-2xx response, or a 2xx response whose
// payload does not match the documented shape. Message is user-facing text.
type BusinessError struct {
	Status  int
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Unauthorized reports whether the server rejected the presented credential.
func (e *BusinessError) Unauthorized() bool {
	return e.Status == 401
}
