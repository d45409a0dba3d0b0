package remote

import "fmt"

// TransportError reports a remote call that did not produce a usable response:
// a network failure, a non-2xx status on a list endpoint, or a body that could
// not be decoded. It is fatal for the run that issued the call.
type TransportError struct {
	// Op is the HTTP verb or step that failed (GET, POST, PATCH, DELETE, decode).
	Op string
	// URL is the requested resource.
	URL string
	// StatusCode is set when the server answered with an unexpected status.
	StatusCode int
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
