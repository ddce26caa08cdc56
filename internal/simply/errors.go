package simply

import (
	"errors"
	"fmt"
)

// TransportError reports an HTTP exchange that did not complete: dial or TLS
// failure, timeout, an aborted response body. Callers own retry policy for
// these; the client never retries on its own.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that arrived but does not match the
// shape the operation expects. Retrying will not help: the contract with the
// service is broken.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is a failure the service reported explicitly through a non-2xx
// status on the update or delete endpoint. Message is empty when the service
// supplied no decodable error envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d", e.Code)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// IsTransport reports whether err is (or wraps) a TransportError, the only
// error kind callers should consider retrying.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
