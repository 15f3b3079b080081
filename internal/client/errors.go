package client

import "fmt"

// ValidationError reports a 400: the request was rejected before
// persistence and the user can correct it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a 404: the referenced reservation no longer
// exists (typically a stale id after another delete).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ServerError reports a 5xx with a server-supplied message.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// NetworkError wraps transport failures and non-2xx responses whose
// body could not be parsed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
