package api

import (
	"errors"
	"fmt"
)

// ErrAuthRejected marks a response that says the bearer token is missing,
// invalid, or expired. Callers treat it as session-terminating.
var ErrAuthRejected = errors.New("authorization rejected")

// RequestError is any non-auth failure talking to the server: transport
// errors, non-2xx statuses, malformed bodies. The operation that produced
// it is safe to retry.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func IsAuthRejected(err error) bool {
	return errors.Is(err, ErrAuthRejected)
}
