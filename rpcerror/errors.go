// Package rpcerror classifies transport failures. Every fallible step of a
// round trip returns one of four recoverable kinds instead of a raw socket
// or decoder error; the caller decides whether to retry, log, or abort.
package rpcerror

import (
	"errors"
	"fmt"
)

// Kind identifies which step of the round trip failed.
type Kind int

const (
	// Connection: the socket could not be opened or the write failed.
	Connection Kind = iota
	// Serialization: the envelope could not be encoded to JSON, or the
	// response body could not be decoded from JSON.
	Serialization
	// Response: the socket read failed after a successful connection.
	Response
	// InvalidResponse: bytes arrived but no header/body separator was found.
	InvalidResponse
)

func (k Kind) String() string {
	switch k {
	case Connection:
		return "connection error"
	case Serialization:
		return "serialization error"
	case Response:
		return "response error"
	case InvalidResponse:
		return "invalid response"
	}
	return "unknown error"
}

// Error is a classified transport failure wrapping the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err under the given kind. A nil err yields nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// New builds a classified error from a detail message.
func New(kind Kind, detail string) error {
	return &Error{Kind: kind, Err: fmt.Errorf("%s", detail)}
}

// Is reports whether err is (or wraps) a classified error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
