// Package middleware wraps client calls with cross-cutting behavior:
// logging, deadlines, and client-side rate limiting.
package middleware

import (
	"context"

	"jsonrpc-client/message"
)

// CallFunc performs one JSON-RPC call.
type CallFunc func(ctx context.Context, req *message.Request) (*message.Response, error)

// Middleware wraps a CallFunc with additional behavior.
type Middleware func(next CallFunc) CallFunc

// Chain combines middlewares into one. Chain(A, B, C)(call) executes as
// A(B(C(call))): A sees the request first and the response last.
func Chain(middlewares ...Middleware) Middleware {
	return func(next CallFunc) CallFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
