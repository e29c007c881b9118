package middleware

import (
	"context"
	"time"

	"jsonrpc-client/message"
)

// TimeoutMiddleware bounds a call with a context deadline. The transport
// honors cancellation on connect, write, and read, so an expired deadline
// surfaces as a classified connection/response error rather than a hang.
func TimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *message.Request) (*message.Response, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, req)
		}
	}
}
