package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"jsonrpc-client/message"
)

// RateLimitMiddleware throttles outbound calls with a token bucket. Waiting
// respects the call's context, so a cancelled caller stops queueing.
func RateLimitMiddleware(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *message.Request) (*message.Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return next(ctx, req)
		}
	}
}
