package middleware

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"jsonrpc-client/message"
)

// LoggingMiddleware logs every call with its method, duration, and outcome.
// Logging is best effort and never changes the result of a call.
func LoggingMiddleware(logger *logrus.Logger) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *message.Request) (*message.Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			entry := logger.WithFields(logrus.Fields{
				"method":   req.Method,
				"id":       req.ID,
				"duration": time.Since(start),
			})
			switch {
			case err != nil:
				entry.WithError(err).Warn("call failed")
			case resp.Error != nil:
				entry.WithField("code", resp.Error.Code).Info("call returned error")
			default:
				entry.Debug("call completed")
			}
			return resp, err
		}
	}
}
