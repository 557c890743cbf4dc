package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware returns an echo middleware that logs every request
// through the given zap logger.
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("client_ip", c.RealIP()),
			}

			if requestID, ok := c.Get("request_id").(string); ok && requestID != "" {
				fields = append(fields, String("request_id", requestID))
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case res.Status >= 500:
				zl.Error("http request", fields...)
			case res.Status >= 400:
				zl.Warn("http request", fields...)
			default:
				zl.Info("http request", fields...)
			}

			return err
		}
	}
}
