package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medlink/medlink/internal/platform/auth"
)

// requestID reads the correlation id that RequestID() stored on the context.
func requestID(c echo.Context) string {
	rid, _ := c.Get("request_id").(string)
	return rid
}

// Logger emits one structured line per request after the handler chain
// finishes. Handler errors are logged at error level but still returned so
// the echo error handler renders them.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			evt = evt.
				Str("request_id", requestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())
			if uid := auth.UserIDFromContext(req.Context()); uid != "" {
				evt = evt.Str("user_id", uid)
			}
			evt.Msg("request")

			return err
		}
	}
}
