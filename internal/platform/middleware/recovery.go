package middleware

import (
	"fmt"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinrec/clinrec/internal/platform/errs"
)

// Recovery converts a handler panic into a logged error response. The panic
// value and stack stay in the log; the client sees only the generic message
// the error taxonomy maps for unclassified failures.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 8<<10)
					n := runtime.Stack(stack, false)
					rid, _ := c.Get("request_id").(string)

					logger.Error().
						Str("request_id", rid).
						Interface("panic", r).
						Bytes("stack", stack[:n]).
						Msg("panic recovered")

					err = errs.HTTP(fmt.Errorf("panic: %v", r))
				}
			}()
			return next(c)
		}
	}
}
