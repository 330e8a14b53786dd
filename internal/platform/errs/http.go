package errs

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTP maps the error taxonomy onto transport status codes. Validation
// failures carry their specific message (missing field list); persistence
// and connection failures stay generic at the boundary.
func HTTP(err error) *echo.HTTPError {
	var ve *ValidationError
	var pe *PersistenceError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, ErrConnectionFailed):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	case errors.As(err, &pe):
		return echo.NewHTTPError(http.StatusInternalServerError, "storage failure")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
