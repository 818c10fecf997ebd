package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy to an HTTP status. Missing references are
// the caller's fault while an order is being created and a data integrity
// conflict afterwards.
func statusFor(err error, creating bool) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnknownUser):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrReferencedEntityMissing):
		if creating {
			return http.StatusUnprocessableEntity
		}
		return http.StatusConflict
	case errors.Is(err, errs.ErrEmptyOrder),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error, creating bool) error {
	status := statusFor(err, creating)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("path", c.Path()), slog.String("error", err.Error()))
		return c.JSON(status, Error{Code: status, Message: "internal server error"})
	}
	return c.JSON(status, Error{Code: status, Message: err.Error()})
}

// HTTPErrorHandler renders echo errors in the API error shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, Error{Code: code, Message: message})
}
