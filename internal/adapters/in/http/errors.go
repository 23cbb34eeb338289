package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"lifecycle/internal/generated/servers"
	"lifecycle/internal/pkg/errs"
)

// NewErrorHandler maps use case errors onto HTTP statuses:
//
//	validation          -> 400
//	object not found    -> 404
//	invalid status      -> 422
//	*echo.HTTPError     -> its own code
//	anything else       -> 500, logged, with a generic message
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Path()),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
		}
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, http.StatusText(httpErr.Code)
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrStatusIsInvalid):
		return http.StatusUnprocessableEntity, err.Error()
	case errs.IsValidation(err), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
