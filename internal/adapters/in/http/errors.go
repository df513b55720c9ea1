package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "An unexpected error occurred"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorHandler renders handler errors as ErrorResponse. Client errors are logged
// at debug, internal ones at error with the full cause; the cause is never returned.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := toErrorResponse(err)
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		if resp.Code >= http.StatusInternalServerError {
			logger.Error("request failed", "error", err, "request_id", requestID)
		} else {
			logger.Debug("request rejected", "kind", resp.Kind, "error", err, "request_id", requestID)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.Code)
		} else {
			err = c.JSON(resp.Code, resp)
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err, "request_id", requestID)
		}
	}
}

func toErrorResponse(err error) ErrorResponse {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
		if httpErr.Code >= http.StatusInternalServerError {
			message = internalErrorMessage
		}
		return ErrorResponse{
			Kind:    string(kindOfStatus(httpErr.Code)),
			Code:    httpErr.Code,
			Message: message,
		}
	}

	kind := errs.KindOf(err)
	return ErrorResponse{
		Kind:    string(kind),
		Code:    statusOf(kind),
		Message: messageOf(kind, err),
	}
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindBadRequest:
		return http.StatusBadRequest
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func kindOfStatus(code int) errs.Kind {
	switch {
	case code == http.StatusUnauthorized:
		return errs.KindUnauthorized
	case code == http.StatusForbidden:
		return errs.KindForbidden
	case code == http.StatusNotFound:
		return errs.KindNotFound
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return errs.KindBadRequest
	default:
		return errs.KindInternal
	}
}

func messageOf(kind errs.Kind, err error) string {
	switch kind {
	case errs.KindForbidden:
		var ruleErr *errs.RuleIsViolatedError
		if errors.As(err, &ruleErr) {
			return ruleErr.Rule
		}
	case errs.KindNotFound:
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Sprintf("The %s with the given id was not found", notFound.ParamName)
		}
	case errs.KindUnauthorized:
		var authErr *errs.NotAuthenticatedError
		if errors.As(err, &authErr) {
			return authErr.Reason
		}
	case errs.KindBadRequest:
		return badRequestMessage(err)
	}

	return internalErrorMessage
}

func badRequestMessage(err error) string {
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		if invalid.Cause != nil {
			return fmt.Sprintf("%s: %v", invalid.ParamName, invalid.Cause)
		}
		return invalid.ParamName
	}

	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		return fmt.Sprintf("%s is required", required.ParamName)
	}

	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) {
		return fmt.Sprintf("%s must be between %v and %v", outOfRange.ParamName, outOfRange.Min, outOfRange.Max)
	}

	return err.Error()
}
