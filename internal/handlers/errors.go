package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/inquiries/internal/errors"
	"github.com/umalmyha/inquiries/internal/validation"
)

const internalErrMessage = "internal server error"

type errorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler converts error returned by handler to response with corresponding status code.
// Details of server-side failures are logged and never sent to the client.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		})

		code := http.StatusInternalServerError
		var body any = &errorResponse{Message: internalErrMessage}

		var pldErr *validation.PayloadError
		var httpErr *echo.HTTPError
		var storageErr *apperrors.StorageErr

		switch {
		case errors.As(err, &pldErr):
			code, body = http.StatusBadRequest, pldErr
		case errors.As(err, &storageErr):
			entry.WithField("op", storageErr.Op).Errorf("storage failure - %v", storageErr.Err)
		case errors.As(err, &httpErr):
			code = httpErr.Code
			if code >= http.StatusInternalServerError {
				entry.Errorf("request failed - %v", err)
				break
			}
			body = &errorResponse{Message: fmt.Sprint(httpErr.Message)}
			if httpErr.Internal != nil {
				entry.Debugf("request rejected - %v", httpErr.Internal)
			}
		default:
			entry.Errorf("error occurred on http request processing - %v", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}

		if err != nil {
			entry.Errorf("failed to send error response - %v", err)
		}
	}
}
