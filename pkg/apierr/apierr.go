package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type APIError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

var (
	ErrBadRequest = func(detail string) *APIError { return New(http.StatusBadRequest, "Bad Request", detail) }
	ErrNotFound   = func(detail string) *APIError { return New(http.StatusNotFound, "Not Found", detail) }
	ErrConflict   = func(detail string) *APIError { return New(http.StatusConflict, "Conflict", detail) }
	ErrValidation = func(detail string) *APIError {
		return New(http.StatusUnprocessableEntity, "Validation Failed", detail)
	}
	ErrInternalServer = func(detail string) *APIError {
		return New(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	ErrBadGateway = func(detail string) *APIError { return New(http.StatusBadGateway, "Bad Gateway", detail) }
)

func New(code int, message, detail string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

func (e *APIError) WithRequestID(requestID string) *APIError {
	e.RequestID = requestID
	return e
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *APIError) StatusCode() int {
	return e.Code
}

// Handler is a fiber ErrorHandler that renders every error as an APIError.
func Handler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *APIError
		var fe *fiber.Error
		switch {
		case errors.As(err, &apiErr):
		case errors.As(err, &fe):
			apiErr = New(fe.Code, http.StatusText(fe.Code), fe.Message)
		default:
			apiErr = ErrInternalServer("")
		}
		if rid, ok := c.Locals("requestid").(string); ok && apiErr.RequestID == "" {
			apiErr.RequestID = rid
		}
		if apiErr.Code >= http.StatusInternalServerError {
			log.Error("request failed", zap.String("path", c.Path()), zap.Int("status", apiErr.Code), zap.Error(err))
		}
		return c.Status(apiErr.Code).JSON(apiErr)
	}
}
