package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON API answer
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    int         `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, Response{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// UnprocessableResponse sends a 422 response for inputs that are well-formed but cannot be resolved
func UnprocessableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnprocessableEntity, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}
