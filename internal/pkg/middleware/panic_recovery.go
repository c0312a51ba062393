package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a stack trace
// and answers 500 if nothing has been written yet
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	req := c.Request()
	requestID := getRequestID(c)

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}
	if err := utils.ErrorResponseHandler(c, http.StatusInternalServerError, "An unexpected error occurred while processing your request"); err != nil {
		// If we can't send JSON, try plain text
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
