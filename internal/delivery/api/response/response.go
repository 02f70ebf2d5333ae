package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Result is the body of every JSON response.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Result{Success: true, Message: message})
}

// Failure returns an error response
func Failure(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Result{Success: false, Message: message})
}

// OK returns a 200 success
func OK(c echo.Context, message string) error {
	return Success(c, http.StatusOK, message)
}

// InternalServerError returns a 500 error without internal details
func InternalServerError(c echo.Context) error {
	return Failure(c, http.StatusInternalServerError, "Internal server error")
}
