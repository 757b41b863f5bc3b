package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Response is the canonical envelope returned by every endpoint. StatusCode
// repeats the HTTP status as a string, which existing dashboard clients
// read instead of the transport status.
type Response struct {
	Message    string `json:"message"`
	StatusCode string `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{
		Message:    message,
		StatusCode: strconv.Itoa(code),
		Data:       data,
	})
}
