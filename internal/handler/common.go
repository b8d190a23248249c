package handler // handler defines http handlers

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user's ID from echo.Context.  The
// JWT middleware stores the subject claim under "user_id".
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("invalid user_id in context")
}
