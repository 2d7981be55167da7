package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Wilovy09/pgmq-test/internal/server/auth"
)

// Context keys under which JWTAuth stores the authenticated caller.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// JWTAuth returns middleware that requires a valid Bearer access token.
// On success the subject's id and role are attached to the echo context.
func JWTAuth(secretKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errorJSON(c, http.StatusBadRequest, "Token not specified")
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return errorJSON(c, http.StatusBadRequest, "Token not specified")
			}

			claims, err := auth.ValidateToken(token, secretKey)
			if err != nil {
				return errorJSON(c, http.StatusUnauthorized, "Invalid token")
			}
			if claims.TokenType != auth.TokenTypeAccess {
				return errorJSON(c, http.StatusUnauthorized, "Invalid token")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyUserRole, claims.UserRole)

			return next(c)
		}
	}
}
