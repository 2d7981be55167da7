package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with all routes registered. The /me
// route is the only protected one; it reports the authenticated caller as
// seen by the token middleware.
func NewRouter(h *Handlers, secretKey []byte) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.POST("/forgot-password", h.ForgotPassword)
	e.POST("/reset-password", h.ResetPassword)

	protected := e.Group("", JWTAuth(secretKey))
	protected.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id":   c.Get(ContextKeyUserID),
			"user_role": c.Get(ContextKeyUserRole),
		})
	})

	return e
}
