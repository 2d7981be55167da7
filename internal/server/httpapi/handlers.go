// Package httpapi exposes the credential lifecycle over HTTP: registration,
// login, and the two halves of the password-reset flow. Handlers validate
// request shapes and translate service errors to status codes; all business
// rules live in the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"github.com/Wilovy09/pgmq-test/internal/server/auth"
	"github.com/Wilovy09/pgmq-test/internal/server/services"
)

// weakPasswordMessage is returned whenever a submitted password fails the
// policy check.
const weakPasswordMessage = "Password must be at least 8 characters long, " +
	"contain at least one uppercase letter, and one special character"

// UserAuthenticator is the slice of the user service the handlers need.
type UserAuthenticator interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// PasswordResetter is the slice of the reset service the handlers need.
type PasswordResetter interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type Handlers struct {
	users UserAuthenticator
	reset PasswordResetter
}

func NewHandlers(users UserAuthenticator, reset PasswordResetter) *Handlers {
	return &Handlers{users: users, reset: reset}
}

// ----- DTOs -----

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Error: msg, Code: status})
}

// validEmail enforces the request contract: 5–100 characters and a
// parseable address.
func validEmail(email string) bool {
	if len(email) < 5 || len(email) > 100 {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// serviceError maps a service sentinel to its HTTP status. Anything
// unrecognized is reported as an internal error without detail.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return errorJSON(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailAlreadyRegistered),
		errors.Is(err, services.ErrTokenNotFoundOrExpired),
		errors.Is(err, services.ErrTokenAlreadyUsed),
		errors.Is(err, services.ErrInvalidTemplate):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
}

// Register creates an account and returns an access token for it.
func (h *Handlers) Register(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if !validEmail(req.Email) {
		return errorJSON(c, http.StatusBadRequest, "invalid email address")
	}
	if !auth.IsValidPassword(req.Password) {
		return errorJSON(c, http.StatusBadRequest, weakPasswordMessage)
	}

	token, err := h.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Login verifies credentials and returns an access token.
func (h *Handlers) Login(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if !validEmail(req.Email) {
		return errorJSON(c, http.StatusBadRequest, "invalid email address")
	}
	if len(req.Password) < 8 {
		return errorJSON(c, http.StatusBadRequest, "password too short")
	}

	token, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ForgotPassword issues a reset token and emails the reset link.
func (h *Handlers) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if !validEmail(req.Email) {
		return errorJSON(c, http.StatusBadRequest, "invalid email address")
	}

	if err := h.reset.RequestReset(c.Request().Context(), req.Email); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset email sent successfully"})
}

// ResetPassword redeems a reset token for a password change.
func (h *Handlers) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.Token) < 32 || len(req.Token) > 255 {
		return errorJSON(c, http.StatusBadRequest, "invalid reset token")
	}
	if !auth.IsValidPassword(req.NewPassword) {
		return errorJSON(c, http.StatusBadRequest, weakPasswordMessage)
	}

	if err := h.reset.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset successfully"})
}
