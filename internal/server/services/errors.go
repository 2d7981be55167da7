// Package services contains the credential lifecycle use cases:
// registration, login, and the password-reset flow. Services own
// transaction boundaries; repositories stay single-statement.
package services

import "errors"

// Service-level error taxonomy. Handlers map these to transport codes;
// internal causes are logged, never returned to callers.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyRegistered is returned when registration hits the
	// unique constraint on the email column.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned by the reset-request flow for unknown
	// emails.
	ErrUserNotFound = errors.New("user not found")

	// ErrDefaultRoleNotFound means the roles catalog is missing the role
	// every new account is assigned. This is a deployment fault.
	ErrDefaultRoleNotFound = errors.New("default role not found")

	// ErrTransaction wraps failures inside a multi-statement unit of work.
	ErrTransaction = errors.New("transaction error")

	// ErrPasswordHash is returned when hashing a password fails.
	ErrPasswordHash = errors.New("password hash error")

	// ErrDatabase covers storage failures outside transactions.
	ErrDatabase = errors.New("database error")

	// ErrTokenNotFoundOrExpired covers unknown and expired reset tokens.
	// The two cases are deliberately indistinguishable to the caller.
	ErrTokenNotFoundOrExpired = errors.New("reset token not found or expired")

	// ErrTokenAlreadyUsed is returned when a reset token has already been
	// redeemed. Reported even if the token has also expired.
	ErrTokenAlreadyUsed = errors.New("reset token already used")

	// ErrEmailSend is returned when the reset email cannot be delivered.
	ErrEmailSend = errors.New("failed to send email")

	// ErrInvalidTemplate is returned when the reset email cannot be built
	// from its inputs, e.g. an unparseable recipient address.
	ErrInvalidTemplate = errors.New("invalid email template")
)
