package service

import "errors"

// Business-rule rejections. Handlers map these to client-facing
// envelopes; anything else is treated as an unexpected fault.
var (
	// ErrUserNotFound is returned when no account exists for an email.
	ErrUserNotFound = errors.New("no user found with the provided email address")

	// ErrAlreadyConfirmed is returned when an operation targets an
	// account that has already been enabled.
	ErrAlreadyConfirmed = errors.New("email already confirmed")

	// ErrInvalidOrExpiredToken is returned when a confirmation token is
	// unknown or has a revocation flag set.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrInvalidToken is returned on logout with an unknown token string.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned when login credentials are rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
