package service

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needs the current
	// user's identity before any successful login or registration.
	ErrNotAuthenticated = errors.New("no authenticated user")

	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before reaching storage.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when login credentials do not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpired is returned when a presented JWT token is past its
	// expiry claim.
	ErrTokenIsExpired = errors.New("token is expired")
)
