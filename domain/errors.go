package domain

import "errors"

// Authentication errors
var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials deliberately covers both "unknown email" and
	// "wrong password" so login failures do not leak which case occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Password-reset errors
var (
	ErrOTPNotRequested = errors.New("no otp requested for this email")
	ErrOTPExpired      = errors.New("otp has expired")
	ErrOTPInvalid      = errors.New("invalid otp")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Resource errors
var (
	ErrCityNotFound = errors.New("city not found")
	ErrPostNotFound = errors.New("post not found")
)
