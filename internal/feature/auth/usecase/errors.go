// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails.
	// The concrete cause is wrapped for logging but callers should only test for this error.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWrongPassword is wrapped into ErrInvalidCredentials when the email exists but the password does not match.
	ErrWrongPassword = errors.New("password mismatch")
)
