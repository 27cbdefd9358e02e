// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register a username that already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrPasswordMismatch is returned when the confirmation password does not match.
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
)
