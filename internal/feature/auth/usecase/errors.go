// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username, email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned on login when the username or password
	// is wrong. The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrValidation is returned for missing or malformed signup fields.
	ErrValidation = errors.New("validation failed")

	// ErrInactiveUser is returned on login for deactivated accounts.
	ErrInactiveUser = errors.New("user account is inactive")
)
