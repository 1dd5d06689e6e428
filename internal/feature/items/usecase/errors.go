// Package usecase implements the business logic for the items feature.
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when no item matches the given id for
	// the requesting user. A foreign user's item is indistinguishable
	// from a missing one.
	ErrItemNotFound = errors.New("item does not exist")

	// ErrValidation is returned for missing or malformed item fields.
	ErrValidation = errors.New("validation failed")
)
