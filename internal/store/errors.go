package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors (e.g., ErrUserNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a write is rejected by a storage
	// constraint other than uniqueness, such as a foreign key pointing at
	// a nonexistent row.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the store cannot serve the request
	// in time, typically because the connection pool is exhausted or the
	// operation's deadline expired while waiting on the database.
	ErrUnavailable = errors.New("store unavailable")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPostNotFound indicates that the requested post does not exist in the store.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrVocabularyNotFound indicates that the requested vocabulary entry
	// does not exist in the store.
	ErrVocabularyNotFound = fmt.Errorf("%w: vocabulary entry", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already
	// exists. Returned when a create or update would violate the unique
	// constraint on users.email.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrUserReferenceMissing indicates that a post refers to a user that
	// does not exist (foreign key violation on posts.user_id).
	ErrUserReferenceMissing = fmt.Errorf("%w: referenced user does not exist", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
