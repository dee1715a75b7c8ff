// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// Credentials carries the minimum needed to verify a login attempt. It exists
// so that the password hash stays inside the directory boundary instead of
// riding along on entity.User.
type Credentials struct {
	UserID       uuid.UUID
	PasswordHash string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// AddSavedBook and RemoveSavedBook must each be a single atomic storage-level
// update; callers never read the set, modify it in memory, and write it back.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including the saved-book set.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindCredentialsByLogin resolves a login identifier to stored credentials.
	// The identifier is matched against the email column first, then username.
	FindCredentialsByLogin(ctx context.Context, login string) (*Credentials, error)

	// Create persists a new user with the given password hash. Uniqueness of
	// username and email is enforced by the storage layer.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// AddSavedBook adds the book to the user's saved set if not already present
	// (keyed on BookID) and returns the updated user. Adding an existing id is a no-op.
	AddSavedBook(ctx context.Context, userID uuid.UUID, book *entity.SavedBook) (*entity.User, error)

	// RemoveSavedBook removes any entry with the given BookID from the user's
	// saved set and returns the updated user. Removing an absent id is a no-op.
	RemoveSavedBook(ctx context.Context, userID uuid.UUID, bookID string) (*entity.User, error)
}
