// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// All three fields are required and non-empty.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in. The email field
// carries the login identifier and is matched against both the email and
// username columns.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns a freshly issued token together with the user record.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a user with a hashed password and issues a token for
	// the new identity.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a new token. Unknown identifier
	// and wrong password produce the identical error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me returns the full user record for the authenticated identity. A user
	// id that no longer resolves yields (nil, nil): absence, not a hard error.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
