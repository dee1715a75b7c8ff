package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenExpired and ErrTokenInvalid classify verification failures for
// server-side logging only. Clients must see the same rejection either way, so
// callers never forward the distinction.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the identity payload embedded in a token: who the caller is, and
// nothing else. No scopes or roles are carried.
type Claims struct {
	UserID   uuid.UUID `json:"-"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying identity tokens.
// This abstracts the details of token encoding from the rest of the system.
type TokenService interface {
	// Issue produces a signed, time-bounded token for the given identity.
	Issue(userID uuid.UUID, username, email string) (string, error)

	// Verify checks a token string and returns the embedded identity claims.
	// Failures are ErrTokenExpired or ErrTokenInvalid.
	Verify(tokenString string) (*Claims, error)
}
