package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveBookInput is the denormalized catalog snapshot a user saves. Only the
// catalog book id is required.
type SaveBookInput struct {
	BookID      string   `json:"bookId" validate:"required"`
	Authors     []string `json:"authors"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
}

// LibraryUsecase defines the mutation operations on a user's saved-book set.
// Both operations are idempotent and return the updated user record.
type LibraryUsecase interface {
	// SaveBook adds the book to the user's saved set; saving an already-saved
	// catalog id leaves the set unchanged.
	SaveBook(ctx context.Context, userID uuid.UUID, input *SaveBookInput) (*entity.User, error)

	// RemoveBook removes the entry keyed by the catalog id; removing an absent
	// id leaves the set unchanged and does not error.
	RemoveBook(ctx context.Context, userID uuid.UUID, bookID string) (*entity.User, error)
}
