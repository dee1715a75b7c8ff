// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity and collection owner of the system. The password hash is
// deliberately absent: it never leaves the persistence boundary.
type User struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	SavedBooks []SavedBook `json:"savedBooks"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// BookCount reports the size of the saved-book set.
func (u *User) BookCount() int {
	return len(u.SavedBooks)
}

// SavedBook is a denormalized snapshot of a catalog book attached to a user.
// The set is keyed on BookID: at most one entry per (user, BookID) pair, and an
// entry is never mutated after being saved.
type SavedBook struct {
	BookID      string   `json:"bookId"`
	Authors     []string `json:"authors,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}
