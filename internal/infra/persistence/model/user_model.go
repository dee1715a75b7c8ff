package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. Username and email carry unique
// constraints; the password hash lives here and is never mapped onto the
// domain entity.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	SavedBooks []SavedBookModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SavedBookModel mirrors the 'saved_books' table. The composite primary key
// (user_id, book_id) is what makes the set-add idempotent: a conflicting
// insert simply does nothing.
type SavedBookModel struct {
	UserID      uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	BookID      string                       `gorm:"type:varchar(255);primaryKey"`
	Authors     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Title       string                       `gorm:"type:text"`
	Description string                       `gorm:"type:text"`
	Image       string                       `gorm:"type:text"`
	Link        string                       `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedBookModel) TableName() string {
	return "saved_books"
}
