// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, including the saved-book set.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("SavedBooks").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindCredentialsByLogin resolves a login identifier to the stored credentials.
// The email column is checked first, then username, mirroring the login contract.
func (repo *userRepository) FindCredentialsByLogin(ctx context.Context, login string) (*repository.Credentials, error) {
	creds, err := repo.findCredentialsBy(ctx, "email = ?", login)
	if errors.Is(err, repository.ErrUserNotFound) {
		creds, err = repo.findCredentialsBy(ctx, "username = ?", login)
	}

	return creds, err
}

func (repo *userRepository) findCredentialsBy(ctx context.Context, cond string, value string) (*repository.Credentials, error) {
	var row struct {
		ID           uuid.UUID
		PasswordHash string
	}
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("id", "password_hash").
		Where(cond, value).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find credentials")
	}

	return &repository.Credentials{UserID: row.ID, PasswordHash: row.PasswordHash}, nil
}

// Create persists a new user with the given password hash. Uniqueness of
// username and email is enforced by the database constraints.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.SavedBooks == nil {
		user.SavedBooks = []entity.SavedBook{}
	}

	return nil
}

// AddSavedBook inserts the book into the user's saved set as a single atomic
// statement: INSERT ... ON CONFLICT (user_id, book_id) DO NOTHING. A duplicate
// catalog id is therefore a no-op, never an error.
func (repo *userRepository) AddSavedBook(ctx context.Context, userID uuid.UUID, book *entity.SavedBook) (*entity.User, error) {
	bookM := fromSavedBookDomain(userID, book)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoNothing: true,
		}).
		Create(bookM).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save book")
	}

	return repo.FindByID(ctx, userID)
}

// RemoveSavedBook deletes any entry keyed by (user_id, book_id) in one
// statement. Removing an absent id deletes zero rows and is not an error.
func (repo *userRepository) RemoveSavedBook(ctx context.Context, userID uuid.UUID, bookID string) (*entity.User, error) {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&model.SavedBookModel{}).Error

	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to remove book")
	}

	return repo.FindByID(ctx, userID)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity. The password
// hash is intentionally not mapped.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	books := make([]entity.SavedBook, 0, len(data.SavedBooks))
	for _, bookM := range data.SavedBooks {
		books = append(books, entity.SavedBook{
			BookID:      bookM.BookID,
			Authors:     bookM.Authors,
			Title:       bookM.Title,
			Description: bookM.Description,
			Image:       bookM.Image,
			Link:        bookM.Link,
		})
	}

	return &entity.User{
		ID:         data.ID,
		Username:   data.Username,
		Email:      data.Email,
		SavedBooks: books,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Username: data.Username,
		Email:    data.Email,
	}
}

// fromSavedBookDomain converts a domain SavedBook to its persistence row.
func fromSavedBookDomain(userID uuid.UUID, data *entity.SavedBook) *model.SavedBookModel {
	return &model.SavedBookModel{
		UserID:      userID,
		BookID:      data.BookID,
		Authors:     data.Authors,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Link:        data.Link,
	}
}
