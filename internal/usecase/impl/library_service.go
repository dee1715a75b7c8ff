package impl

import (
	"context"
	"log/slog"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// libraryService implements the LibraryUsecase interface. The idempotent set
// semantics live in the repository's atomic add/remove primitives; this layer
// only orchestrates and logs.
type libraryService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// LibraryServiceParams holds dependencies for libraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewLibraryService is the constructor for libraryService.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	return &libraryService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveBook adds a catalog snapshot to the user's saved set.
func (srv *libraryService) SaveBook(ctx context.Context, userID uuid.UUID, input *usecase.SaveBookInput) (*entity.User, error) {
	book := &entity.SavedBook{
		BookID:      input.BookID,
		Authors:     input.Authors,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Link:        input.Link,
	}

	user, err := srv.userRepo.AddSavedBook(ctx, userID, book)
	if err != nil {
		srv.log(ctx).Warn("Failed to save book", slog.Any("userID", userID), slog.String("bookID", input.BookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save book")
	}

	srv.log(ctx).Debug("Book saved", slog.Any("userID", userID), slog.String("bookID", input.BookID), slog.Int("bookCount", user.BookCount()))

	return user, nil
}

// RemoveBook removes the entry keyed by the catalog id from the user's saved set.
func (srv *libraryService) RemoveBook(ctx context.Context, userID uuid.UUID, bookID string) (*entity.User, error) {
	user, err := srv.userRepo.RemoveSavedBook(ctx, userID, bookID)
	if err != nil {
		srv.log(ctx).Warn("Failed to remove book", slog.Any("userID", userID), slog.String("bookID", bookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to remove book")
	}

	srv.log(ctx).Debug("Book removed", slog.Any("userID", userID), slog.String("bookID", bookID), slog.Int("bookCount", user.BookCount()))

	return user, nil
}
