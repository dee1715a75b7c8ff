package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/delivery/http/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LibraryHandler holds dependencies for saved-book handlers.
type LibraryHandler struct {
	uc     usecase.LibraryUsecase
	logger *slog.Logger
}

// NewLibraryHandler is the constructor for LibraryHandler, injected by Fx.
func NewLibraryHandler(uc usecase.LibraryUsecase, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{
		uc:     uc,
		logger: logger,
	}
}

// SaveBook adds a catalog snapshot to the caller's saved set and returns the
// updated user. Saving an already-saved catalog id is a no-op.
func (h *LibraryHandler) SaveBook(c echo.Context) error {
	claims, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "You must be logged in")
	}

	var input usecase.SaveBookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.SaveBook(c.Request().Context(), claims.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Book saved")
}

// RemoveBook removes the entry keyed by the catalog id and returns the updated
// user. Removing an absent id is a no-op.
func (h *LibraryHandler) RemoveBook(c echo.Context) error {
	claims, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "You must be logged in")
	}

	bookID := c.Param("bookId")
	if bookID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Book id is required")
	}

	user, err := h.uc.RemoveBook(c.Request().Context(), claims.UserID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Book removed")
}
