package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf/config"
	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/response"
	"shelf/internal/delivery/http/router"
	handlerpkg "shelf/internal/delivery/http/router/handler"
	"shelf/internal/delivery/http/validator"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/auth"
	"shelf/internal/usecase/impl"
)

// memoryUserRepository is an in-memory stand-in for the persistence layer with
// the same idempotent add/remove semantics.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*entity.User
	hashes map[uuid.UUID]string
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		users:  make(map[uuid.UUID]*entity.User),
		hashes: make(map[uuid.UUID]string),
	}
}

func (r *memoryUserRepository) clone(user *entity.User) *entity.User {
	copied := *user
	copied.SavedBooks = append([]entity.SavedBook{}, user.SavedBooks...)

	return &copied
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.clone(user), nil
}

func (r *memoryUserRepository) FindCredentialsByLogin(_ context.Context, login string) (*repository.Credentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, user := range r.users {
		if user.Email == login || user.Username == login {
			return &repository.Credentials{UserID: id, PasswordHash: r.hashes[id]}, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate user")
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.SavedBooks == nil {
		user.SavedBooks = []entity.SavedBook{}
	}

	r.users[user.ID] = r.clone(user)
	r.hashes[user.ID] = passwordHash

	return nil
}

func (r *memoryUserRepository) AddSavedBook(_ context.Context, userID uuid.UUID, book *entity.SavedBook) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	for _, existing := range user.SavedBooks {
		if existing.BookID == book.BookID {
			return r.clone(user), nil
		}
	}

	user.SavedBooks = append(user.SavedBooks, *book)

	return r.clone(user), nil
}

func (r *memoryUserRepository) RemoveSavedBook(_ context.Context, userID uuid.UUID, bookID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	kept := user.SavedBooks[:0]
	for _, existing := range user.SavedBooks {
		if existing.BookID != bookID {
			kept = append(kept, existing)
		}
	}
	user.SavedBooks = kept

	return r.clone(user), nil
}

// apiEnvelope mirrors the response envelope with raw data for per-test decoding.
type apiEnvelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

type authPayload struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := newMemoryUserRepository()

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     repo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})
	libraryUC := impl.NewLibraryService(impl.LibraryServiceParams{
		UserRepo: repo,
		Logger:   logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		UserHandler:         handlerpkg.NewUserHandler(userUC, logger),
		LibraryHandler:      handlerpkg.NewLibraryHandler(libraryUC, logger),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc, logger),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
	}).RegisterRoutes(e)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, token, body string) (*apiEnvelope, int) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	envelope := &apiEnvelope{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), envelope))

	return envelope, rec.Code
}

func registerUser(t *testing.T, e *echo.Echo, username, email, password string) *authPayload {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	envelope, code := doJSON(t, e, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, code)
	require.True(t, envelope.Success)

	payload := &authPayload{}
	require.NoError(t, json.Unmarshal(envelope.Data, payload))
	require.NotEmpty(t, payload.Token)
	require.NotNil(t, payload.User)

	return payload
}

func TestAPI_RegisterLoginAndWhoAmI(t *testing.T) {
	e := newTestServer(t)

	registered := registerUser(t, e, "alice", "alice@example.com", "secret123")
	assert.Equal(t, "alice", registered.User.Username)
	assert.Empty(t, registered.User.SavedBooks)

	// Duplicate registration conflicts.
	envelope, code := doJSON(t, e, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "USER_ALREADY_EXISTS", envelope.Error.Code)

	// Login by email.
	envelope, code = doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, code)
	loggedIn := &authPayload{}
	require.NoError(t, json.Unmarshal(envelope.Data, loggedIn))
	assert.NotEmpty(t, loggedIn.Token)

	// The login field also matches the username.
	envelope, code = doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"alice","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, envelope.Success)

	// whoAmI with a fresh token.
	envelope, code = doJSON(t, e, http.MethodGet, "/me", loggedIn.Token, "")
	require.Equal(t, http.StatusOK, code)
	me := &entity.User{}
	require.NoError(t, json.Unmarshal(envelope.Data, me))
	assert.Equal(t, registered.User.ID, me.ID)
}

func TestAPI_LoginFailuresAreIndistinguishable(t *testing.T) {
	e := newTestServer(t)
	registerUser(t, e, "alice", "alice@example.com", "secret123")

	wrongPassword, code1 := doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"alice@example.com","password":"wrong"}`)
	unknownUser, code2 := doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"ghost@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, code1)
	assert.Equal(t, http.StatusUnauthorized, code2)
	require.NotNil(t, wrongPassword.Error)
	require.NotNil(t, unknownUser.Error)
	assert.Equal(t, wrongPassword.Error.Code, unknownUser.Error.Code)
	assert.Equal(t, wrongPassword.Message, unknownUser.Message)
}

func TestAPI_AuthGate(t *testing.T) {
	e := newTestServer(t)

	// No token on a protected route.
	envelope, code := doJSON(t, e, http.MethodGet, "/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHENTICATED", envelope.Error.Code)

	// A garbage token fails even on public routes.
	envelope, code = doJSON(t, e, http.MethodPost, "/auth/login", "garbage-token",
		`{"email":"alice@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHENTICATED", envelope.Error.Code)

	// No token on a public route is fine (this one fails on credentials instead).
	envelope, code = doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"alice@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)
}

func TestAPI_SaveAndRemoveBookLifecycle(t *testing.T) {
	e := newTestServer(t)
	registered := registerUser(t, e, "alice", "alice@example.com", "secret123")
	token := registered.Token

	saveBody := `{"bookId":"OL7353617M","authors":["Frank Herbert"],"title":"Dune","link":"https://openlibrary.org/books/OL7353617M"}`

	// First save.
	envelope, code := doJSON(t, e, http.MethodPut, "/books", token, saveBody)
	require.Equal(t, http.StatusOK, code)
	user := &entity.User{}
	require.NoError(t, json.Unmarshal(envelope.Data, user))
	require.Len(t, user.SavedBooks, 1)
	assert.Equal(t, "Dune", user.SavedBooks[0].Title)

	// Saving the same catalog id again is a no-op.
	envelope, code = doJSON(t, e, http.MethodPut, "/books", token, saveBody)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(envelope.Data, user))
	assert.Len(t, user.SavedBooks, 1)

	// Remove it.
	envelope, code = doJSON(t, e, http.MethodDelete, "/books/OL7353617M", token, "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(envelope.Data, user))
	assert.Empty(t, user.SavedBooks)

	// Removing an absent id is also a no-op, not an error.
	envelope, code = doJSON(t, e, http.MethodDelete, "/books/OL7353617M", token, "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(envelope.Data, user))
	assert.Empty(t, user.SavedBooks)

	// A save without a bookId fails validation.
	envelope, code = doJSON(t, e, http.MethodPut, "/books", token, `{"title":"No id"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)

	// Book operations require an identity.
	envelope, code = doJSON(t, e, http.MethodPut, "/books", "", saveBody)
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHENTICATED", envelope.Error.Code)
}

func TestAPI_BodyTokenAuthenticatesSave(t *testing.T) {
	e := newTestServer(t)
	registered := registerUser(t, e, "alice", "alice@example.com", "secret123")

	// Token carried in the request body instead of the header.
	body := fmt.Sprintf(`{"token":%q,"bookId":"OL1M","title":"The Hobbit"}`, registered.Token)
	envelope, code := doJSON(t, e, http.MethodPut, "/books", "", body)
	require.Equal(t, http.StatusOK, code)
	user := &entity.User{}
	require.NoError(t, json.Unmarshal(envelope.Data, user))
	assert.Len(t, user.SavedBooks, 1)

	// And in the query string.
	envelope, code = doJSON(t, e, http.MethodGet, "/me?token="+registered.Token, "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, envelope.Success)
}
