package impl

import (
	"context"
	"testing"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	mockRepo "github.com/IbrahimMurad/alx-files-manager/internal/mocks/repository"
	mockSvc "github.com/IbrahimMurad/alx-files-manager/internal/mocks/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     *authService
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenGenerator
	clock       *fakeClock
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenGenerator(t)
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	service := newAuthService(AuthServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}, clock.Now)

	return authServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		clock:       clock,
	}
}

// withSessionStore backs the session repository mock with a map.
func (f authServiceFixtures) withSessionStore() map[string]*entity.Session {
	store := make(map[string]*entity.Session)

	f.sessionRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, session *entity.Session) error {
			store[session.TokenHash] = session

			return nil
		}).Maybe()
	f.sessionRepo.EXPECT().
		FindByTokenHash(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokenHash string) (*entity.Session, error) {
			session, ok := store[tokenHash]
			if !ok {
				return nil, repository.ErrSessionNotFound
			}

			return session, nil
		}).Maybe()
	f.sessionRepo.EXPECT().
		DeleteByTokenHash(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokenHash string) error {
			delete(store, tokenHash)

			return nil
		}).Maybe()
	f.tokens.EXPECT().
		Hash(mock.Anything).
		RunAndReturn(func(token string) string { return "hash:" + token }).Maybe()

	return store
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: "hashed-pw123",
	}
}

func TestAuthService_CreateSession_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	f.hasher.EXPECT().Check("pw123", "hashed-pw123").Return(true)
	f.tokens.EXPECT().Generate().Return("token-1", nil)
	f.tokens.EXPECT().Hash("token-1").Return("hash-1")
	f.sessionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(session *entity.Session) bool {
			return session.TokenHash == "hash-1" &&
				session.UserID == user.ID &&
				session.ExpiresAt.Equal(f.clock.Now().Add(24*time.Hour))
		})).
		Return(nil)

	token, err := f.service.CreateSession(ctx, &usecase.Credentials{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

func TestAuthService_CreateSession_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

		_, err := f.service.CreateSession(ctx, &usecase.Credentials{Email: "nobody@x.com", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		f.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

		_, err := f.service.CreateSession(ctx, &usecase.Credentials{Email: user.Email, Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("missing credentials", func(t *testing.T) {
		f := createTestAuthService(t)

		_, err := f.service.CreateSession(ctx, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_CreateThenResolve_ReturnsSameUser(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()
	f.withSessionStore()

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("pw123", user.PasswordHash).Return(true)
	f.tokens.EXPECT().Generate().Return("token-1", nil)

	token, err := f.service.CreateSession(ctx, &usecase.Credentials{Email: user.Email, Password: "pw123"})
	require.NoError(t, err)

	principal, err := f.service.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID())
	assert.Equal(t, token, principal.Token)
}

func TestAuthService_RevokeThenResolve_Fails(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()
	store := f.withSessionStore()
	store["hash:token-1"] = &entity.Session{
		TokenHash: "hash:token-1",
		UserID:    user.ID,
		ExpiresAt: f.clock.Now().Add(time.Hour),
	}

	require.NoError(t, f.service.RevokeSession(ctx, "token-1"))
	assert.Empty(t, store)

	_, err := f.service.ResolveSession(ctx, "token-1")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	err = f.service.RevokeSession(ctx, "token-1")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResolveSession_ExpiresAfterTTL(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()
	f.withSessionStore()

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	f.hasher.EXPECT().Check("pw123", user.PasswordHash).Return(true)
	f.tokens.EXPECT().Generate().Return("token-1", nil)

	token, err := f.service.CreateSession(ctx, &usecase.Credentials{Email: user.Email, Password: "pw123"})
	require.NoError(t, err)

	f.clock.Advance(24*time.Hour - time.Second)
	_, err = f.service.ResolveSession(ctx, token)
	require.NoError(t, err)

	f.clock.Advance(time.Second)
	_, err = f.service.ResolveSession(ctx, token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	err = f.service.RevokeSession(ctx, token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResolveSession_UserGone(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	store := f.withSessionStore()
	userID := uuid.New()
	store["hash:token-1"] = &entity.Session{
		TokenHash: "hash:token-1",
		UserID:    userID,
		ExpiresAt: f.clock.Now().Add(time.Hour),
	}
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.ResolveSession(ctx, "token-1")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResolveSession_EmptyToken(t *testing.T) {
	f := createTestAuthService(t)

	_, err := f.service.ResolveSession(context.Background(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResolveSession_StoreFailure(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	f.tokens.EXPECT().Hash("token-1").Return("hash-1")
	f.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash-1").Return(nil, storeErr)

	_, err := f.service.ResolveSession(ctx, "token-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.sessionRepo.EXPECT().DeleteExpired(ctx, f.clock.Now()).Return(int64(3), nil)

	removed, err := f.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
