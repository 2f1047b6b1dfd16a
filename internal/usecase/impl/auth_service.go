package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/config"
	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenGenerator
	sessionTTL  time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return newAuthService(params, time.Now)
}

func newAuthService(params AuthServiceParams, now func() time.Time) *authService {
	return &authService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		sessionTTL:  params.Config.Auth.SessionTTL,
		now:         now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession verifies the credentials and stores a new session with a fixed expiry.
func (srv *authService) CreateSession(ctx context.Context, credentials *usecase.Credentials) (string, error) {
	if credentials == nil || credentials.Email == "" || credentials.Password == "" {
		return "", errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login rejected for unknown email", slog.String("email", credentials.Email))

			return "", errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return "", errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(credentials.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected for wrong password", slog.Any("user_id", user.ID))

		return "", errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokens.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	now := srv.now()
	session := &entity.Session{
		TokenHash: srv.tokens.Hash(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(srv.sessionTTL),
		CreatedAt: now,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Info("Session created", slog.Any("user_id", user.ID), slog.Time("expires_at", session.ExpiresAt))

	return token, nil
}

// ResolveSession returns the principal for a live session.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*entity.Principal, error) {
	session, err := srv.findLiveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find session user")
	}

	return &entity.Principal{Token: token, User: user}, nil
}

// RevokeSession deletes a live session.
func (srv *authService) RevokeSession(ctx context.Context, token string) error {
	session, err := srv.findLiveSession(ctx, token)
	if err != nil {
		return err
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, session.TokenHash); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("user_id", session.UserID))

	return nil
}

// CleanupExpiredSessions purges sessions whose expiry has passed.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", removed))
	}

	return removed, nil
}

// findLiveSession treats missing and expired sessions alike.
func (srv *authService) findLiveSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session expired")
	}

	return session, nil
}
