// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	jobs     service.JobSubmitter
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Jobs     service.JobSubmitter
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		jobs:     params.Jobs,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account for an unused email address.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := ""
	password := ""
	if input != nil {
		email = strings.TrimSpace(input.Email)
		password = input.Password
	}
	if email == "" {
		return nil, domainerrors.NewMissingFieldError("email")
	}
	if password == "" {
		return nil, domainerrors.NewMissingFieldError("password")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration may have claimed the email after the lookup.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	job := &service.Job{
		Type:      service.JobTypeWelcome,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID,
	}
	if err := srv.jobs.Submit(ctx, job); err != nil {
		srv.log(ctx).Warn("Failed to submit welcome job", slog.Any("user_id", user.ID), slog.Any("error", err))
	}

	return user, nil
}

// Me returns the authenticated user.
func (srv *userService) Me(_ context.Context, principal *entity.Principal) (*entity.User, error) {
	if principal == nil || principal.User == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return principal.User, nil
}
