package usecase

import (
	"context"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
)

// RegisterUserInput is the data required to create an account.
type RegisterUserInput struct {
	Email    string
	Password string
}

// UserUsecase defines account registration and lookup.
type UserUsecase interface {
	// Register creates a new account and queues its welcome job.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Me returns the user behind an authenticated principal.
	Me(ctx context.Context, principal *entity.Principal) (*entity.User, error)
}
