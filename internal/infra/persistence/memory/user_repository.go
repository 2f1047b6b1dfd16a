// Package memory contains map-backed repositories for tests and single-process deployments.
package memory

import (
	"context"
	"sync"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"

	"github.com/google/uuid"
)

var _ repository.UserRepository = (*userRepository)(nil)

type userRepository struct {
	lock     sync.RWMutex
	users    map[uuid.UUID]entity.User
	emailIDs map[string]uuid.UUID
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users:    make(map[uuid.UUID]entity.User),
		emailIDs: make(map[string]uuid.UUID),
	}
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	id, ok := repo.emailIDs[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := repo.users[id]

	return &user, nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, taken := repo.emailIDs[user.Email]; taken {
		return domainerrors.ErrUserAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	repo.users[user.ID] = *user
	repo.emailIDs[user.Email] = user.ID

	return nil
}

func (repo *userRepository) Count(_ context.Context) (int64, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	return int64(len(repo.users)), nil
}
