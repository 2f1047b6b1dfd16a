package memory

import (
	"context"
	"sync"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
)

var _ repository.SessionRepository = (*sessionRepository)(nil)

type sessionRepository struct {
	lock     sync.Mutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionRepository is the constructor for the in-memory session repository.
// Expired sessions are dropped when they are read.
func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]entity.Session),
		now:      now,
	}
}

func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	repo.sessions[session.TokenHash] = *session

	return nil
}

func (repo *sessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	session, ok := repo.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if session.IsExpired(repo.now()) {
		delete(repo.sessions, tokenHash)

		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

func (repo *sessionRepository) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	delete(repo.sessions, tokenHash)

	return nil
}

func (repo *sessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	var removed int64
	for tokenHash, session := range repo.sessions {
		if session.IsExpired(now) {
			delete(repo.sessions, tokenHash)
			removed++
		}
	}

	return removed, nil
}
