package mongo

import (
	"context"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type sessionRepository struct {
	sessions *mongo.Collection
}

// NewSessionRepository is the constructor for the MongoDB session repository.
func NewSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &sessionRepository{
		sessions: db.Collection(sessionsCollection),
	}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	if _, err := repo.sessions.InsertOne(ctx, fromSessionDomain(session)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindByTokenHash ignores sessions the TTL monitor has not removed yet.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	filter := bson.M{
		"_id":        tokenHash,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}

	var doc sessionDocument
	if err := repo.sessions.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	session, err := doc.toDomain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return session, nil
}

func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if _, err := repo.sessions.DeleteOne(ctx, bson.M{"_id": tokenHash}); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := repo.sessions.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now.UTC()}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	return result.DeletedCount, nil
}
