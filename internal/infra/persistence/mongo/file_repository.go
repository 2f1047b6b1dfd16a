package mongo

import (
	"context"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fileRepository struct {
	files *mongo.Collection
}

// NewFileRepository is the constructor for the MongoDB file repository.
func NewFileRepository(db *mongo.Database) repository.FileRepository {
	return &fileRepository{
		files: db.Collection(filesCollection),
	}
}

func (repo *fileRepository) Create(ctx context.Context, file *entity.File) error {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
		file.UpdatedAt = file.CreatedAt
	}

	if _, err := repo.files.InsertOne(ctx, fromFileDomain(file)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create file")
	}

	return nil
}

func (repo *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	var doc fileDocument
	if err := repo.files.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find file")
	}

	return decodeFile(&doc)
}

// ListByOwnerAndParent returns one page of an owner's nodes under a parent, oldest first.
func (repo *fileRepository) ListByOwnerAndParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID, offset, limit int) ([]*entity.File, error) {
	filter := bson.M{
		"owner_id":  ownerID.String(),
		"parent_id": parentKey(parentID),
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := repo.files.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}
	defer cursor.Close(ctx)

	var docs []fileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to read listed files")
	}

	files := make([]*entity.File, 0, len(docs))
	for i := range docs {
		file, err := decodeFile(&docs[i])
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func (repo *fileRepository) SetPublic(ctx context.Context, id uuid.UUID, isPublic bool) (*entity.File, error) {
	update := bson.M{"$set": bson.M{
		"is_public":  isPublic,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc fileDocument
	if err := repo.files.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to update file visibility")
	}

	return decodeFile(&doc)
}

func (repo *fileRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.files.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count files")
	}

	return count, nil
}

func decodeFile(doc *fileDocument) (*entity.File, error) {
	file, err := doc.toDomain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode file")
	}

	return file, nil
}
