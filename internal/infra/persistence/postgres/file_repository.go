package postgres

import (
	"context"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fileRepository implements the repository.FileRepository interface.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *gorm.DB) repository.FileRepository {
	return &fileRepository{
		db: db,
	}
}

// Create persists a new file node.
func (repo *fileRepository) Create(ctx context.Context, file *entity.File) error {
	fileM := fromFileDomain(file)

	if err := repo.db.WithContext(ctx).Create(fileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create file")
	}

	file.ID = fileM.ID
	file.CreatedAt = fileM.CreatedAt
	file.UpdatedAt = fileM.UpdatedAt

	return nil
}

// FindByID retrieves a file node by its unique ID.
func (repo *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	var fileM model.FileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find file by ID")
	}

	return toFileDomain(&fileM), nil
}

// ListByOwnerAndParent retrieves one page of an owner's nodes under a parent, oldest first.
func (repo *fileRepository) ListByOwnerAndParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID, offset, limit int) ([]*entity.File, error) {
	query := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var fileModels []*model.FileModel
	if err := query.
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&fileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}

	files := make([]*entity.File, 0, len(fileModels))
	for _, fileM := range fileModels {
		files = append(files, toFileDomain(fileM))
	}

	return files, nil
}

// SetPublic updates the visibility flag and returns the updated node.
func (repo *fileRepository) SetPublic(ctx context.Context, id uuid.UUID, isPublic bool) (*entity.File, error) {
	var fileM model.FileModel

	result := repo.db.WithContext(ctx).
		Model(&fileM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("is_public", isPublic)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update file visibility")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrFileNotFound
	}

	return toFileDomain(&fileM), nil
}

// Count returns the number of stored nodes, folders included.
func (repo *fileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FileModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count files")
	}

	return count, nil
}

// --- Mapper Functions ---

func toFileDomain(data *model.FileModel) *entity.File {
	if data == nil {
		return nil
	}

	return &entity.File{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Type:       entity.FileType(data.Type),
		ParentID:   data.ParentID,
		IsPublic:   data.IsPublic,
		StorageRef: data.StorageRef,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromFileDomain(data *entity.File) *model.FileModel {
	if data == nil {
		return nil
	}

	return &model.FileModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Type:       data.Type.String(),
		ParentID:   data.ParentID,
		IsPublic:   data.IsPublic,
		StorageRef: data.StorageRef,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
