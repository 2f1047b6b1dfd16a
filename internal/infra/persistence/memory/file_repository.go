package memory

import (
	"context"
	"sync"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"

	"github.com/google/uuid"
)

var _ repository.FileRepository = (*fileRepository)(nil)

type fileRepository struct {
	lock  sync.RWMutex
	files map[uuid.UUID]entity.File
	order []uuid.UUID // insertion order
}

// NewFileRepository is the constructor for the in-memory file repository.
func NewFileRepository() repository.FileRepository {
	return &fileRepository{
		files: make(map[uuid.UUID]entity.File),
	}
}

func (repo *fileRepository) Create(_ context.Context, file *entity.File) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
		file.UpdatedAt = file.CreatedAt
	}

	repo.files[file.ID] = cloneFile(*file)
	repo.order = append(repo.order, file.ID)

	return nil
}

func (repo *fileRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.File, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	file, ok := repo.files[id]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	file = cloneFile(file)

	return &file, nil
}

func (repo *fileRepository) ListByOwnerAndParent(_ context.Context, ownerID uuid.UUID, parentID *uuid.UUID, offset, limit int) ([]*entity.File, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	files := make([]*entity.File, 0, limit)
	skipped := 0
	for _, id := range repo.order {
		file := repo.files[id]
		if file.OwnerID != ownerID || !sameParent(file.ParentID, parentID) {
			continue
		}
		if skipped < offset {
			skipped++

			continue
		}
		if len(files) == limit {
			break
		}

		file = cloneFile(file)
		files = append(files, &file)
	}

	return files, nil
}

func (repo *fileRepository) SetPublic(_ context.Context, id uuid.UUID, isPublic bool) (*entity.File, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	file, ok := repo.files[id]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	file.IsPublic = isPublic
	file.UpdatedAt = time.Now()
	repo.files[id] = file

	file = cloneFile(file)

	return &file, nil
}

func (repo *fileRepository) Count(_ context.Context) (int64, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	return int64(len(repo.files)), nil
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// cloneFile detaches the parent pointer from the caller's copy.
func cloneFile(file entity.File) entity.File {
	if file.ParentID != nil {
		parentID := *file.ParentID
		file.ParentID = &parentID
	}

	return file
}

