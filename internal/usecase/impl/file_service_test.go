package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/access"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	mockRepo "github.com/IbrahimMurad/alx-files-manager/internal/mocks/repository"
	mockSvc "github.com/IbrahimMurad/alx-files-manager/internal/mocks/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fileServiceFixtures holds all test dependencies for file service tests.
type fileServiceFixtures struct {
	service  usecase.FileUsecase
	fileRepo *mockRepo.MockFileRepository
	storage  *mockSvc.MockBlobStorage
	jobs     *mockSvc.MockJobSubmitter
}

func createTestFileService(t *testing.T) fileServiceFixtures {
	fileRepo := mockRepo.NewMockFileRepository(t)
	storage := mockSvc.NewMockBlobStorage(t)
	jobs := mockSvc.NewMockJobSubmitter(t)

	svc := NewFileService(FileServiceParams{
		FileRepo: fileRepo,
		Engine:   access.NewEngine(fileRepo),
		Storage:  storage,
		Jobs:     jobs,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return fileServiceFixtures{
		service:  svc,
		fileRepo: fileRepo,
		storage:  storage,
		jobs:     jobs,
	}
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func requireMessage(t *testing.T, err error, httpCode int, message string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, httpCode, appErr.HTTPCode())
	assert.Equal(t, message, appErr.Message())
}

func TestFileService_Upload_Folder(t *testing.T) {
	f := createTestFileService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.fileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(file *entity.File) bool {
			return file.Name == "f1" && file.IsFolder() && file.StorageRef == "" && file.ParentID == nil
		})).
		Return(nil)

	file, err := f.service.Upload(ctx, ownerID, &usecase.UploadInput{Name: "f1", Type: "folder"})
	require.NoError(t, err)
	assert.Equal(t, ownerID, file.OwnerID)
	assert.False(t, file.IsPublic)
}

func TestFileService_Upload_FileUnderFolder(t *testing.T) {
	f := createTestFileService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	folder := &entity.File{ID: uuid.New(), OwnerID: ownerID, Name: "f1", Type: entity.FileTypeFolder}

	f.fileRepo.EXPECT().FindByID(ctx, folder.ID).Return(folder, nil)
	f.storage.EXPECT().Put(ctx, mock.AnythingOfType("string"), []byte("hi")).Return(nil)
	f.fileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.File")).Return(nil)

	file, err := f.service.Upload(ctx, ownerID, &usecase.UploadInput{
		Name:     "child.txt",
		Type:     "file",
		ParentID: &folder.ID,
		Data:     encode("hi"),
	})
	require.NoError(t, err)
	require.NotNil(t, file.ParentID)
	assert.Equal(t, folder.ID, *file.ParentID)
	assert.NotEmpty(t, file.StorageRef)
}

func TestFileService_Upload_ImageSubmitsThumbnailJob(t *testing.T) {
	f := createTestFileService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything).Return(nil)
	f.fileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.jobs.EXPECT().
		Submit(ctx, mock.MatchedBy(func(job *service.Job) bool {
			return job.Type == service.JobTypeThumbnail && job.UserID == ownerID && job.FileID != uuid.Nil
		})).
		Return(errors.New("queue down"))

	file, err := f.service.Upload(ctx, ownerID, &usecase.UploadInput{Name: "a.png", Type: "image", Data: encode("png")})
	require.NoError(t, err)
	assert.Equal(t, entity.FileTypeImage, file.Type)
}

func TestFileService_Upload_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    *usecase.UploadInput
		httpCode int
		message  string
	}{
		{name: "missing name", input: &usecase.UploadInput{Type: "file", Data: encode("x")}, httpCode: 400, message: "Missing name"},
		{name: "missing type", input: &usecase.UploadInput{Name: "n"}, httpCode: 400, message: "Missing type"},
		{name: "unknown type", input: &usecase.UploadInput{Name: "n", Type: "video"}, httpCode: 400, message: "Missing type"},
		{name: "file without data", input: &usecase.UploadInput{Name: "n", Type: "file"}, httpCode: 400, message: "Missing data"},
		{name: "image without data", input: &usecase.UploadInput{Name: "n", Type: "image"}, httpCode: 400, message: "Missing data"},
		{name: "data not base64", input: &usecase.UploadInput{Name: "n", Type: "file", Data: "%%%"}, httpCode: 400, message: "Invalid data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFileService(t)

			_, err := f.service.Upload(ctx, uuid.New(), tt.input)
			requireMessage(t, err, tt.httpCode, tt.message)
		})
	}
}

func TestFileService_Upload_ParentChecksRunBeforeWrites(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("parent not found", func(t *testing.T) {
		f := createTestFileService(t)
		parentID := uuid.New()
		f.fileRepo.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrFileNotFound)

		_, err := f.service.Upload(ctx, ownerID, &usecase.UploadInput{Name: "n", Type: "file", Data: encode("x"), ParentID: &parentID})
		requireMessage(t, err, 400, "Parent not found")
	})

	t.Run("parent is not a folder", func(t *testing.T) {
		f := createTestFileService(t)
		parent := &entity.File{ID: uuid.New(), OwnerID: ownerID, Type: entity.FileTypeFile, StorageRef: "ref"}
		f.fileRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)

		_, err := f.service.Upload(ctx, ownerID, &usecase.UploadInput{Name: "n", Type: "folder", ParentID: &parent.ID})
		requireMessage(t, err, 400, "Parent is not a folder")
	})
}

func TestFileService_Upload_StorageFailure(t *testing.T) {
	f := createTestFileService(t)
	ctx := context.Background()

	f.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.service.Upload(ctx, uuid.New(), &usecase.UploadInput{Name: "n", Type: "file", Data: encode("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrStorageWriteFailed))
}

func TestFileService_Show_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	file := &entity.File{ID: uuid.New(), OwnerID: ownerID, Type: entity.FileTypeFile, StorageRef: "ref", IsPublic: true}

	t.Run("owner", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, file.ID).Return(file, nil)

		got, err := f.service.Show(ctx, ownerID, file.ID)
		require.NoError(t, err)
		assert.Equal(t, file, got)
	})

	t.Run("other user gets not found even for public files", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, file.ID).Return(file, nil)

		_, err := f.service.Show(ctx, uuid.New(), file.ID)
		requireMessage(t, err, 404, "Not found")
	})

	t.Run("unknown id", func(t *testing.T) {
		f := createTestFileService(t)
		missing := uuid.New()
		f.fileRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrFileNotFound)

		_, err := f.service.Show(ctx, ownerID, missing)
		requireMessage(t, err, 404, "Not found")
	})
}

func TestFileService_List_Pagination(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	parentID := uuid.New()
	files := []*entity.File{{ID: uuid.New(), OwnerID: ownerID, ParentID: &parentID}}

	for _, page := range []int{-1, 0} {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().ListByOwnerAndParent(ctx, ownerID, &parentID, 0, access.PageSize).Return(files, nil)

		got, err := f.service.List(ctx, ownerID, &parentID, page)
		require.NoError(t, err)
		assert.Equal(t, files, got)
	}

	f := createTestFileService(t)
	f.fileRepo.EXPECT().ListByOwnerAndParent(ctx, ownerID, (*uuid.UUID)(nil), 40, access.PageSize).Return([]*entity.File{}, nil)

	got, err := f.service.List(ctx, ownerID, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileService_PublishUnpublish(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	file := &entity.File{ID: uuid.New(), OwnerID: ownerID, Type: entity.FileTypeFile, StorageRef: "ref"}

	f := createTestFileService(t)
	f.fileRepo.EXPECT().FindByID(ctx, file.ID).Return(file, nil)
	published := *file
	published.IsPublic = true
	f.fileRepo.EXPECT().SetPublic(ctx, file.ID, true).Return(&published, nil)

	got, err := f.service.Publish(ctx, ownerID, file.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPublic)

	f = createTestFileService(t)
	f.fileRepo.EXPECT().FindByID(ctx, file.ID).Return(&published, nil)
	f.fileRepo.EXPECT().SetPublic(ctx, file.ID, false).Return(file, nil)

	got, err = f.service.Unpublish(ctx, ownerID, file.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublic)

	f = createTestFileService(t)
	f.fileRepo.EXPECT().FindByID(ctx, file.ID).Return(file, nil)

	_, err = f.service.Publish(ctx, uuid.New(), file.ID)
	requireMessage(t, err, 404, "Not found")
}

func TestFileService_Content(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	publicFile := &entity.File{ID: uuid.New(), OwnerID: ownerID, Name: "child.txt", Type: entity.FileTypeFile, StorageRef: "ref-1", IsPublic: true}
	privateFile := &entity.File{ID: uuid.New(), OwnerID: ownerID, Name: "secret.txt", Type: entity.FileTypeFile, StorageRef: "ref-2"}
	publicFolder := &entity.File{ID: uuid.New(), OwnerID: ownerID, Name: "dir", Type: entity.FileTypeFolder, IsPublic: true}

	t.Run("anonymous reads public file", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, publicFile.ID).Return(publicFile, nil)
		f.storage.EXPECT().Get(ctx, "ref-1").Return([]byte("hi"), nil)

		content, err := f.service.Content(ctx, uuid.Nil, publicFile.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("hi"), content.Data)
		assert.Contains(t, content.ContentType, "text/plain")
	})

	t.Run("anonymous cannot read private file", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, privateFile.ID).Return(privateFile, nil)

		_, err := f.service.Content(ctx, uuid.Nil, privateFile.ID, 0)
		requireMessage(t, err, 404, "Not found")
	})

	t.Run("other user cannot read private file", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, privateFile.ID).Return(privateFile, nil)

		_, err := f.service.Content(ctx, uuid.New(), privateFile.ID, 0)
		requireMessage(t, err, 404, "Not found")
	})

	t.Run("owner reads private file", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, privateFile.ID).Return(privateFile, nil)
		f.storage.EXPECT().Get(ctx, "ref-2").Return([]byte("s"), nil)

		_, err := f.service.Content(ctx, ownerID, privateFile.ID, 0)
		require.NoError(t, err)
	})

	t.Run("folder has no content", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, publicFolder.ID).Return(publicFolder, nil)

		_, err := f.service.Content(ctx, ownerID, publicFolder.ID, 0)
		requireMessage(t, err, 400, "A folder doesn't have content")
	})

	t.Run("thumbnail size", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, publicFile.ID).Return(publicFile, nil)
		f.storage.EXPECT().Get(ctx, "ref-1_250").Return([]byte("small"), nil)

		content, err := f.service.Content(ctx, uuid.Nil, publicFile.ID, 250)
		require.NoError(t, err)
		assert.Equal(t, []byte("small"), content.Data)
	})

	t.Run("thumbnail type follows its bytes", func(t *testing.T) {
		webp := &entity.File{ID: uuid.New(), OwnerID: ownerID, Name: "photo.webp", Type: entity.FileTypeImage, StorageRef: "ref-3", IsPublic: true}
		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, webp.ID).Return(webp, nil)
		f.storage.EXPECT().Get(ctx, "ref-3_100").Return(png, nil)

		content, err := f.service.Content(ctx, uuid.Nil, webp.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, "image/png", content.ContentType)
	})

	t.Run("unsupported size", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, publicFile.ID).Return(publicFile, nil)

		_, err := f.service.Content(ctx, uuid.Nil, publicFile.ID, 300)
		requireMessage(t, err, 404, "Not found")
	})

	t.Run("missing blob", func(t *testing.T) {
		f := createTestFileService(t)
		f.fileRepo.EXPECT().FindByID(ctx, publicFile.ID).Return(publicFile, nil)
		f.storage.EXPECT().Get(ctx, "ref-1_500").Return(nil, service.ErrBlobNotFound)

		_, err := f.service.Content(ctx, uuid.Nil, publicFile.ID, 500)
		requireMessage(t, err, 404, "Not found")
	})
}

func TestDetectContentType_FallsBackToSniffing(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	assert.Equal(t, "image/png", detectContentType("no-extension", png))
	assert.Equal(t, "image/png", detectContentType("a.png", nil))
}
