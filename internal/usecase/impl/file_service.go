package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"mime"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/config"
	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/access"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fileService implements the FileUsecase interface.
type fileService struct {
	fileRepo        repository.FileRepository
	engine          *access.Engine
	storage         service.BlobStorage
	jobs            service.JobSubmitter
	thumbnailWidths []int
	now             func() time.Time
	logger          *slog.Logger
}

// FileServiceParams holds dependencies for FileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	FileRepo repository.FileRepository
	Engine   *access.Engine
	Storage  service.BlobStorage
	Jobs     service.JobSubmitter
	Config   *config.Config
	Logger   *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	return &fileService{
		fileRepo:        params.FileRepo,
		engine:          params.Engine,
		storage:         params.Storage,
		jobs:            params.Jobs,
		thumbnailWidths: params.Config.Worker.ThumbnailWidths,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload validates the input, checks the parent, stores the content and then the metadata.
// Image uploads queue a thumbnail job; a failed submission keeps the upload.
func (srv *fileService) Upload(ctx context.Context, ownerID uuid.UUID, input *usecase.UploadInput) (*entity.File, error) {
	if input == nil || input.Name == "" {
		return nil, domainerrors.NewMissingFieldError("name")
	}

	fileType, ok := entity.ParseFileType(input.Type)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidFileType)
	}

	var data []byte
	if !fileType.IsFolder() {
		if input.Data == "" {
			return nil, domainerrors.NewMissingFieldError("data")
		}

		decoded, err := base64.StdEncoding.DecodeString(input.Data)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidData, err.Error())
		}
		data = decoded
	}

	if _, err := srv.engine.AuthorizeParent(ctx, ownerID, input.ParentID); err != nil {
		return nil, err
	}

	now := srv.now()
	file := &entity.File{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      input.Name,
		Type:      fileType,
		ParentID:  input.ParentID,
		IsPublic:  input.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if !fileType.IsFolder() {
		file.StorageRef = uuid.NewString()
		if err := srv.storage.Put(ctx, file.StorageRef, data); err != nil {
			srv.log(ctx).Error("Failed to write file content",
				slog.String("storage_ref", file.StorageRef),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(domainerrors.ErrStorageWriteFailed, err.Error())
		}
	}

	if err := srv.fileRepo.Create(ctx, file); err != nil {
		return nil, errors.Wrap(err, "failed to create file")
	}

	srv.log(ctx).Info("File uploaded",
		slog.Any("file_id", file.ID),
		slog.String("type", file.Type.String()),
		slog.Int("size", len(data)),
	)

	if file.Type == entity.FileTypeImage {
		job := &service.Job{
			Type:      service.JobTypeThumbnail,
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			FileID:    file.ID,
			UserID:    ownerID,
		}
		if err := srv.jobs.Submit(ctx, job); err != nil {
			srv.log(ctx).Warn("Failed to submit thumbnail job", slog.Any("file_id", file.ID), slog.Any("error", err))
		}
	}

	return file, nil
}

// Show returns a node owned by the user.
func (srv *fileService) Show(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error) {
	return srv.findOwned(ctx, userID, fileID)
}

// List returns one page of the user's nodes placed directly under parentID.
func (srv *fileService) List(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID, page int) ([]*entity.File, error) {
	files, err := srv.fileRepo.ListByOwnerAndParent(ctx, userID, parentID, access.PageOffset(page), access.PageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}

	return files, nil
}

// Publish makes a node public.
func (srv *fileService) Publish(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error) {
	return srv.setPublic(ctx, userID, fileID, true)
}

// Unpublish makes a node private.
func (srv *fileService) Unpublish(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error) {
	return srv.setPublic(ctx, userID, fileID, false)
}

// Content reads the bytes of a node visible to the caller.
func (srv *fileService) Content(ctx context.Context, userID, fileID uuid.UUID, size int) (*usecase.FileContent, error) {
	file, err := srv.find(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := srv.engine.AuthorizeContentAccess(userID, file); err != nil {
		return nil, err
	}
	if err := srv.engine.RejectFolderContent(file); err != nil {
		return nil, err
	}

	key := file.StorageRef
	if size > 0 {
		if !slices.Contains(srv.thumbnailWidths, size) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "unsupported size %d", size)
		}
		key = ThumbnailKey(file.StorageRef, size)
	}

	data, err := srv.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStorageReadFailed, key)
		}

		return nil, errors.Wrap(err, "failed to read file content")
	}

	contentType := detectContentType(file.Name, data)
	if size > 0 {
		// Thumbnails may be re-encoded into another format than the upload's extension names.
		contentType = mimetype.Detect(data).String()
	}

	return &usecase.FileContent{
		Name:        file.Name,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (srv *fileService) setPublic(ctx context.Context, userID, fileID uuid.UUID, isPublic bool) (*entity.File, error) {
	if _, err := srv.findOwned(ctx, userID, fileID); err != nil {
		return nil, err
	}

	file, err := srv.fileRepo.SetPublic(ctx, fileID, isPublic)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to update file visibility")
	}

	srv.log(ctx).Info("File visibility changed", slog.Any("file_id", fileID), slog.Bool("is_public", isPublic))

	return file, nil
}

// findOwned reports nodes of other users as not found.
func (srv *fileService) findOwned(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error) {
	file, err := srv.find(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := srv.engine.AuthorizeOwnerAccess(userID, file); err != nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, err.Error())
	}

	return file, nil
}

func (srv *fileService) find(ctx context.Context, fileID uuid.UUID) (*entity.File, error) {
	file, err := srv.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to find file")
	}

	return file, nil
}

// ThumbnailKey is the storage key of the thumbnail of the given width.
func ThumbnailKey(storageRef string, width int) string {
	return storageRef + "_" + strconv.Itoa(width)
}

// detectContentType prefers the type registered for the name's extension and falls back to sniffing the bytes.
func detectContentType(name string, data []byte) string {
	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		return contentType
	}

	return mimetype.Detect(data).String()
}
