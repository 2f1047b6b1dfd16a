package impl

import (
	"context"
	"log/slog"

	"github.com/IbrahimMurad/alx-files-manager/config"
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

// jobService implements the JobUsecase interface.
type jobService struct {
	userRepo        repository.UserRepository
	fileRepo        repository.FileRepository
	storage         service.BlobStorage
	thumbnailer     service.Thumbnailer
	thumbnailWidths []int
	logger          *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	FileRepo    repository.FileRepository
	Storage     service.BlobStorage
	Thumbnailer service.Thumbnailer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		userRepo:        params.UserRepo,
		fileRepo:        params.FileRepo,
		storage:         params.Storage,
		thumbnailer:     params.Thumbnailer,
		thumbnailWidths: params.Config.Worker.ThumbnailWidths,
		logger:          params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateThumbnails resizes the user's image to every configured width.
func (srv *jobService) GenerateThumbnails(ctx context.Context, fileID, userID uuid.UUID) error {
	if fileID == uuid.Nil {
		return domainerrors.NewMissingFieldError("fileId")
	}
	if userID == uuid.Nil {
		return domainerrors.NewMissingFieldError("userId")
	}

	file, err := srv.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "file not found")
		}

		return errors.Wrap(err, "failed to find file")
	}
	if !file.IsOwnedBy(userID) {
		return errors.Wrap(domainerrors.ErrNotFound, "file not found")
	}

	if file.Type != entity.FileTypeImage {
		srv.log(ctx).Info("Skipping thumbnails for non-image file",
			slog.Any("file_id", fileID),
			slog.String("type", file.Type.String()),
		)

		return nil
	}

	src, err := srv.storage.Get(ctx, file.StorageRef)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "image content not found")
		}

		return errors.Wrap(err, "failed to read image")
	}

	for _, width := range srv.thumbnailWidths {
		thumbnail, err := srv.thumbnailer.Resize(src, width)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidData, err.Error())
		}

		if err := srv.storage.Put(ctx, ThumbnailKey(file.StorageRef, width), thumbnail); err != nil {
			return errors.Wrapf(err, "failed to store %dpx thumbnail", width)
		}
	}

	srv.log(ctx).Info("Thumbnails generated",
		slog.Any("file_id", fileID),
		slog.Any("widths", srv.thumbnailWidths),
	)

	return nil
}

// Welcome logs a greeting for the new user.
func (srv *jobService) Welcome(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.NewMissingFieldError("userId")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to find user")
	}

	srv.log(ctx).Info("Welcome " + user.Email)

	return nil
}
