package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type appService struct {
	health   repository.HealthChecker
	userRepo repository.UserRepository
	fileRepo repository.FileRepository
	storage  service.BlobStorage
	logger   *slog.Logger
}

// AppServiceParams holds dependencies for AppService, injected by Fx.
type AppServiceParams struct {
	fx.In

	Health   repository.HealthChecker
	UserRepo repository.UserRepository
	FileRepo repository.FileRepository
	Storage  service.BlobStorage
	Logger   *slog.Logger
}

// NewAppService is the constructor for appService.
func NewAppService(params AppServiceParams) usecase.AppUsecase {
	return &appService{
		health:   params.Health,
		userRepo: params.UserRepo,
		fileRepo: params.FileRepo,
		storage:  params.Storage,
		logger:   params.Logger,
	}
}

func (srv *appService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Status pings the database and the blob storage.
func (srv *appService) Status(ctx context.Context) *usecase.Status {
	status := &usecase.Status{DB: true, Storage: true}

	if err := srv.health.Ping(ctx); err != nil {
		srv.log(ctx).Warn("Database is not reachable", slog.Any("error", err))
		status.DB = false
	}
	if err := srv.storage.Ping(ctx); err != nil {
		srv.log(ctx).Warn("Storage is not reachable", slog.Any("error", err))
		status.Storage = false
	}

	return status
}

// Stats counts users and files.
func (srv *appService) Stats(ctx context.Context) (*usecase.Stats, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	files, err := srv.fileRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count files")
	}

	return &usecase.Stats{Users: users, Files: files}, nil
}
