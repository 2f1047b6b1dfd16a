package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/middleware"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/router/handler"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/access"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/auth"
	logs "github.com/IbrahimMurad/alx-files-manager/internal/infra/log"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/pubsub"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/storage"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		pubsub.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
		storage.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenGenerator,
			access.NewEngine,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAppService,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewFileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAppHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewFileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				api.NewSessionCleaner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
