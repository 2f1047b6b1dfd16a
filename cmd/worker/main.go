package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/worker"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/worker/handler"
	logs "github.com/IbrahimMurad/alx-files-manager/internal/infra/log"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/storage"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/thumbnail"
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
		injectHandler(),
		injectDelivery(),
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
			thumbnail.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewJobService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
