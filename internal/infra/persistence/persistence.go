// Package persistence selects the repository backend named by configuration.
package persistence

import (
	"log/slog"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/constants"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"
	"github.com/IbrahimMurad/alx-files-manager/internal/errors"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence/memory"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence/mongo"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories groups the repositories of one backend for the fx graph.
type Repositories struct {
	fx.Out

	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Files    repository.FileRepository
	Health   repository.HealthChecker
}

// New opens the configured backend and returns its repositories.
func New(params Params) (Repositories, error) {
	driver := params.Config.Persistence.Driver
	params.Logger.Info("Persistence backend selected", slog.String("driver", driver))

	switch driver {
	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:    postgres.NewUserRepository(db),
			Sessions: postgres.NewSessionRepository(db),
			Files:    postgres.NewFileRepository(db),
			Health:   postgres.NewHealthChecker(db),
		}, nil

	case constants.PersistenceDriverMongo, "":
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:    mongo.NewUserRepository(db),
			Sessions: mongo.NewSessionRepository(db),
			Files:    mongo.NewFileRepository(db),
			Health:   mongo.NewHealthChecker(db),
		}, nil

	case constants.PersistenceDriverMemory:
		return NewMemory(), nil

	default:
		return Repositories{}, errors.Errorf("unsupported persistence driver: %s", driver)
	}
}

// NewMemory returns a fresh set of in-memory repositories.
func NewMemory() Repositories {
	return Repositories{
		Users:    memory.NewUserRepository(),
		Sessions: memory.NewSessionRepository(),
		Files:    memory.NewFileRepository(),
		Health:   memory.NewHealthChecker(),
	}
}
