package postgres

import (
	"context"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type healthChecker struct {
	db *gorm.DB
}

// NewHealthChecker reports whether the PostgreSQL connection pool can reach the server.
func NewHealthChecker(db *gorm.DB) repository.HealthChecker {
	return &healthChecker{db: db}
}

func (h *healthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB.PingContext(ctx)
}
