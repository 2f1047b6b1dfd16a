package mongo

import (
	"context"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type healthChecker struct {
	client *mongo.Client
}

// NewHealthChecker reports whether the MongoDB primary is reachable.
func NewHealthChecker(db *mongo.Database) repository.HealthChecker {
	return &healthChecker{client: db.Client()}
}

func (h *healthChecker) Ping(ctx context.Context) error {
	return h.client.Ping(ctx, readpref.Primary())
}
