package repository

import "context"

// HealthChecker reports whether the persistence backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
