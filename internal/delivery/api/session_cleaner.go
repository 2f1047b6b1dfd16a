package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase"

	"go.uber.org/fx"
)

// sessionCleaner periodically purges expired sessions from stores without native expiry.
type sessionCleaner struct {
	auth     usecase.AuthUsecase
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
}

// SessionCleanerParams holds dependencies for the session cleaner, injected by Fx.
type SessionCleanerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Auth   usecase.AuthUsecase
}

// NewSessionCleaner builds the background delivery that runs CleanupExpiredSessions.
func NewSessionCleaner(params SessionCleanerParams) delivery.Delivery {
	cleaner := newSessionCleaner(params.Auth, params.Cfg.Auth.CleanupInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: cleaner.shutdown,
	})

	return cleaner
}

func newSessionCleaner(auth usecase.AuthUsecase, interval time.Duration, logger *slog.Logger) *sessionCleaner {
	return &sessionCleaner{
		auth:     auth,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Serve runs cleanup rounds until the cleaner is stopped.
func (s *sessionCleaner) Serve(ctx context.Context) error {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Starting session cleaner", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *sessionCleaner) runOnce(ctx context.Context) {
	removed, err := s.auth.CleanupExpiredSessions(ctx)
	if err != nil {
		s.logger.Warn("Failed to clean up expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		s.logger.Info("Expired sessions removed", slog.Int64("count", removed))
	}
}

func (s *sessionCleaner) shutdown(ctx context.Context) error {
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
