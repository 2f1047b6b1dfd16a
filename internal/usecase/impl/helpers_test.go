package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			SessionTTL: 24 * time.Hour,
		},
		Worker: &config.WorkerConfig{
			ThumbnailWidths: []int{500, 250, 100},
		},
	}
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
