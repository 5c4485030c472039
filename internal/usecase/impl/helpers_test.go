package impl

import (
	"io"
	"log/slog"

	"lightmap/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Marker: &config.MarkerConfig{
			MergeRadiusMeters: 20,
			MaxMergeAttempts:  3,
			LockZoom:          18,
		},
	}
}
