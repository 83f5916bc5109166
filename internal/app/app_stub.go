//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"doom-fire/internal/config"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("window host requires building with the 'ebiten' tag")

// Run reports that the window host is unavailable.
func Run(*config.Config, *slog.Logger) error {
	return ErrNoWindow
}
