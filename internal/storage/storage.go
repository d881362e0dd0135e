// Package storage opens the configured slot backend.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ganot/ticklist/internal/config"
	"github.com/ganot/ticklist/internal/fileslot"
	"github.com/ganot/ticklist/internal/repository"
	"github.com/ganot/ticklist/internal/sqlite"
)

// Open returns the slot repository selected by cfg together with a
// close function for the underlying resource.
func Open(cfg config.StorageConfig) (repository.SlotRepository, func() error, error) {
	switch cfg.Backend {
	case "file":
		return fileslot.New(cfg.Path), func() error { return nil }, nil
	case "sqlite":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewSlotRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
