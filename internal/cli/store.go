package cli

import (
	"context"
	"fmt"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/config"
	"tasklist/internal/store"
)

// DefaultStoreFactory builds the store named by the backend setting: a file
// slot under the config directory, or a Google Tasks list.
func DefaultStoreFactory(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Settings.Backend {
	case config.BackendGoogleTasks:
		return googletasks.New(ctx, cfg, cfg.Log())
	case config.BackendFile, "":
		slot := store.NewFileSlot(cfg.DataPath())
		return store.NewLocal(slot,
			store.WithMode(cfg.Mode()),
			store.WithLogger(cfg.Log()),
		), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Settings.Backend)
	}
}
