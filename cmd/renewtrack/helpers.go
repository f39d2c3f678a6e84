package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/renewtrack/renewtrack/internal/config"
	"github.com/renewtrack/renewtrack/internal/ledger"
	"github.com/renewtrack/renewtrack/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/renewtrack/renewtrack.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initLedger opens storage and seeds the ledger from the persisted slot.
// The returned cleanup closes the store and must always be called.
func initLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}

	l := ledger.New(store)

	payload, err := store.LoadState(ctx)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load saved state: %w", err)
	}
	if payload != nil {
		l.ApplyPayload(ctx, payload, true)
	}

	if pref, prefErr := store.LoadSortPreference(ctx); prefErr == nil && pref != nil {
		l.RestoreSortPreference(*pref)
	}

	return l, cleanup, nil
}
