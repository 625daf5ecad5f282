// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
)

// MemoryDSN selects the in-memory settings store.
const MemoryDSN = ":memory:"

// NewSettingsStore picks a backend from the DSN:
//   - ":memory:" gives a process-local store
//   - "postgres://" and "postgresql://" give PostgreSQL via pgx
//   - anything else is treated as a SQLite file path
//
// SQL backends are migrated before the store is returned.
func NewSettingsStore(ctx context.Context, cfg config.StorageSettings, log *logger.Logger) (SettingsStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == MemoryDSN:
		log.Debug().Msg("using in-memory settings store")
		return NewMemorySettingsStore(), nil
	case dsn == "":
		return nil, fmt.Errorf("%w: empty DSN", ErrStoreUnavailable)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewSettingsStore").Msg("error migrating settings database")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreNotMigrated, err)
	}

	return NewSettingsRepository(db, log), nil
}
