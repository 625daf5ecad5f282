// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/metrics"
)

// maxWriteAttempts bounds how often a Retryable write is attempted.
const maxWriteAttempts = 3

var writeRetryDelay = 50 * time.Millisecond

// settingsRepository is the SQL-backed implementation of [SettingsStore].
// Every value lives in a single row of the "settings" table.
type settingsRepository struct {
	db     *DB
	logger *logger.Logger

	mu     sync.RWMutex
	closed bool
}

// NewSettingsRepository constructs a [SettingsStore] on top of an opened and
// migrated [DB].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) Has(ctx context.Context, key string) (bool, error) {
	if err := r.checkOpen(); err != nil {
		return false, err
	}

	query, args, err := countSettingQuery(r.db.builder(), key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Err(err).Str("func", "*settingsRepository.Has").Str("key", key).Msg("error counting setting")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}

	return count > 0, nil
}

func (r *settingsRepository) GetString(ctx context.Context, key string) (string, error) {
	if err := r.checkOpen(); err != nil {
		return "", err
	}

	query, args, err := selectSettingQuery(r.db.builder(), key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	case err != nil:
		r.logger.Err(err).Str("func", "*settingsRepository.GetString").Str("key", key).Msg("error reading setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}

	return value, nil
}

func (r *settingsRepository) SetString(ctx context.Context, key, value string) error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	query, args, err := upsertSettingQuery(r.db.builder(), key, value, time.Now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		r.logger.Err(err).
			Str("func", "*settingsRepository.SetString").
			Str("key", key).
			Int("attempt", attempt).
			Msg("error writing setting")

		if attempt >= maxWriteAttempts || r.db.classify(err) != Retryable {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.wrapError(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(writeRetryDelay):
			metrics.SettingsWriteRetriesTotal.Inc()
		}
	}
}

func (r *settingsRepository) GetInt(ctx context.Context, key string) (int, error) {
	raw, err := r.GetString(ctx, key)
	if err != nil {
		return 0, err
	}
	return parseIntSetting(key, raw)
}

func (r *settingsRepository) SetInt(ctx context.Context, key string, value int) error {
	return r.SetString(ctx, key, strconv.Itoa(value))
}

func (r *settingsRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}

func (r *settingsRepository) checkOpen() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return ErrStoreClosed
	}
	return nil
}
