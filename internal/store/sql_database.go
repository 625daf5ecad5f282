// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/migrations"
)

// SQL dialect names, as understood by goose.
const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB wraps a *sql.DB together with the dialect specific pieces the settings
// repository needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	mapError           func(error) error
	logger             *logger.Logger
}

// Migrate brings the settings schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// classify falls back to NonRetryable when no classificator is configured.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// wrapError attaches store sentinels (unavailable, not migrated) to driver
// errors.
func (db *DB) wrapError(err error) error {
	if err == nil || db.mapError == nil {
		return err
	}
	return db.mapError(err)
}
