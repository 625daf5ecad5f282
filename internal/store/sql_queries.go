// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	settingsTable      = "settings"
	settingKeyColumn   = "setting_key"
	settingValueColumn = "setting_value"
	updatedAtColumn    = "updated_at"

	upsertSettingSuffix = "ON CONFLICT (" + settingKeyColumn + ") DO UPDATE SET " +
		settingValueColumn + " = excluded." + settingValueColumn + ", " +
		updatedAtColumn + " = excluded." + updatedAtColumn
)

func selectSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(settingValueColumn).
		From(settingsTable).
		Where(sq.Eq{settingKeyColumn: key}).
		ToSql()
}

func countSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(settingsTable).
		Where(sq.Eq{settingKeyColumn: key}).
		ToSql()
}

func upsertSettingQuery(b sq.StatementBuilderType, key, value string, now time.Time) (string, []any, error) {
	return b.Insert(settingsTable).
		Columns(settingKeyColumn, settingValueColumn, updatedAtColumn).
		Values(key, value, now.UTC()).
		Suffix(upsertSettingSuffix).
		ToSql()
}
