// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

type memorySettingsStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemorySettingsStore returns a process-local [SettingsStore]. Values are
// kept in their persisted string form so that it behaves like the SQL store.
func NewMemorySettingsStore() SettingsStore {
	return &memorySettingsStore{values: make(map[string]string)}
}

func (m *memorySettingsStore) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return false, ErrStoreClosed
	}
	_, ok := m.values[key]
	return ok, nil
}

func (m *memorySettingsStore) GetString(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}
	return v, nil
}

func (m *memorySettingsStore) SetString(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.values[key] = value
	return nil
}

func (m *memorySettingsStore) GetInt(ctx context.Context, key string) (int, error) {
	raw, err := m.GetString(ctx, key)
	if err != nil {
		return 0, err
	}
	return parseIntSetting(key, raw)
}

func (m *memorySettingsStore) SetInt(ctx context.Context, key string, value int) error {
	return m.SetString(ctx, key, strconv.Itoa(value))
}

func (m *memorySettingsStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

func parseIntSetting(key, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSettingValue, key, raw)
	}
	return v, nil
}
