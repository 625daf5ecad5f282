// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/models"
)

func newTestControlClient(t *testing.T, serverURL string) ControlClient {
	t.Helper()
	c, err := NewHTTPControlClient(config.ControlConfig{BaseURL: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeStatus(t *testing.T, w http.ResponseWriter, status models.PresenceStatus) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(status))
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestStatus_Success(t *testing.T) {
	want := models.PresenceStatus{
		State:  models.PresenceActive,
		Button: models.DefaultButtonVariants().Update,
		Config: models.PresenceConfig{AppID: "42", Status: "Playing"},
		LastResult: &models.CallbackResult{
			Kind:   models.CallbackStatus,
			Result: models.ResultOk,
			At:     time.Unix(100, 0).UTC(),
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/presence/", r.URL.Path)
		writeStatus(t, w, want)
	}))
	defer srv.Close()

	got, err := newTestControlClient(t, srv.URL).Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatus_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "store unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestControlClient(t, srv.URL).Status(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "store unavailable")
}

// ── Patch ────────────────────────────────────────────────────────────────────

func TestPatch_SendsOnlySetFields(t *testing.T) {
	details := "Ranked"
	timer := true

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/presence/config", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"details": "Ranked", "timer_enabled": true}, body)

		writeStatus(t, w, models.PresenceStatus{
			State:  models.PresenceInactive,
			Config: models.PresenceConfig{Details: details, TimerEnabled: timer},
		})
	}))
	defer srv.Close()

	got, err := newTestControlClient(t, srv.URL).Patch(context.Background(), models.PresenceConfigPatch{
		Details:      &details,
		TimerEnabled: &timer,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ranked", got.Config.Details)
	assert.True(t, got.Config.TimerEnabled)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestStart_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/presence/start", r.URL.Path)
		writeStatus(t, w, models.PresenceStatus{State: models.PresenceActive, SessionID: "s-1"})
	}))
	defer srv.Close()

	got, err := newTestControlClient(t, srv.URL).Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PresenceActive, got.State)
	assert.Equal(t, "s-1", got.SessionID)
}

func TestStart_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid configuration: app id", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestControlClient(t, srv.URL).Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestStop_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/presence/stop", r.URL.Path)
		writeStatus(t, w, models.PresenceStatus{State: models.PresenceInactive})
	}))
	defer srv.Close()

	got, err := newTestControlClient(t, srv.URL).Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PresenceInactive, got.State)
}

func TestStop_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestControlClient(t, srv.URL).Stop(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestControlClient(t, srv.URL).Status(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestControlClient(t, url).Status(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status request")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8765", want: "http://localhost:8765"},
		{in: "http://127.0.0.1:8765/", want: "http://127.0.0.1:8765"},
		{in: "  https://example.com  ", want: "https://example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPControlClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPControlClient(config.ControlConfig{}, logger.Nop())
	assert.Error(t, err)
}
