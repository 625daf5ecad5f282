// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/utils"
	"github.com/MKhiriev/go-rich-presence/models"
)

const (
	presenceStatusPath = "/api/presence/"
	presenceConfigPath = "/api/presence/config"
	presenceStartPath  = "/api/presence/start"
	presenceStopPath   = "/api/presence/stop"
)

type httpControlClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPControlClient constructs an HTTP/REST implementation of
// [ControlClient] pointed at cfg.BaseURL.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPControlClient(cfg config.ControlConfig, logger *logger.Logger) (ControlClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid control address: %w", err)
	}

	return &httpControlClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Status implements [ControlClient]. GET /api/presence/.
func (h *httpControlClient) Status(ctx context.Context) (models.PresenceStatus, error) {
	var status models.PresenceStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get(presenceStatusPath)
	if err != nil {
		return models.PresenceStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PresenceStatus{}, err
	}

	return status, nil
}

// Patch implements [ControlClient]. PATCH /api/presence/config with the
// patch as JSON body.
func (h *httpControlClient) Patch(ctx context.Context, patch models.PresenceConfigPatch) (models.PresenceStatus, error) {
	var status models.PresenceStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&status).
		Patch(presenceConfigPath)
	if err != nil {
		return models.PresenceStatus{}, fmt.Errorf("patch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PresenceStatus{}, err
	}

	return status, nil
}

// Start implements [ControlClient]. POST /api/presence/start.
func (h *httpControlClient) Start(ctx context.Context) (models.PresenceStatus, error) {
	return h.post(ctx, presenceStartPath)
}

// Stop implements [ControlClient]. POST /api/presence/stop.
func (h *httpControlClient) Stop(ctx context.Context) (models.PresenceStatus, error) {
	return h.post(ctx, presenceStopPath)
}

func (h *httpControlClient) post(ctx context.Context, path string) (models.PresenceStatus, error) {
	var status models.PresenceStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Post(path)
	if err != nil {
		return models.PresenceStatus{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("control request failed")
		return models.PresenceStatus{}, err
	}

	return status, nil
}
