// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/utils"
	"github.com/MKhiriev/go-rich-presence/models"
)

func (h *Handler) getPresence(w http.ResponseWriter, r *http.Request) {
	h.respondStatus(w, r, "getPresence", h.services.PresenceService.Status)
}

func (h *Handler) startPresence(w http.ResponseWriter, r *http.Request) {
	h.respondStatus(w, r, "startPresence", h.services.PresenceService.Start)
}

func (h *Handler) stopPresence(w http.ResponseWriter, r *http.Request) {
	h.respondStatus(w, r, "stopPresence", h.services.PresenceService.Stop)
}

func (h *Handler) patchPresenceConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var patch models.PresenceConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.patchPresenceConfig").Msg("error decoding patch")
		h.writeError(w, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	if patch.IsEmpty() {
		h.writeError(w, ErrEmptyPatch)
		return
	}

	h.respondStatus(w, r, "patchPresenceConfig", func(ctx context.Context) (models.PresenceStatus, error) {
		return h.services.PresenceService.ApplyPatch(ctx, patch)
	})
}

func (h *Handler) respondStatus(w http.ResponseWriter, r *http.Request, name string, call func(ctx context.Context) (models.PresenceStatus, error)) {
	log := logger.FromRequest(r)

	status, err := call(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler."+name).Msg("presence request failed")
		h.writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, status, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler."+name).Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFromError(err))
}
