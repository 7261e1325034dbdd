// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/kratos"
	"github.com/canonical/property-service/internal/logging"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/registration", a.registration)
	mux.Post("/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("failed to decode registration payload: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a.logger.Debugf("registration hook for identity %s", identity.ID)

	profile, err := kratos.ProfileFromTraits(identity.ID, identity.Traits)
	if err != nil {
		a.logger.Errorf("failed to decode registration traits: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid identity traits")
		return
	}

	if err := a.service.HandleRegistration(r.Context(), profile); err != nil {
		if errors.Is(err, ErrMissingIdentity) || errors.Is(err, ErrInvalidRole) || errors.Is(err, ErrUndeliverableEmail) {
			_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a.logger.Errorf("failed to handle registration: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to handle registration")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("failed to decode token hook payload: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		a.logger.Errorf("failed to handle token hook: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to handle token hook")
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, resp)
}
