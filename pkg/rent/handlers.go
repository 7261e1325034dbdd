// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
)

type PayRequest struct {
	Method string `json:"method" validate:"omitempty,oneof=credit_card debit_card bank_transfer"`
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/rent", a.list)
	mux.Post("/rent/{id}/pay", a.pay)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	statements, err := a.service.ListForTenant(r.Context())
	if err != nil {
		a.error(w, err, "failed to list rent payments")
		return
	}

	httptypes.WriteData(w, http.StatusOK, statements)
}

func (a *API) pay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	obligation, err := a.service.Pay(r.Context(), chi.URLParam(r, "id"), req.Method)
	if err != nil {
		a.error(w, err, "failed to pay rent")
		return
	}

	httptypes.WriteData(w, http.StatusOK, obligation)
}

func (a *API) error(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		httptypes.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidMethod):
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		httptypes.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrObligationNotFound):
		httptypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyPaid):
		httptypes.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		httptypes.WriteError(w, http.StatusInternalServerError, fallback)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
