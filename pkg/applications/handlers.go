// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/authentication"
)

type SubmitRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	Message    string `json:"message" validate:"max=2000"`
}

type ReviewRequest struct {
	Decision types.ApplicationStatus `json:"decision" validate:"required"`
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/applications", a.list)
	mux.Post("/applications", a.submit)
	mux.Post("/applications/{id}/review", a.review)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
		return
	}

	var (
		applications []*types.Application
		err          error
	)

	switch {
	case principal.IsLandlord():
		applications, err = a.service.ListForLandlord(r.Context(), r.URL.Query().Get("property_id"))
	case principal.IsTenant():
		applications, err = a.service.ListForTenant(r.Context())
	default:
		httptypes.WriteError(w, http.StatusForbidden, "unknown role")
		return
	}

	if err != nil {
		a.error(w, err, "failed to list applications")
		return
	}

	httptypes.WriteData(w, http.StatusOK, applications)
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	application, err := a.service.Submit(r.Context(), req.PropertyID, req.Message)
	if err != nil {
		a.error(w, err, "failed to submit application")
		return
	}

	httptypes.WriteData(w, http.StatusCreated, application)
}

func (a *API) review(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Review(r.Context(), chi.URLParam(r, "id"), req.Decision)
	if err != nil {
		a.error(w, err, "failed to "+verb(req.Decision)+" application")
		return
	}

	httptypes.WriteData(w, http.StatusOK, result)
}

func (a *API) error(w http.ResponseWriter, err error, fallback string) {
	var status int

	switch {
	case errors.Is(err, ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, ErrInvalidDecision):
		status = http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, ErrApplicationNotFound), errors.Is(err, ErrPropertyNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrAlreadyDecided), errors.Is(err, ErrPropertyUnavailable), errors.Is(err, ErrDuplicateApplication):
		status = http.StatusConflict
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		httptypes.WriteError(w, http.StatusInternalServerError, fallback)
		return
	}

	httptypes.WriteError(w, status, err.Error())
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
