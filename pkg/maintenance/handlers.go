// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/types"
)

type SubmitRequest struct {
	PropertyID  string `json:"property_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"omitempty,oneof=plumbing electrical hvac appliances other"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type StatusRequest struct {
	Status types.MaintenanceStatus `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/maintenance", a.list)
	mux.Post("/maintenance", a.submit)
	mux.Patch("/maintenance/{id}", a.updateStatus)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	requests, err := a.service.List(r.Context(), r.URL.Query().Get("property_id"))
	if err != nil {
		a.error(w, err, "failed to list maintenance requests")
		return
	}

	httptypes.WriteData(w, http.StatusOK, requests)
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, priority := req.Category, req.Priority
	if category == "" {
		category = "other"
	}
	if priority == "" {
		priority = "medium"
	}

	created, err := a.service.Submit(r.Context(), &types.MaintenanceRequest{
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Priority:    priority,
	})
	if err != nil {
		a.error(w, err, "failed to submit maintenance request")
		return
	}

	httptypes.WriteData(w, http.StatusCreated, created)
}

func (a *API) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := a.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		a.error(w, err, "failed to update maintenance request")
		return
	}

	httptypes.WriteData(w, http.StatusOK, updated)
}

func (a *API) error(w http.ResponseWriter, err error, fallback string) {
	var status int

	switch {
	case errors.Is(err, ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotRenting):
		status = http.StatusForbidden
	case errors.Is(err, ErrPropertyNotFound), errors.Is(err, ErrRequestNotFound):
		status = http.StatusNotFound
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
