// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/types"
)

type CreateRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Address     string               `json:"address" validate:"required,max=500"`
	Description string               `json:"description" validate:"max=5000"`
	Rent        float64              `json:"rent" validate:"gte=0"`
	Status      types.PropertyStatus `json:"status" validate:"omitempty,oneof=available maintenance"`
}

// UpdateRequest carries the fields to patch, absent fields are left as they are.
type UpdateRequest struct {
	Title       *string               `json:"title" validate:"omitnil,min=1,max=200"`
	Address     *string               `json:"address" validate:"omitnil,min=1,max=500"`
	Description *string               `json:"description" validate:"omitnil,max=5000"`
	Rent        *float64              `json:"rent" validate:"omitnil,gte=0"`
	Status      *types.PropertyStatus `json:"status" validate:"omitnil,oneof=available maintenance"`
}

func (u *UpdateRequest) property(id string) (*types.Property, []string) {
	p := &types.Property{ID: id}
	paths := make([]string, 0, 5)

	if u.Title != nil {
		p.Title = *u.Title
		paths = append(paths, "title")
	}
	if u.Address != nil {
		p.Address = *u.Address
		paths = append(paths, "address")
	}
	if u.Description != nil {
		p.Description = *u.Description
		paths = append(paths, "description")
	}
	if u.Rent != nil {
		p.Rent = *u.Rent
		paths = append(paths, "rent")
	}
	if u.Status != nil {
		p.Status = *u.Status
		paths = append(paths, "status")
	}

	return p, paths
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the routes that need an authenticated caller.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/properties", a.list)
	mux.Post("/properties", a.create)
	mux.Get("/properties/summary", a.summary)
	mux.Patch("/properties/{id}", a.update)
	mux.Delete("/properties/{id}", a.delete)
	mux.Delete("/properties/{id}/tenant", a.removeTenant)
}

// RegisterPublicEndpoints mounts the verification lookup, open to anyone
// holding a display id.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Get("/properties/verify/{displayID}", a.verify)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid page")
		return
	}

	size, err := queryInt(r, "size")
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid size")
		return
	}

	properties, err := a.service.List(r.Context(), page, size)
	if err != nil {
		a.error(w, err, "failed to list properties")
		return
	}

	httptypes.WriteData(w, http.StatusOK, properties)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := a.service.Create(r.Context(), &types.Property{
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		Rent:        req.Rent,
		Status:      req.Status,
	})
	if err != nil {
		a.error(w, err, "failed to create property")
		return
	}

	httptypes.WriteData(w, http.StatusCreated, property)
}

func (a *API) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.service.Summary(r.Context())
	if err != nil {
		a.error(w, err, "failed to summarize properties")
		return
	}

	httptypes.WriteData(w, http.StatusOK, summary)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, paths := req.property(chi.URLParam(r, "id"))
	if len(paths) == 0 {
		httptypes.WriteError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	property, err := a.service.Update(r.Context(), p, paths)
	if err != nil {
		a.error(w, err, "failed to update property")
		return
	}

	httptypes.WriteData(w, http.StatusOK, property)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.error(w, err, "failed to delete property")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeTenant(w http.ResponseWriter, r *http.Request) {
	property, err := a.service.RemoveTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, err, "failed to remove tenant")
		return
	}

	httptypes.WriteData(w, http.StatusOK, property)
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	verification, err := a.service.Verify(r.Context(), chi.URLParam(r, "displayID"))
	if err != nil {
		a.error(w, err, "failed to verify property")
		return
	}

	httptypes.WriteData(w, http.StatusOK, verification)
}

func (a *API) error(w http.ResponseWriter, err error, fallback string) {
	var status int

	switch {
	case errors.Is(err, ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, ErrInvalidProperty):
		status = http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, ErrPropertyNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrPropertyOccupied), errors.Is(err, ErrNoTenant):
		status = http.StatusConflict
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		httptypes.WriteError(w, http.StatusInternalServerError, fallback)
		return
	}

	httptypes.WriteError(w, status, err.Error())
}

func queryInt(r *http.Request, key string) (int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
