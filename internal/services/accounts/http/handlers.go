// Package http provides http transport for accounts
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"tzdetect/internal/modkit/httpkit"
	"tzdetect/internal/services/accounts/domain"
)

// Register mounts account endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{id}", h.get)

	// create or replace; 201 on create
	httpkit.PutJSON(r, "/{id}", h.put)

	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Load one account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} domain.Account "ok"
// @Failure 404 "not found"
// @Router /accounts/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

// @Summary Delete an account
// @Tags Accounts
// @Param id path string true "Account id"
// @Success 204 "deleted"
// @Failure 404 "not found"
// @Router /accounts/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Create or replace an account
// @Description Runs timezone detection before the write when TZDETECT_ON is set
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param payload body domain.SaveInput true "Account"
// @Success 200 {object} domain.Account "updated"
// @Success 201 {object} domain.Account "created"
// @Failure 415 "body is not application/json"
// @Router /accounts/{id} [put]
func (h *handlers) put(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	a, created, err := h.svc.Save(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		return nil, err
	}
	if created {
		return httpkit.Created(a), nil
	}
	return a, nil
}
