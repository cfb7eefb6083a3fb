// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/barbersoft/account-service/internal/billing"
	"github.com/barbersoft/account-service/internal/http/types"
	"github.com/barbersoft/account-service/internal/i18n"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/pkg/authentication"
)

const maxWebhookBody = 64 << 10

type DeleteCompanyRequest struct {
	CompanyID string `json:"companyId"`
}

type PortalResponse struct {
	URL string `json:"url"`
}

type API struct {
	service ServiceInterface
	siteURL string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, siteURL string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		siteURL: strings.TrimRight(siteURL, "/"),
		tracer:  tracer,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the account routes, authn guards every route but the billing webhook.
func (a *API) RegisterEndpoints(mux *chi.Mux, authn func(http.Handler) http.Handler) {
	mux.With(authn).Post("/api/v0/admin/companies/delete", a.deleteCompany)
	mux.With(authn).Post("/api/v0/account/delete", a.deleteMyAccount)
	mux.With(authn).Post("/api/v0/billing/portal", a.billingPortal)
	mux.Post("/api/v0/webhooks/billing", a.billingWebhook)
}

func (a *API) deleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.deleteCompany")
	defer span.End()

	callerID, _ := authentication.UserIDFromContext(ctx)

	// an unreadable body is an empty company id, the caller is authorized first
	var req DeleteCompanyRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	err := a.service.DeleteCompany(ctx, callerID, strings.TrimSpace(req.CompanyID))
	switch {
	case err == nil:
		types.WriteSuccess(w, i18n.T(r, i18n.CompanyDeleted))
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, i18n.T(r, i18n.SuperAdminOnly))
	case errors.Is(err, ErrInvalidCompanyID):
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.CompanyIDRequired))
	case errors.Is(err, ErrCompanyNotFound):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.CompanyNotFound))
	case errors.Is(err, ErrNotCancelled):
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.OnlyCancelledAccounts))
	default:
		a.logger.Errorf("failed to delete company %s: %v", req.CompanyID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.DeleteCompanyFailed))
	}
}

func (a *API) deleteMyAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.deleteMyAccount")
	defer span.End()

	callerID, _ := authentication.UserIDFromContext(ctx)

	err := a.service.DeleteMyAccount(ctx, callerID)
	switch {
	case err == nil:
		types.WriteSuccess(w, i18n.T(r, i18n.AccountDeleted))
	case errors.Is(err, ErrCompanyNotFound):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.CompanyNotFound))
	case errors.Is(err, ErrBillingActive):
		a.logger.Errorf("account deletion of %s stopped by billing: %v", callerID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.BillingCancelFailed))
	default:
		a.logger.Errorf("failed to delete account of %s: %v", callerID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.DeleteAccountFailed))
	}
}

func (a *API) billingPortal(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.billingPortal")
	defer span.End()

	callerID, _ := authentication.UserIDFromContext(ctx)

	origin := strings.TrimRight(r.Header.Get("Origin"), "/")
	if origin == "" {
		origin = a.siteURL
	}

	url, err := a.service.CreatePortalSession(ctx, callerID, origin+"/dashboard")
	switch {
	case err == nil:
		types.WriteJSON(w, http.StatusOK, PortalResponse{URL: url})
	case errors.Is(err, ErrNoBillingCustomer):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.SubscriptionNotFound))
	default:
		a.logger.Errorf("failed to open billing portal for %s: %v", callerID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.PortalFailed))
	}
}

func (a *API) billingWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.billingWebhook")
	defer span.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.InvalidRequest))
		return
	}

	err = a.service.HandleBillingWebhook(ctx, payload, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
		types.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
	case errors.Is(err, billing.ErrInvalidSignature):
		a.logger.Security().AuthnFailure("invalid billing webhook signature")
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.InvalidRequest))
	case errors.Is(err, billing.ErrBillingUnavailable):
		types.WriteError(w, http.StatusServiceUnavailable, i18n.T(r, i18n.InternalError))
	default:
		a.logger.Errorf("failed to handle billing webhook: %v", err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.InternalError))
	}
}
