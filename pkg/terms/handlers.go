// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barbersoft/account-service/internal/http/types"
	"github.com/barbersoft/account-service/internal/i18n"
	"github.com/barbersoft/account-service/internal/identity"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/pkg/authentication"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type SendTermRequest struct {
	BarberID string `json:"barber_id" validate:"omitempty,uuid"`
	TermID   string `json:"term_id" validate:"omitempty,uuid"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type TokenRequest struct {
	Token string `json:"p_token"`
}

type AcceptTermRequest struct {
	Token           string          `json:"p_token"`
	TermID          string          `json:"p_term_id" validate:"required,uuid"`
	ContentSnapshot string          `json:"p_content_snapshot" validate:"required"`
	CommissionRate  decimal.Decimal `json:"p_commission_rate"`
}

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the term routes. Managing barbers needs authn, sending a term also runs
// inside tx so a failed delivery drops the token it issued. Token holders need neither.
func (a *API) RegisterEndpoints(mux *chi.Mux, authn, tx func(http.Handler) http.Handler) {
	mux.With(authn, tx).Post("/api/v0/terms/send", a.sendTerm)
	mux.With(authn).Get("/api/v0/barbers/{id}/term-status", a.termStatus)
	mux.With(authn).Post("/api/v0/barbers/{id}/active", a.setActive)

	mux.Post("/api/v0/rpc/get_barber_by_term_token", a.getBarberByTermToken)
	mux.Post("/api/v0/rpc/accept_barber_term", a.acceptBarberTerm)

	mux.Get("/termo-profissional/{token}", a.acceptancePage)
	mux.Post("/termo-profissional/{token}", a.submitAcceptance)
}

func (a *API) sendTerm(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.sendTerm")
	defer span.End()

	callerID, _ := authentication.UserIDFromContext(ctx)

	var req SendTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.BarberIDRequired))
		return
	}

	// ids that cannot exist are reported like ids that do not
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "TermID" {
			types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.TermNotFound))
			return
		}
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.BarberNotFound))
		return
	}

	err := a.service.SendByEmail(ctx, callerID, req.BarberID, req.TermID)
	switch {
	case err == nil:
		types.WriteSuccess(w, i18n.T(r, i18n.EmailSent))
	case errors.Is(err, ErrBarberIDRequired):
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.BarberIDRequired))
	case errors.Is(err, ErrBarberNotFound):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.BarberNotFound))
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, i18n.T(r, i18n.Forbidden))
	case errors.Is(err, ErrBarberWithoutEmail):
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.BarberWithoutEmail))
	case errors.Is(err, ErrNoActiveTerm):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.NoActiveTermCompany))
	case errors.Is(err, ErrTermNotFound):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.TermNotFound))
	case errors.Is(err, ErrEmailDelivery):
		a.logger.Errorf("failed to send term to barber %s: %v", req.BarberID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.EmailSendFailed))
	default:
		a.logger.Errorf("failed to send term to barber %s: %v", req.BarberID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.InternalError))
	}
}

func (a *API) termStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.termStatus")
	defer span.End()

	callerID, _ := authentication.UserIDFromContext(ctx)

	barberID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(barberID); err != nil {
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.BarberNotFound))
		return
	}

	status, err := a.service.TermStatus(ctx, callerID, barberID)
	switch {
	case err == nil:
		types.WriteJSON(w, http.StatusOK, status)
	case errors.Is(err, ErrBarberNotFound):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.BarberNotFound))
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, i18n.T(r, i18n.Forbidden))
	default:
		a.logger.Errorf("failed to read term status of barber %s: %v", barberID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.TermStatusFailed))
	}
}

func (a *API) setActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.setActive")
	defer span.End()

	callerID, _ := authentication.UserIDFromContext(ctx)

	barberID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(barberID); err != nil {
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.BarberNotFound))
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.InvalidRequest))
		return
	}

	err := a.service.SetBarberActive(ctx, callerID, barberID, *req.Active)
	switch {
	case err == nil:
		types.WriteSuccess(w, i18n.T(r, i18n.BarberActivationDone))
	case errors.Is(err, ErrTermPending):
		types.WriteError(w, http.StatusConflict, i18n.T(r, i18n.TermPending))
	case errors.Is(err, ErrBarberNotFound):
		types.WriteError(w, http.StatusNotFound, i18n.T(r, i18n.BarberNotFound))
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, i18n.T(r, i18n.Forbidden))
	default:
		a.logger.Errorf("failed to update barber %s: %v", barberID, err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.BarberUpdateFailed))
	}
}

func (a *API) getBarberByTermToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.getBarberByTermToken")
	defer span.End()

	var req TokenRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	acc, err := a.service.LoadAcceptance(ctx, req.Token)
	if err != nil {
		status, msg := a.lookupError(r, err)
		types.WriteError(w, status, msg)
		return
	}

	types.WriteJSON(w, http.StatusOK, acc)
}

func (a *API) acceptBarberTerm(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.acceptBarberTerm")
	defer span.End()

	var req AcceptTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.InvalidRequest))
		return
	}

	submitter := identity.FromContext(ctx)
	ok, err := a.service.Accept(ctx, AcceptRequest{
		Token:           req.Token,
		TermID:          req.TermID,
		ContentSnapshot: req.ContentSnapshot,
		CommissionRate:  req.CommissionRate,
		IP:              submitter.IP,
		UserAgent:       submitter.UserAgent,
	})
	switch {
	case err == nil, errors.Is(err, ErrAlreadyAccepted):
		types.WriteJSON(w, http.StatusOK, ok)
	case errors.Is(err, ErrTermNotFound), errors.Is(err, ErrTermMismatch):
		types.WriteError(w, http.StatusBadRequest, i18n.T(r, i18n.TermNotFound))
	case errors.Is(err, ErrCommissionMismatch):
		types.WriteError(w, http.StatusConflict, i18n.T(r, i18n.CommissionChanged))
	default:
		a.logger.Errorf("failed to accept term: %v", err)
		types.WriteError(w, http.StatusInternalServerError, i18n.T(r, i18n.InternalError))
	}
}

func (a *API) lookupError(r *http.Request, err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidToken):
		return http.StatusNotFound, i18n.T(r, i18n.InvalidTermLink)
	case errors.Is(err, ErrNoActiveTerm):
		return http.StatusNotFound, i18n.T(r, i18n.NoActiveTerm)
	default:
		a.logger.Errorf("failed to load term acceptance: %v", err)
		return http.StatusInternalServerError, i18n.T(r, i18n.InternalError)
	}
}
