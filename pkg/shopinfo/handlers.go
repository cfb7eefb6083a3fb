// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package shopinfo

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/barbersoft/account-service/internal/http/types"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/tracing"
)

const (
	apiKeyHeader = "x-api-key"

	msgUnauthorized     = "Unauthorized - Invalid API key"
	msgMethodNotAllowed = "Method not allowed"
	msgInstanceRequired = "whatsapp_instance_id is required"
	msgInstanceInvalid  = "invalid whatsapp_instance_id"
	msgUnitNotFound     = "Unit not found for this WhatsApp instance"
	msgInternalError    = "Internal server error"
)

var instanceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("instance_id", func(fl validator.FieldLevel) bool {
		return instanceIDPattern.MatchString(fl.Field().String())
	})
	return v
}

type API struct {
	service  ServiceInterface
	apiKey   string
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the lookup for every method so callers with a valid key get a 405
// instead of chi's empty one.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.HandleFunc("/api/v0/shop-info", a.shopInfo)
}

func (a *API) shopInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "shopinfo.API.shopInfo")
	defer span.End()

	if !a.authorized(r) {
		a.logger.Security().AuthnFailure("invalid shop-info api key")
		types.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if r.Method != http.MethodPost {
		types.WriteFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteFailure(w, http.StatusBadRequest, msgInstanceRequired)
		return
	}
	req.WhatsappInstanceID = strings.TrimSpace(req.WhatsappInstanceID)

	if err := a.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
			types.WriteFailure(w, http.StatusBadRequest, msgInstanceRequired)
			return
		}
		types.WriteFailure(w, http.StatusBadRequest, msgInstanceInvalid)
		return
	}

	info, err := a.service.Lookup(ctx, req.WhatsappInstanceID)
	switch {
	case err == nil:
		types.WriteJSON(w, http.StatusOK, Response{Success: true, ShopInfo: info})
	case errors.Is(err, ErrUnitNotFound):
		a.logger.Infof("no unit found for instance %s", req.WhatsappInstanceID)
		types.WriteFailure(w, http.StatusNotFound, msgUnitNotFound)
	default:
		a.logger.Errorf("failed to look up shop info for instance %s: %v", req.WhatsappInstanceID, err)
		types.WriteFailure(w, http.StatusInternalServerError, msgInternalError)
	}
}

// authorized compares the key in constant time, an unconfigured key rejects everything
func (a *API) authorized(r *http.Request) bool {
	got := r.Header.Get(apiKeyHeader)
	if a.apiKey == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(a.apiKey)) == 1
}

func NewAPI(service ServiceInterface, apiKey string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.apiKey = apiKey
	a.validate = newValidator()

	a.tracer = tracer
	a.logger = logger

	return a
}
