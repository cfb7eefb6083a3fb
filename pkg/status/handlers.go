// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barbersoft/account-service/internal/http/types"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/internal/version"
)

const pingTimeout = 2 * time.Second

type PingerInterface interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version,omitempty"`
	Commit    string `json:"commit,omitempty"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		a.setDatabaseAvailability(0)
		types.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "degraded", Database: "unavailable"})
		return
	}

	a.setDatabaseAvailability(1)
	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", Database: "ok"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	info := BuildInfo{Version: version.Version}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.Commit = s.Value
			}
		}
	}

	types.WriteJSON(w, http.StatusOK, info)
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) setDatabaseAvailability(value float64) {
	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, value); err != nil {
		a.logger.Debugf("failed to record database availability: %v", err)
	}
}
