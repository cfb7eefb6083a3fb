// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package shopinfo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/tracing"
)

const (
	cacheCapacity        = 10000
	cacheShards          = 10
	cacheEvictionPercent = 10
)

var ErrUnitNotFound = errors.New("unit not found for instance")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	cache   *sturdyc.Client[*ShopInfo]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Lookup gathers the unit bound to a WhatsApp instance with its active barbers and services.
// Results are cached per instance for the configured ttl, misses are not cached.
func (s *Service) Lookup(ctx context.Context, instanceID string) (*ShopInfo, error) {
	ctx, span := s.tracer.Start(ctx, "shopinfo.Service.Lookup")
	defer span.End()

	return s.cache.GetOrFetch(ctx, instanceID, func(ctx context.Context) (*ShopInfo, error) {
		return s.fetch(ctx, instanceID)
	})
}

func (s *Service) fetch(ctx context.Context, instanceID string) (*ShopInfo, error) {
	unit, err := s.storage.GetUnitByInstanceName(ctx, instanceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to fetch unit: %w", err)
	}

	barbers, err := s.storage.ListActiveBarbersByUnit(ctx, unit.ID)
	if err != nil {
		return nil, err
	}

	services, err := s.storage.ListActiveServicesByUnit(ctx, unit.ID)
	if err != nil {
		return nil, err
	}

	agentEnabled := false
	if unit.UserID != "" {
		agentEnabled, err = s.storage.GetWhatsappAgentEnabled(ctx, unit.UserID)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Debugf("unit %s has %d barbers and %d services, agent enabled %v", unit.ID, len(barbers), len(services), agentEnabled)

	return newShopInfo(unit, barbers, services, agentEnabled), nil
}

func NewService(storage StorageInterface, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.cache = sturdyc.New[*ShopInfo](cacheCapacity, cacheShards, ttl, cacheEvictionPercent)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
