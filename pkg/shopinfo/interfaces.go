// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package shopinfo

import (
	"context"

	"github.com/barbersoft/account-service/internal/types"
)

type StorageInterface interface {
	GetUnitByInstanceName(ctx context.Context, instance string) (*types.Unit, error)
	ListActiveBarbersByUnit(ctx context.Context, unitID string) ([]*types.Barber, error)
	ListActiveServicesByUnit(ctx context.Context, unitID string) ([]*types.Service, error)
	GetWhatsappAgentEnabled(ctx context.Context, userID string) (bool, error)
}

type ServiceInterface interface {
	Lookup(ctx context.Context, instanceID string) (*ShopInfo, error)
}
