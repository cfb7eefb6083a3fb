// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package shopinfo

import (
	"github.com/shopspring/decimal"

	"github.com/barbersoft/account-service/internal/types"
)

type Unit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	ManagerName string `json:"manager_name"`
}

type Barber struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Phone          string          `json:"phone"`
	PhotoURL       string          `json:"photo_url"`
}

type ServiceItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

// ShopInfo is what the WhatsApp automation needs to answer a customer of a unit
type ShopInfo struct {
	Unit                 Unit          `json:"unit"`
	Barbers              []Barber      `json:"barbers"`
	Services             []ServiceItem `json:"services"`
	WhatsappAgentEnabled bool          `json:"whatsapp_agent_enabled"`
}

type Request struct {
	WhatsappInstanceID string `json:"whatsapp_instance_id" validate:"required,max=100,instance_id"`
}

type Response struct {
	Success bool `json:"success"`
	*ShopInfo
}

func newShopInfo(unit *types.Unit, barbers []*types.Barber, services []*types.Service, agentEnabled bool) *ShopInfo {
	info := &ShopInfo{
		Unit: Unit{
			ID:          unit.ID,
			Name:        unit.Name,
			Address:     unit.Address,
			Phone:       unit.Phone,
			ManagerName: unit.ManagerName,
		},
		Barbers:              make([]Barber, 0, len(barbers)),
		Services:             make([]ServiceItem, 0, len(services)),
		WhatsappAgentEnabled: agentEnabled,
	}

	for _, b := range barbers {
		info.Barbers = append(info.Barbers, Barber{
			ID:             b.ID,
			Name:           b.Name,
			CommissionRate: b.CommissionRate,
			Phone:          b.Phone,
			PhotoURL:       b.PhotoURL,
		})
	}

	for _, s := range services {
		info.Services = append(info.Services, ServiceItem{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return info
}
