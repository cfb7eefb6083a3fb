// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package shopinfo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package shopinfo -destination ./mock_shopinfo.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package shopinfo -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package shopinfo -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package shopinfo -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const instance = "barbearia-centro_01"

func setupService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(mockStorage, time.Minute, mockTracer, mockMonitor, mockLogger), mockStorage
}

func testUnit() *types.Unit {
	return &types.Unit{
		ID:                    "unit-1",
		CompanyID:             "company-1",
		UserID:                "owner-1",
		Name:                  "Centro",
		Address:               "Rua A, 10",
		Phone:                 "11999990000",
		ManagerName:           "Carlos",
		EvolutionInstanceName: instance,
	}
}

func TestService_Lookup(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockStorageInterface)
		expectedAgent bool
		expectedErr   error
	}{
		{
			name: "unit with barbers and services",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUnitByInstanceName(gomock.Any(), instance).Return(testUnit(), nil)
				s.EXPECT().ListActiveBarbersByUnit(gomock.Any(), "unit-1").Return([]*types.Barber{
					{ID: "b1", Name: "João", CommissionRate: decimal.RequireFromString("40.00")},
				}, nil)
				s.EXPECT().ListActiveServicesByUnit(gomock.Any(), "unit-1").Return([]*types.Service{
					{ID: "s1", Name: "Corte", Price: decimal.RequireFromString("45.90"), DurationMinutes: 30},
				}, nil)
				s.EXPECT().GetWhatsappAgentEnabled(gomock.Any(), "owner-1").Return(true, nil)
			},
			expectedAgent: true,
		},
		{
			name: "unit without owner never enables the agent",
			setupMocks: func(s *MockStorageInterface) {
				u := testUnit()
				u.UserID = ""
				s.EXPECT().GetUnitByInstanceName(gomock.Any(), instance).Return(u, nil)
				s.EXPECT().ListActiveBarbersByUnit(gomock.Any(), "unit-1").Return(nil, nil)
				s.EXPECT().ListActiveServicesByUnit(gomock.Any(), "unit-1").Return(nil, nil)
			},
		},
		{
			name: "unknown instance",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUnitByInstanceName(gomock.Any(), instance).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrUnitNotFound,
		},
		{
			name: "barber query failure",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUnitByInstanceName(gomock.Any(), instance).Return(testUnit(), nil)
				s.EXPECT().ListActiveBarbersByUnit(gomock.Any(), "unit-1").Return(nil, errors.New("timeout"))
			},
			expectedErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockStorage := setupService(ctrl)
			tt.setupMocks(mockStorage)

			info, err := svc.Lookup(context.Background(), instance)

			if tt.expectedErr != nil {
				if err == nil || (!errors.Is(err, tt.expectedErr) && !strings.Contains(err.Error(), tt.expectedErr.Error())) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if info.Unit.ManagerName != "Carlos" {
				t.Errorf("unexpected unit %+v", info.Unit)
			}
			if info.Barbers == nil || info.Services == nil {
				t.Errorf("lists must never be null")
			}
			if info.WhatsappAgentEnabled != tt.expectedAgent {
				t.Errorf("expected agent %v, got %v", tt.expectedAgent, info.WhatsappAgentEnabled)
			}
		})
	}
}

func TestService_LookupIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := setupService(ctrl)

	mockStorage.EXPECT().GetUnitByInstanceName(gomock.Any(), instance).Return(testUnit(), nil).Times(1)
	mockStorage.EXPECT().ListActiveBarbersByUnit(gomock.Any(), "unit-1").Return(nil, nil).Times(1)
	mockStorage.EXPECT().ListActiveServicesByUnit(gomock.Any(), "unit-1").Return(nil, nil).Times(1)
	mockStorage.EXPECT().GetWhatsappAgentEnabled(gomock.Any(), "owner-1").Return(false, nil).Times(1)

	for i := 0; i < 3; i++ {
		if _, err := svc.Lookup(context.Background(), instance); err != nil {
			t.Fatalf("lookup %d failed: %v", i, err)
		}
	}
}

func TestService_LookupDoesNotCacheMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := setupService(ctrl)

	mockStorage.EXPECT().GetUnitByInstanceName(gomock.Any(), instance).Return(nil, storage.ErrNotFound).Times(2)

	for i := 0; i < 2; i++ {
		if _, err := svc.Lookup(context.Background(), instance); !errors.Is(err, ErrUnitNotFound) {
			t.Fatalf("expected ErrUnitNotFound, got %v", err)
		}
	}
}
