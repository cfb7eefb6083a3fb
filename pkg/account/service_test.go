// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/barbersoft/account-service/internal/billing"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_account.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	companyID = "5f0c7a8e-3d5b-4a53-9b43-0c1e7f1d2a10"
	ownerID   = "owner-1"
	adminID   = "admin-1"
)

type serviceMocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthzInterface
	kratos   *MockKratosClientInterface
	billing  *MockBillingClientInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		billing:  NewMockBillingClientInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	m.monitor.EXPECT().AddDeletedRows(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.monitor.EXPECT().SetDependencyAvailability(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	return m
}

func (m *serviceMocks) service() *Service {
	return NewService(m.storage, m.authz, m.kratos, m.billing, 4, m.tracer, m.monitor, m.logger)
}

// expectCascade accepts every step of the plan and returns the tables in the order they were hit
func (m *serviceMocks) expectCascade(company *types.Company) func() []string {
	m.storage.EXPECT().ListIDs(gomock.Any(), storage.TableUnits, "company_id", []string{company.ID}).Return([]string{"unit-1", "unit-2"}, nil)
	m.storage.EXPECT().ListIDs(gomock.Any(), storage.TableMarketingCampaigns, "company_id", []string{company.ID}).Return([]string{"campaign-1"}, nil)
	m.storage.EXPECT().ListIDs(gomock.Any(), storage.TablePartnershipTerms, "company_id", []string{company.ID}).Return([]string{"term-1"}, nil)

	var mu sync.Mutex
	var tables []string
	m.storage.EXPECT().DeleteWhereIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, table, _ string, _ []string) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			tables = append(tables, table)
			return 1, nil
		},
	).Times(planSteps())

	return func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), tables...)
	}
}

func planSteps() int {
	n := 0
	for _, t := range cascadePlan {
		n += len(t)
	}
	return n
}

func tierOf(table string) int {
	for i, t := range cascadePlan {
		for _, st := range t {
			if st.table == table {
				return i
			}
		}
	}
	return -1
}

func TestService_DeleteCompany(t *testing.T) {
	cancelled := &types.Company{ID: companyID, OwnerUserID: ownerID, PlanStatus: types.PlanCancelled}
	active := &types.Company{ID: companyID, OwnerUserID: ownerID, PlanStatus: types.PlanActive}

	tests := []struct {
		name        string
		companyID   string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:      "caller is not a super admin",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(false, nil)
				m.authz.EXPECT().IsSuperAdmin(gomock.Any(), adminID).Return(false, nil)
				m.security.EXPECT().AuthzFailure(adminID, "company:"+companyID)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:      "authz errors deny",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(false, nil)
				m.authz.EXPECT().IsSuperAdmin(gomock.Any(), adminID).Return(false, errors.New("fga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.security.EXPECT().AuthzFailure(adminID, "company:"+companyID)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:      "missing company id",
			companyID: "",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(true, nil)
			},
			expectedErr: ErrInvalidCompanyID,
		},
		{
			name:      "malformed company id",
			companyID: "not-a-uuid",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(true, nil)
			},
			expectedErr: ErrInvalidCompanyID,
		},
		{
			name:      "company not found",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(true, nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), companyID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrCompanyNotFound,
		},
		{
			name:      "plan is not cancelled",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(true, nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), companyID).Return(active, nil)
			},
			expectedErr: ErrNotCancelled,
		},
		{
			name:      "super admin through authorization model",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(false, nil)
				m.authz.EXPECT().IsSuperAdmin(gomock.Any(), adminID).Return(true, nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), companyID).Return(cancelled, nil)
				m.expectCascade(cancelled)
				m.storage.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(int64(1), nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), ownerID).Return(nil)
				m.authz.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(nil)
				m.security.EXPECT().AdminAction(adminID, "delete_company", "company:"+companyID)
			},
		},
		{
			name:      "company row delete failure leaves the auth account alone",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(true, nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), companyID).Return(cancelled, nil)
				m.expectCascade(cancelled)
				m.storage.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(int64(0), storage.ErrForeignKeyViolation)
			},
			expectedErr: storage.ErrForeignKeyViolation,
		},
		{
			name:      "auth account failure is still a success",
			companyID: companyID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().HasRole(gomock.Any(), adminID, superAdminRole).Return(true, nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), companyID).Return(cancelled, nil)
				m.expectCascade(cancelled)
				m.storage.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(int64(1), nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), ownerID).Return(errors.New("kratos down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.authz.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(errors.New("fga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.security.EXPECT().AdminAction(adminID, "delete_company", "company:"+companyID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			err := m.service().DeleteCompany(context.Background(), adminID, tt.companyID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_DeleteMyAccount(t *testing.T) {
	company := func(status types.PlanStatus, customer string) *types.Company {
		return &types.Company{ID: companyID, OwnerUserID: ownerID, PlanStatus: status, StripeCustomerID: customer}
	}
	stripeErr := errors.New("stripe down")

	tests := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		wantErr     bool
		expectedErr error
	}{
		{
			name: "caller owns no company",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return(nil, nil)
			},
			expectedErr: ErrCompanyNotFound,
		},
		{
			name: "caller owns several companies",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return(
					[]*types.Company{company(types.PlanTrial, ""), company(types.PlanTrial, "")}, nil,
				)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrMultipleCompanies,
		},
		{
			name: "active plan with failed cancellation aborts before any mutation",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{company(types.PlanActive, "cus_1")}, nil)
				m.billing.EXPECT().CancelAllSubscriptions(gomock.Any(), "cus_1").Return(stripeErr)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrBillingActive,
		},
		{
			name: "active plan without billing configured aborts",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{company(types.PlanActive, "cus_1")}, nil)
				m.billing.EXPECT().CancelAllSubscriptions(gomock.Any(), "cus_1").Return(billing.ErrBillingUnavailable)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrBillingActive,
		},
		{
			name: "trial plan with failed cancellation proceeds",
			setupMocks: func(m *serviceMocks) {
				c := company(types.PlanTrial, "cus_1")
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{c}, nil)
				m.billing.EXPECT().CancelAllSubscriptions(gomock.Any(), "cus_1").Return(stripeErr)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				m.expectCascade(c)
				m.storage.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(int64(1), nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), ownerID).Return(nil)
				m.authz.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(nil)
				m.security.EXPECT().AdminAction(ownerID, "delete_company", "company:"+companyID)
			},
		},
		{
			name: "no billing customer skips the payment processor",
			setupMocks: func(m *serviceMocks) {
				c := company(types.PlanActive, "")
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{c}, nil)
				m.expectCascade(c)
				m.storage.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(int64(1), nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), ownerID).Return(nil)
				m.authz.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(nil)
				m.security.EXPECT().AdminAction(ownerID, "delete_company", "company:"+companyID)
			},
		},
		{
			name: "cascade failure stops before the company row",
			setupMocks: func(m *serviceMocks) {
				c := company(types.PlanOverdue, "cus_1")
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{c}, nil)
				m.billing.EXPECT().CancelAllSubscriptions(gomock.Any(), "cus_1").Return(nil)
				m.storage.EXPECT().ListIDs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"id-1"}, nil).Times(3)
				m.storage.EXPECT().DeleteWhereIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom")).MinTimes(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			err := m.service().DeleteMyAccount(context.Background(), ownerID)

			switch {
			case tt.expectedErr != nil:
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
			case tt.wantErr:
				if err == nil {
					t.Error("expected an error, got nil")
				}
			case err != nil:
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_CascadeRunsTiersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	c := &types.Company{ID: companyID, OwnerUserID: ownerID, PlanStatus: types.PlanCancelled}
	hits := m.expectCascade(c)

	s := m.service()
	keys, err := s.resolveScope(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.runCascade(context.Background(), cascadePlan, keys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tables := hits()
	if len(tables) != planSteps() {
		t.Fatalf("expected %d steps, got %d", planSteps(), len(tables))
	}

	last := 0
	for _, table := range tables {
		tier := tierOf(table)
		if tier < last {
			t.Fatalf("%s (tier %d) ran after tier %d: %v", table, tier, last, tables)
		}
		last = tier
	}
}

func TestService_CascadeSkipsEmptyScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	var mu sync.Mutex
	seen := map[string]bool{}
	m.storage.EXPECT().DeleteWhereIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, table, _ string, _ []string) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			seen[table] = true
			return 0, nil
		},
	).AnyTimes()

	keys := scopeKeys{scopeCompany: {companyID}}
	if err := m.service().runCascade(context.Background(), cascadePlan, keys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, table := range []string{storage.TableAppointments, storage.TableCampaignMessageLogs, storage.TableTermAcceptances, storage.TableUserRoles} {
		if seen[table] {
			t.Errorf("%s should have been skipped without scope keys", table)
		}
	}
	for _, table := range []string{storage.TableBarbers, storage.TableUnits, storage.TablePartnershipTerms} {
		if !seen[table] {
			t.Errorf("%s should have been visited", table)
		}
	}
}

func TestService_CascadeStopsAtFailingTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	failing := errors.New("boom")

	var mu sync.Mutex
	var tables []string
	m.storage.EXPECT().DeleteWhereIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, table, _ string, _ []string) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			tables = append(tables, table)
			if table == storage.TableBarbers {
				return 0, failing
			}
			return 0, nil
		},
	).AnyTimes()

	keys := scopeKeys{
		scopeUnits:     {"unit-1"},
		scopeCompany:   {companyID},
		scopeCampaigns: {"campaign-1"},
		scopeTerms:     {"term-1"},
		scopeOwner:     {ownerID},
	}

	err := m.service().runCascade(context.Background(), cascadePlan, keys)
	if !errors.Is(err, failing) {
		t.Fatalf("expected %v, got %v", failing, err)
	}

	for _, table := range tables {
		if tierOf(table) > tierOf(storage.TableBarbers) {
			t.Errorf("%s ran after the failing tier", table)
		}
	}
}

func TestDecideBilling(t *testing.T) {
	failure := errors.New("cannot cancel")

	tests := []struct {
		status   types.PlanStatus
		err      error
		expected guardOutcome
	}{
		{types.PlanActive, failure, abort},
		{types.PlanActive, nil, proceed},
		{types.PlanTrial, failure, proceed},
		{types.PlanOverdue, failure, proceed},
		{types.PlanCancelled, failure, proceed},
		{types.PlanStatus("unknown"), failure, proceed},
		{types.PlanActive, billing.ErrBillingUnavailable, abort},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := decideBilling(tt.status, tt.err); got != tt.expected {
				t.Errorf("decideBilling(%s, %v) = %s, want %s", tt.status, tt.err, got, tt.expected)
			}
		})
	}
}

func TestPlanStatusFor(t *testing.T) {
	tests := []struct {
		event    billing.SubscriptionEvent
		expected types.PlanStatus
		ok       bool
	}{
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "active"}, types.PlanActive, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionCreated, Status: "trialing"}, types.PlanTrial, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "past_due"}, types.PlanOverdue, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "unpaid"}, types.PlanOverdue, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "canceled"}, types.PlanCancelled, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "incomplete_expired"}, types.PlanCancelled, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionDeleted, Status: "active"}, types.PlanCancelled, true},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "incomplete"}, "", false},
		{billing.SubscriptionEvent{Type: billing.EventSubscriptionUpdated, Status: "paused"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.event.Type+"/"+tt.event.Status, func(t *testing.T) {
			got, ok := planStatusFor(&tt.event)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("expected (%s, %v), got (%s, %v)", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestService_HandleBillingWebhook(t *testing.T) {
	payload := []byte(`{}`)

	tests := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "invalid signature",
			setupMocks: func(m *serviceMocks) {
				m.billing.EXPECT().ParseWebhook(payload, "sig").Return(nil, billing.ErrInvalidSignature)
			},
			expectedErr: billing.ErrInvalidSignature,
		},
		{
			name: "ignored event type",
			setupMocks: func(m *serviceMocks) {
				m.billing.EXPECT().ParseWebhook(payload, "sig").Return(nil, billing.ErrIgnoredEvent)
			},
		},
		{
			name: "unknown customer is acknowledged",
			setupMocks: func(m *serviceMocks) {
				m.billing.EXPECT().ParseWebhook(payload, "sig").Return(&billing.SubscriptionEvent{
					Type: billing.EventSubscriptionUpdated, CustomerID: "cus_x", Status: "active",
				}, nil)
				m.storage.EXPECT().GetCompanyByBillingCustomer(gomock.Any(), "cus_x").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "status without plan equivalent",
			setupMocks: func(m *serviceMocks) {
				m.billing.EXPECT().ParseWebhook(payload, "sig").Return(&billing.SubscriptionEvent{
					Type: billing.EventSubscriptionUpdated, CustomerID: "cus_1", Status: "incomplete",
				}, nil)
			},
		},
		{
			name: "deleted subscription cancels the plan",
			setupMocks: func(m *serviceMocks) {
				m.billing.EXPECT().ParseWebhook(payload, "sig").Return(&billing.SubscriptionEvent{
					Type: billing.EventSubscriptionDeleted, CustomerID: "cus_1", Status: "canceled",
				}, nil)
				m.storage.EXPECT().GetCompanyByBillingCustomer(gomock.Any(), "cus_1").Return(
					&types.Company{ID: companyID, PlanStatus: types.PlanActive}, nil,
				)
				m.storage.EXPECT().SetCompanyPlanStatus(gomock.Any(), companyID, types.PlanCancelled).Return(nil)
			},
		},
		{
			name: "unchanged status is not written",
			setupMocks: func(m *serviceMocks) {
				m.billing.EXPECT().ParseWebhook(payload, "sig").Return(&billing.SubscriptionEvent{
					Type: billing.EventSubscriptionUpdated, CustomerID: "cus_1", Status: "past_due",
				}, nil)
				m.storage.EXPECT().GetCompanyByBillingCustomer(gomock.Any(), "cus_1").Return(
					&types.Company{ID: companyID, PlanStatus: types.PlanOverdue}, nil,
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			err := m.service().HandleBillingWebhook(context.Background(), payload, "sig")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_CreatePortalSession(t *testing.T) {
	returnURL := "https://app.barbersoft.com.br/dashboard"

	tests := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedURL string
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{{ID: companyID, StripeCustomerID: "cus_1"}}, nil)
				m.billing.EXPECT().CreatePortalSession(gomock.Any(), "cus_1", returnURL).Return("https://billing.example/session", nil)
			},
			expectedURL: "https://billing.example/session",
		},
		{
			name: "no company",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return(nil, nil)
			},
			expectedErr: ErrNoBillingCustomer,
		},
		{
			name: "company without billing customer",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{{ID: companyID}}, nil)
			},
			expectedErr: ErrNoBillingCustomer,
		},
		{
			name: "payment processor failure",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListCompaniesByOwner(gomock.Any(), ownerID).Return([]*types.Company{{ID: companyID, StripeCustomerID: "cus_1"}}, nil)
				m.billing.EXPECT().CreatePortalSession(gomock.Any(), "cus_1", returnURL).Return("", billing.ErrBillingUnavailable)
			},
			expectedErr: billing.ErrBillingUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			url, err := m.service().CreatePortalSession(context.Background(), ownerID, returnURL)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if url != tt.expectedURL {
				t.Errorf("expected url %q, got %q", tt.expectedURL, url)
			}
		})
	}
}

func TestService_MonitorFailuresAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := NewMockMonitorInterface(ctrl)
	logger := NewMockLoggerInterface(ctrl)
	s := NewService(nil, nil, nil, nil, 1, NewMockTracingInterface(ctrl), monitor, logger)

	registryDown := errors.New("collector unregistered")

	monitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "kratos"}, float64(0)).Return(registryDown)
	logger.EXPECT().Debugf("failed to record %s availability: %v", "kratos", registryDown)

	monitor.EXPECT().AddDeletedRows(map[string]string{"table": storage.TableUnits}, float64(3)).Return(registryDown)
	logger.EXPECT().Debugf("failed to record rows deleted from %s: %v", storage.TableUnits, registryDown)

	s.markUnavailable("kratos")
	s.countDeleted(storage.TableUnits, 3)
	// nothing removed, nothing recorded
	s.countDeleted(storage.TableHolidays, 0)
}
