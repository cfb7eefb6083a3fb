// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/barbersoft/account-service/internal/mail"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package terms -destination ./mock_terms.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package terms -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package terms -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package terms -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	barberID  = "0f8fad5b-d9cb-469f-a165-70867728950e"
	termID    = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	companyID = "5f0c7a8e-3d5b-4a53-9b43-0c1e7f1d2a10"
	ownerID   = "owner-1"
)

type serviceMocks struct {
	storage  *MockStorageInterface
	tx       *MockTxInterface
	mailer   *MockMailerInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxInterface(ctrl),
		mailer:   NewMockMailerInterface(ctrl),
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
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	return m
}

func (m *serviceMocks) service() *Service {
	return NewService(m.storage, m.tx, m.mailer, "https://barbersoft.com.br/", m.tracer, m.monitor, m.logger)
}

// expectBarber lets the owner of the company manage the barber
func (m *serviceMocks) expectBarber(b *types.Barber) {
	m.storage.EXPECT().GetBarber(gomock.Any(), b.ID).Return(b, nil)
	m.storage.EXPECT().GetCompanyByID(gomock.Any(), b.CompanyID).Return(&types.Company{ID: b.CompanyID, OwnerUserID: ownerID}, nil)
}

func testBarber() *types.Barber {
	return &types.Barber{
		ID:             barberID,
		CompanyID:      companyID,
		Name:           "João",
		Email:          "joao@example.com",
		CommissionRate: decimal.RequireFromString("35.00"),
		UnitName:       "Centro",
	}
}

func testTerm() *types.PartnershipTerm {
	return &types.PartnershipTerm{
		ID:        termID,
		CompanyID: companyID,
		Title:     "Termo de Parceria",
		Version:   "2",
		Content:   "Eu, {{nome}}, aceito {{comissao}} na unidade {{unidade}}.",
		IsActive:  true,
	}
}

func TestService_LookupByToken(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "live token",
			token: "tok",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBarberByTermToken(gomock.Any(), "tok").Return(testBarber(), nil)
			},
		},
		{
			name:  "consumed or unknown token",
			token: "tok",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBarberByTermToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:  "empty token",
			token: "",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBarberByTermToken(gomock.Any(), "").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			view, err := m.service().LookupByToken(context.Background(), tt.token)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.ID != barberID || view.UnitName != "Centro" || !view.CommissionRate.Equal(decimal.NewFromInt(35)) {
				t.Errorf("unexpected view %+v", view)
			}
		})
	}
}

func TestService_ActiveTerm(t *testing.T) {
	tests := []struct {
		name        string
		terms       []*types.PartnershipTerm
		expectedErr error
	}{
		{"exactly one", []*types.PartnershipTerm{testTerm()}, nil},
		{"none", nil, ErrNoActiveTerm},
		{"more than one", []*types.PartnershipTerm{testTerm(), testTerm()}, ErrAmbiguousActiveTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return(tt.terms, nil)
			m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			term, err := m.service().ActiveTerm(context.Background(), companyID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
			} else if err != nil || term.ID != termID {
				t.Errorf("unexpected result %v, %v", term, err)
			}
		})
	}
}

func TestService_LoadAcceptance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.storage.EXPECT().GetBarberByTermToken(gomock.Any(), "tok").Return(testBarber(), nil)
	m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)

	acc, err := m.service().LoadAcceptance(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Eu, João, aceito 35% na unidade Centro."
	if acc.Term.Rendered != expected {
		t.Errorf("expected %q, got %q", expected, acc.Term.Rendered)
	}
	if acc.Term.Content != testTerm().Content {
		t.Errorf("raw content should be kept for the snapshot, got %q", acc.Term.Content)
	}
}

func TestService_Accept(t *testing.T) {
	req := AcceptRequest{
		Token:           "tok",
		TermID:          termID,
		ContentSnapshot: "snapshot",
		CommissionRate:  decimal.RequireFromString("35"),
		IP:              "203.0.113.7",
		UserAgent:       "Mozilla/5.0",
	}

	tests := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedOK  bool
		expectedErr error
	}{
		{
			name: "first acceptance wins",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ConsumeTermToken(gomock.Any(), "tok").Return(testBarber(), nil)
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(testTerm(), nil)
				m.storage.EXPECT().CreateTermAcceptance(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.TermAcceptance) (*types.TermAcceptance, error) {
						if a.BarberID != barberID || a.TermID != termID || a.ContentSnapshot != "snapshot" {
							t.Errorf("unexpected acceptance %+v", a)
						}
						if a.IPAddress != "203.0.113.7" || a.UserAgent != "Mozilla/5.0" {
							t.Errorf("submitter not recorded: %+v", a)
						}
						if !a.CommissionRate.Equal(decimal.NewFromInt(35)) {
							t.Errorf("expected the agreed commission to be recorded, got %s", a.CommissionRate)
						}
						return a, nil
					},
				)
			},
			expectedOK: true,
		},
		{
			name: "token already consumed",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ConsumeTermToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrAlreadyAccepted,
		},
		{
			name: "term of another company",
			setupMocks: func(m *serviceMocks) {
				other := testTerm()
				other.CompanyID = "another-company"
				m.storage.EXPECT().ConsumeTermToken(gomock.Any(), "tok").Return(testBarber(), nil)
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(other, nil)
			},
			expectedErr: ErrTermMismatch,
		},
		{
			name: "commission changed after the link was sent",
			setupMocks: func(m *serviceMocks) {
				raised := testBarber()
				raised.CommissionRate = decimal.RequireFromString("40.00")
				m.storage.EXPECT().ConsumeTermToken(gomock.Any(), "tok").Return(raised, nil)
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(testTerm(), nil)
			},
			expectedErr: ErrCommissionMismatch,
		},
		{
			name: "duplicate acceptance",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ConsumeTermToken(gomock.Any(), "tok").Return(testBarber(), nil)
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(testTerm(), nil)
				m.storage.EXPECT().CreateTermAcceptance(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrAlreadyAccepted,
		},
		{
			name: "insert failure",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ConsumeTermToken(gomock.Any(), "tok").Return(testBarber(), nil)
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(testTerm(), nil)
				m.storage.EXPECT().CreateTermAcceptance(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			ok, err := m.service().Accept(context.Background(), req)

			if ok != tt.expectedOK {
				t.Errorf("expected ok=%v, got %v", tt.expectedOK, ok)
			}
			switch {
			case tt.expectedErr == nil && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tt.expectedErr != nil && err == nil:
				t.Errorf("expected error %v, got nil", tt.expectedErr)
			case tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) && !strings.Contains(err.Error(), tt.expectedErr.Error()):
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_SendByEmail(t *testing.T) {
	tests := []struct {
		name        string
		barberID    string
		termID      string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:        "missing barber id",
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrBarberIDRequired,
		},
		{
			name:     "barber not found",
			barberID: barberID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBarber(gomock.Any(), barberID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrBarberNotFound,
		},
		{
			name:     "caller does not own the company",
			barberID: barberID,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBarber(gomock.Any(), barberID).Return(testBarber(), nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), companyID).Return(&types.Company{ID: companyID, OwnerUserID: "someone-else"}, nil)
				m.storage.EXPECT().HasRole(gomock.Any(), ownerID, superAdminRole).Return(false, nil)
				m.security.EXPECT().AuthzFailure(ownerID, "barber:"+barberID)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:     "barber without email",
			barberID: barberID,
			setupMocks: func(m *serviceMocks) {
				b := testBarber()
				b.Email = ""
				m.expectBarber(b)
			},
			expectedErr: ErrBarberWithoutEmail,
		},
		{
			name:     "no active term",
			barberID: barberID,
			setupMocks: func(m *serviceMocks) {
				m.expectBarber(testBarber())
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return(nil, nil)
			},
			expectedErr: ErrNoActiveTerm,
		},
		{
			name:     "explicit term not found",
			barberID: barberID,
			termID:   termID,
			setupMocks: func(m *serviceMocks) {
				m.expectBarber(testBarber())
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrTermNotFound,
		},
		{
			name:     "explicit term of another company",
			barberID: barberID,
			termID:   termID,
			setupMocks: func(m *serviceMocks) {
				other := testTerm()
				other.CompanyID = "another-company"
				m.expectBarber(testBarber())
				m.storage.EXPECT().GetTerm(gomock.Any(), termID).Return(other, nil)
			},
			expectedErr: ErrTermNotFound,
		},
		{
			name:     "delivery failure",
			barberID: barberID,
			setupMocks: func(m *serviceMocks) {
				m.expectBarber(testBarber())
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)
				m.storage.EXPECT().SetBarberTermToken(gomock.Any(), barberID, gomock.Any()).Return(nil)
				m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", mail.ErrMailUnavailable)
			},
			expectedErr: ErrEmailDelivery,
		},
		{
			name:     "success",
			barberID: barberID,
			setupMocks: func(m *serviceMocks) {
				var issued string
				m.expectBarber(testBarber())
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)
				m.storage.EXPECT().SetBarberTermToken(gomock.Any(), barberID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _, token string) error {
						issued = token
						return nil
					},
				)
				m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg mail.Message) (string, error) {
						if msg.To != "joao@example.com" {
							t.Errorf("unexpected recipient %q", msg.To)
						}
						if msg.Subject != "Termo de Parceria - BarberSoft" {
							t.Errorf("unexpected subject %q", msg.Subject)
						}
						if !strings.Contains(msg.HTML, "https://barbersoft.com.br/termo-profissional/"+issued) {
							t.Errorf("accept link missing from %s", msg.HTML)
						}
						for _, want := range []string{"Versão 2", "Eu, João, aceito 35% na unidade Centro.", "<strong>35%</strong>"} {
							if !strings.Contains(msg.HTML, want) {
								t.Errorf("expected email to contain %q", want)
							}
						}
						return "msg-1", nil
					},
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

			err := m.service().SendByEmail(context.Background(), ownerID, tt.barberID, tt.termID)

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

func TestService_TermStatus(t *testing.T) {
	acceptedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMocks func(*serviceMocks)
		expected   Status
	}{
		{
			name: "no active term",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return(nil, nil)
			},
			expected: Status{},
		},
		{
			name: "pending",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)
				m.storage.EXPECT().GetTermAcceptance(gomock.Any(), barberID, termID).Return(nil, storage.ErrNotFound)
			},
			expected: Status{HasActiveTerm: true, TermVersion: "2"},
		},
		{
			name: "accepted",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)
				m.storage.EXPECT().GetTermAcceptance(gomock.Any(), barberID, termID).Return(&types.TermAcceptance{AcceptedAt: acceptedAt}, nil)
			},
			expected: Status{HasActiveTerm: true, Accepted: true, AcceptedAt: &acceptedAt, TermVersion: "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectBarber(testBarber())
			tt.setupMocks(m)

			status, err := m.service().TermStatus(context.Background(), ownerID, barberID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if status.HasActiveTerm != tt.expected.HasActiveTerm || status.Accepted != tt.expected.Accepted || status.TermVersion != tt.expected.TermVersion {
				t.Errorf("expected %+v, got %+v", tt.expected, status)
			}
			if (status.AcceptedAt == nil) != (tt.expected.AcceptedAt == nil) {
				t.Errorf("expected accepted_at %v, got %v", tt.expected.AcceptedAt, status.AcceptedAt)
			}
		})
	}
}

func TestService_SetBarberActive(t *testing.T) {
	tests := []struct {
		name        string
		active      bool
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "activation refused while the term is pending",
			active: true,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)
				m.storage.EXPECT().GetTermAcceptance(gomock.Any(), barberID, termID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrTermPending,
		},
		{
			name:   "activation after acceptance",
			active: true,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return([]*types.PartnershipTerm{testTerm()}, nil)
				m.storage.EXPECT().GetTermAcceptance(gomock.Any(), barberID, termID).Return(&types.TermAcceptance{AcceptedAt: time.Now()}, nil)
				m.storage.EXPECT().SetBarberActive(gomock.Any(), barberID, true).Return(nil)
			},
		},
		{
			name:   "activation without any active term",
			active: true,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().ListActiveTerms(gomock.Any(), companyID).Return(nil, nil)
				m.storage.EXPECT().SetBarberActive(gomock.Any(), barberID, true).Return(nil)
			},
		},
		{
			name:   "deactivation is always allowed",
			active: false,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().SetBarberActive(gomock.Any(), barberID, false).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectBarber(testBarber())
			tt.setupMocks(m)

			err := m.service().SetBarberActive(context.Background(), ownerID, barberID, tt.active)

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
