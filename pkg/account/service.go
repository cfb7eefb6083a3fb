// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barbersoft/account-service/internal/billing"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/internal/types"
)

const superAdminRole = "super_admin"

var (
	ErrForbidden         = errors.New("caller is not a super admin")
	ErrInvalidCompanyID  = errors.New("company id is missing or malformed")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrNotCancelled      = errors.New("only cancelled companies can be deleted")
	ErrMultipleCompanies = errors.New("user owns more than one company")
	ErrBillingActive     = errors.New("active subscription could not be cancelled")
	ErrNoBillingCustomer = errors.New("company has no billing customer")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	authz       AuthzInterface
	kratos      KratosClientInterface
	billing     BillingClientInterface
	parallelism int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	billing BillingClientInterface,
	parallelism int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if parallelism < 1 {
		parallelism = 1
	}

	return &Service{
		storage:     storage,
		authz:       authz,
		kratos:      kratos,
		billing:     billing,
		parallelism: parallelism,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// DeleteCompany is the administrative deletion of a tenant whose plan is already cancelled.
func (s *Service) DeleteCompany(ctx context.Context, callerID, companyID string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.DeleteCompany")
	defer span.End()

	allowed, err := s.isSuperAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !allowed {
		s.logger.Security().AuthzFailure(callerID, "company:"+companyID)
		return ErrForbidden
	}

	if _, err := uuid.Parse(companyID); err != nil {
		return ErrInvalidCompanyID
	}

	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to fetch company: %w", err)
	}

	if company.PlanStatus != types.PlanCancelled {
		return ErrNotCancelled
	}

	return s.deleteTenant(ctx, callerID, company)
}

// DeleteMyAccount deletes the company owned by the caller after settling its subscriptions.
func (s *Service) DeleteMyAccount(ctx context.Context, callerID string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.DeleteMyAccount")
	defer span.End()

	company, err := s.ownedCompany(ctx, callerID)
	if err != nil {
		return err
	}

	if err := s.billingGuard(ctx, company); err != nil {
		return err
	}

	return s.deleteTenant(ctx, callerID, company)
}

func (s *Service) CreatePortalSession(ctx context.Context, callerID, returnURL string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.CreatePortalSession")
	defer span.End()

	company, err := s.ownedCompany(ctx, callerID)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return "", ErrNoBillingCustomer
		}
		return "", err
	}

	if company.StripeCustomerID == "" {
		return "", ErrNoBillingCustomer
	}

	url, err := s.billing.CreatePortalSession(ctx, company.StripeCustomerID, returnURL)
	if err != nil {
		s.markUnavailable("billing")
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}

	return url, nil
}

// HandleBillingWebhook mirrors a subscription change onto the plan status of the owning company.
// Deliveries about unknown customers or statuses without a plan equivalent are acknowledged.
func (s *Service) HandleBillingWebhook(ctx context.Context, payload []byte, signature string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.HandleBillingWebhook")
	defer span.End()

	event, err := s.billing.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, billing.ErrIgnoredEvent) {
			return nil
		}
		return fmt.Errorf("failed to parse webhook: %w", err)
	}

	status, ok := planStatusFor(event)
	if !ok {
		s.logger.Debugf("subscription %s moved to %s, plan status unchanged", event.SubscriptionID, event.Status)
		return nil
	}

	if event.CustomerID == "" {
		return nil
	}

	company, err := s.storage.GetCompanyByBillingCustomer(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Infof("ignoring %s for unknown customer %s", event.Type, event.CustomerID)
			return nil
		}
		return fmt.Errorf("failed to fetch company: %w", err)
	}

	if company.PlanStatus == status {
		return nil
	}

	if err := s.storage.SetCompanyPlanStatus(ctx, company.ID, status); err != nil {
		return fmt.Errorf("failed to update plan status: %w", err)
	}

	s.logger.Infof("company %s plan status %s -> %s", company.ID, company.PlanStatus, status)

	return nil
}

func (s *Service) isSuperAdmin(ctx context.Context, userID string) (bool, error) {
	ok, err := s.storage.HasRole(ctx, userID, superAdminRole)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	if ok {
		return true, nil
	}

	ok, err = s.authz.IsSuperAdmin(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to check super admin relation: %v", err)
		return false, nil
	}

	return ok, nil
}

func (s *Service) ownedCompany(ctx context.Context, userID string) (*types.Company, error) {
	companies, err := s.storage.ListCompaniesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}

	switch len(companies) {
	case 0:
		return nil, ErrCompanyNotFound
	case 1:
		return companies[0], nil
	default:
		s.logger.Errorf("user %s owns %d companies", userID, len(companies))
		return nil, ErrMultipleCompanies
	}
}

// billingGuard cancels the subscriptions of company before anything is deleted.
func (s *Service) billingGuard(ctx context.Context, company *types.Company) error {
	if company.StripeCustomerID == "" {
		return nil
	}

	err := s.billing.CancelAllSubscriptions(ctx, company.StripeCustomerID)
	if err != nil {
		s.markUnavailable("billing")
	}

	if decideBilling(company.PlanStatus, err) == abort {
		s.logger.Errorf("refusing to delete company %s with plan %s: %v", company.ID, company.PlanStatus, err)
		return fmt.Errorf("%w: %v", ErrBillingActive, err)
	}

	if err != nil {
		s.logger.Warnf("deleting company %s with plan %s despite billing failure: %v", company.ID, company.PlanStatus, err)
	}

	return nil
}

func (s *Service) deleteTenant(ctx context.Context, callerID string, company *types.Company) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.deleteTenant")
	defer span.End()

	keys, err := s.resolveScope(ctx, company)
	if err != nil {
		return err
	}

	if err := s.runCascade(ctx, cascadePlan, keys); err != nil {
		return err
	}

	n, err := s.storage.DeleteCompany(ctx, company.ID)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	s.countDeleted(storage.TableCompanies, n)

	if company.OwnerUserID != "" {
		if err := s.kratos.DeleteIdentity(ctx, company.OwnerUserID); err != nil {
			s.markUnavailable("kratos")
			s.logger.Errorf("company %s deleted, auth account %s needs manual removal: %v", company.ID, company.OwnerUserID, err)
		}
	}

	if err := s.authz.DeleteCompany(ctx, company.ID); err != nil {
		s.logger.Errorf("failed to delete company from authz: %v", err)
	}

	s.logger.Security().AdminAction(callerID, "delete_company", "company:"+company.ID)

	return nil
}

func (s *Service) markUnavailable(component string) {
	if err := s.monitor.SetDependencyAvailability(map[string]string{"component": component}, 0); err != nil {
		s.logger.Debugf("failed to record %s availability: %v", component, err)
	}
}

func (s *Service) countDeleted(table string, n int64) {
	if n == 0 {
		return
	}
	if err := s.monitor.AddDeletedRows(map[string]string{"table": table}, float64(n)); err != nil {
		s.logger.Debugf("failed to record rows deleted from %s: %v", table, err)
	}
}
