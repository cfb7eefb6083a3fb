// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/types"
)

type scopeKey int

const (
	scopeUnits scopeKey = iota
	scopeCompany
	scopeCampaigns
	scopeTerms
	scopeOwner
)

// step deletes the rows of table whose column matches the values resolved for scope
type step struct {
	table  string
	column string
	scope  scopeKey
}

// tier groups steps with no ordering constraint between them
type tier []step

// cascadePlan lists the dependents of a company, children before parents. Every tier completes
// before the next one starts.
var cascadePlan = []tier{
	{
		{storage.TableAppointments, "unit_id", scopeUnits},
		{storage.TableAppointmentDeletions, "unit_id", scopeUnits},
		{storage.TableCancellationHistory, "unit_id", scopeUnits},
		{storage.TableClientDependents, "unit_id", scopeUnits},
		{storage.TableProductSales, "unit_id", scopeUnits},
	},
	{
		{storage.TableClients, "unit_id", scopeUnits},
		{storage.TableProducts, "unit_id", scopeUnits},
		{storage.TableExpenses, "unit_id", scopeUnits},
		{storage.TableServices, "unit_id", scopeUnits},
	},
	// barbers without a unit still hold company_id, scoping by company covers them too
	{
		{storage.TableBarbers, "company_id", scopeCompany},
	},
	{
		{storage.TableUnits, "company_id", scopeCompany},
	},
	{
		{storage.TableAutomationLogs, "company_id", scopeCompany},
		{storage.TableCampaignMessageLogs, "campaign_id", scopeCampaigns},
		{storage.TableTermAcceptances, "term_id", scopeTerms},
		{storage.TableFeedbacks, "company_id", scopeCompany},
	},
	{
		{storage.TableMarketingCampaigns, "company_id", scopeCompany},
		{storage.TablePartnershipTerms, "company_id", scopeCompany},
	},
	{
		{storage.TableBusinessSettings, "user_id", scopeOwner},
		{storage.TableBusinessHours, "user_id", scopeOwner},
		{storage.TableHolidays, "user_id", scopeOwner},
		{storage.TableMessageTemplates, "user_id", scopeOwner},
		{storage.TableUserRoles, "user_id", scopeOwner},
	},
}

type scopeKeys map[scopeKey][]string

// resolveScope reads every key the plan needs before anything is deleted, a retry after a
// partial failure resolves whatever is left.
func (s *Service) resolveScope(ctx context.Context, company *types.Company) (scopeKeys, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.resolveScope")
	defer span.End()

	companyIDs := []string{company.ID}

	units, err := s.storage.ListIDs(ctx, storage.TableUnits, "company_id", companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve units: %w", err)
	}

	campaigns, err := s.storage.ListIDs(ctx, storage.TableMarketingCampaigns, "company_id", companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve campaigns: %w", err)
	}

	terms, err := s.storage.ListIDs(ctx, storage.TablePartnershipTerms, "company_id", companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve terms: %w", err)
	}

	keys := scopeKeys{
		scopeUnits:     units,
		scopeCompany:   companyIDs,
		scopeCampaigns: campaigns,
		scopeTerms:     terms,
		scopeOwner:     nil,
	}
	if company.OwnerUserID != "" {
		keys[scopeOwner] = []string{company.OwnerUserID}
	}

	return keys, nil
}

// runCascade executes plan tier by tier, at most s.parallelism steps at a time. The first failing
// step stops the plan, rows removed by earlier steps stay removed.
func (s *Service) runCascade(ctx context.Context, plan []tier, keys scopeKeys) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.runCascade")
	defer span.End()

	for i, t := range plan {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.parallelism)

		for _, st := range t {
			values := keys[st.scope]
			if len(values) == 0 {
				continue
			}

			g.Go(func() error {
				n, err := s.storage.DeleteWhereIn(gctx, st.table, st.column, values)
				if err != nil {
					return fmt.Errorf("failed to delete %s: %w", st.table, err)
				}

				s.countDeleted(st.table, n)
				s.logger.Debugf("cascade tier %d removed %d rows from %s", i+1, n, st.table)

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}
