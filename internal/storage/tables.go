// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

// Tables owned by a tenant, the generic cascade helpers refuse any other name.
const (
	TableCompanies            = "companies"
	TableUnits                = "units"
	TableBarbers              = "barbers"
	TableClients              = "clients"
	TableClientDependents     = "client_dependents"
	TableAppointments         = "appointments"
	TableAppointmentDeletions = "appointment_deletions"
	TableCancellationHistory  = "cancellation_history"
	TableProducts             = "products"
	TableProductSales         = "product_sales"
	TableExpenses             = "expenses"
	TableServices             = "services"
	TableAutomationLogs       = "automation_logs"
	TableMarketingCampaigns   = "marketing_campaigns"
	TableCampaignMessageLogs  = "campaign_message_logs"
	TablePartnershipTerms     = "partnership_terms"
	TableTermAcceptances      = "term_acceptances"
	TableFeedbacks            = "feedbacks"
	TableBusinessSettings     = "business_settings"
	TableBusinessHours        = "business_hours"
	TableHolidays             = "holidays"
	TableMessageTemplates     = "message_templates"
	TableUserRoles            = "user_roles"
)

var tenantTables = map[string]struct{}{
	TableCompanies:            {},
	TableUnits:                {},
	TableBarbers:              {},
	TableClients:              {},
	TableClientDependents:     {},
	TableAppointments:         {},
	TableAppointmentDeletions: {},
	TableCancellationHistory:  {},
	TableProducts:             {},
	TableProductSales:         {},
	TableExpenses:             {},
	TableServices:             {},
	TableAutomationLogs:       {},
	TableMarketingCampaigns:   {},
	TableCampaignMessageLogs:  {},
	TablePartnershipTerms:     {},
	TableTermAcceptances:      {},
	TableFeedbacks:            {},
	TableBusinessSettings:     {},
	TableBusinessHours:        {},
	TableHolidays:             {},
	TableMessageTemplates:     {},
	TableUserRoles:            {},
}

// scoping columns accepted by the generic helpers
var tenantColumns = map[string]struct{}{
	"id":          {},
	"unit_id":     {},
	"company_id":  {},
	"user_id":     {},
	"campaign_id": {},
	"term_id":     {},
}

func knownTable(table, column string) bool {
	_, okTable := tenantTables[table]
	_, okColumn := tenantColumns[column]
	return okTable && okColumn
}
