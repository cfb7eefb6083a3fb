// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"github.com/barbersoft/account-service/internal/billing"
	"github.com/barbersoft/account-service/internal/types"
)

var subscriptionPlanStatus = map[string]types.PlanStatus{
	"active":             types.PlanActive,
	"trialing":           types.PlanTrial,
	"past_due":           types.PlanOverdue,
	"unpaid":             types.PlanOverdue,
	"canceled":           types.PlanCancelled,
	"incomplete_expired": types.PlanCancelled,
}

// planStatusFor maps a subscription event to the plan status it implies, false when the event
// says nothing about the plan (incomplete or paused subscriptions).
func planStatusFor(event *billing.SubscriptionEvent) (types.PlanStatus, bool) {
	if event.Type == billing.EventSubscriptionDeleted {
		return types.PlanCancelled, true
	}

	status, ok := subscriptionPlanStatus[event.Status]
	return status, ok
}
