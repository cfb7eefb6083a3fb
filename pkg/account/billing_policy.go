// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"github.com/barbersoft/account-service/internal/types"
)

type guardOutcome int

const (
	proceed guardOutcome = iota
	abort
)

func (o guardOutcome) String() string {
	if o == abort {
		return "abort"
	}
	return "proceed"
}

// onCancelFailure says what a failed subscription cancellation means for each plan status.
// Statuses not listed proceed.
var onCancelFailure = map[types.PlanStatus]guardOutcome{
	types.PlanActive:    abort,
	types.PlanTrial:     proceed,
	types.PlanOverdue:   proceed,
	types.PlanCancelled: proceed,
}

func decideBilling(status types.PlanStatus, cancelErr error) guardOutcome {
	if cancelErr == nil {
		return proceed
	}

	if outcome, ok := onCancelFailure[status]; ok {
		return outcome
	}

	return proceed
}
