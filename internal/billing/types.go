// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package billing

import "errors"

var (
	// ErrBillingUnavailable is returned by every operation when no payment processor is configured
	ErrBillingUnavailable = errors.New("billing is not configured")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	// ErrIgnoredEvent marks a well formed delivery that carries no subscription change
	ErrIgnoredEvent = errors.New("event is not a subscription change")
)

const (
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

type SubscriptionEvent struct {
	Type           string
	SubscriptionID string
	CustomerID     string
	Status         string
}
