// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package billing

import "context"

type ClientInterface interface {
	// CancelAllSubscriptions cancels every subscription of the customer that is not already over
	CancelAllSubscriptions(ctx context.Context, customerID string) error
	// CreatePortalSession returns the URL of a self service billing portal session
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	// ParseWebhook verifies the signature of a webhook delivery and decodes subscription events
	ParseWebhook(payload []byte, signature string) (*SubscriptionEvent, error)
}
