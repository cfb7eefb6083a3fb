// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/barbersoft/account-service/internal/logging"
)

var _ ClientInterface = (*NoopClient)(nil)

// NoopClient stands in when no payment processor key is configured, every call fails
type NoopClient struct {
	logger logging.LoggerInterface
}

func (c *NoopClient) CancelAllSubscriptions(ctx context.Context, customerID string) error {
	c.logger.Warnf("billing is not configured, cannot cancel subscriptions of %s", customerID)
	return ErrBillingUnavailable
}

func (c *NoopClient) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	return "", ErrBillingUnavailable
}

func (c *NoopClient) ParseWebhook(payload []byte, signature string) (*SubscriptionEvent, error) {
	return nil, ErrBillingUnavailable
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}
