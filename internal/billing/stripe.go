// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	api           *client.API
	webhookSecret string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// terminal subscriptions cannot be cancelled any more
func terminal(status stripe.SubscriptionStatus) bool {
	return status == stripe.SubscriptionStatusCanceled || status == stripe.SubscriptionStatusIncompleteExpired
}

func resourceMissing(err error) bool {
	var stripeErr *stripe.Error
	return errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing
}

func (c *Client) CancelAllSubscriptions(ctx context.Context, customerID string) error {
	ctx, span := c.tracer.Start(ctx, "billing.Client.CancelAllSubscriptions")
	defer span.End()

	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx

	var ids []string
	i := c.api.Subscriptions.List(params)
	for i.Next() {
		s := i.Subscription()
		if terminal(s.Status) {
			continue
		}
		ids = append(ids, s.ID)
	}
	if err := i.Err(); err != nil {
		if resourceMissing(err) {
			c.logger.Infof("billing customer %s does not exist, nothing to cancel", customerID)
			return nil
		}
		c.setAvailability(0)
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}

	for _, id := range ids {
		cancel := &stripe.SubscriptionCancelParams{}
		cancel.Context = ctx

		if _, err := c.api.Subscriptions.Cancel(id, cancel); err != nil {
			if resourceMissing(err) {
				continue
			}
			c.setAvailability(0)
			return fmt.Errorf("failed to cancel subscription %s: %w", id, err)
		}
		c.logger.Infof("cancelled subscription %s of customer %s", id, customerID)
	}

	c.setAvailability(1)
	return nil
}

func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "billing.Client.CreatePortalSession")
	defer span.End()

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	session, err := c.api.BillingPortalSessions.New(params)
	if err != nil {
		c.setAvailability(0)
		return "", fmt.Errorf("failed to create billing portal session: %w", err)
	}

	c.setAvailability(1)
	return session.URL, nil
}

func (c *Client) ParseWebhook(payload []byte, signature string) (*SubscriptionEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		c.logger.Debugf("webhook verification failed: %v", err)
		return nil, ErrInvalidSignature
	}

	switch string(event.Type) {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
	default:
		return nil, ErrIgnoredEvent
	}

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, fmt.Errorf("failed to decode subscription: %w", err)
	}

	e := &SubscriptionEvent{
		Type:           string(event.Type),
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
	}
	if sub.Customer != nil {
		e.CustomerID = sub.Customer.ID
	}

	return e, nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "billing"}, v); err != nil {
		c.logger.Debugf("failed to record billing availability: %v", err)
	}
}

// NewClient talks to the payment processor, backends is nil outside of tests
func NewClient(secretKey, webhookSecret string, backends *stripe.Backends, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)
	c.api = client.New(secretKey, backends)
	c.webhookSecret = webhookSecret

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
