// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

var ErrMailUnavailable = errors.New("email delivery is not configured")

type Message struct {
	To      string
	Subject string
	HTML    string
}

var _ SenderInterface = (*Sender)(nil)

type Sender struct {
	client *resend.Client
	from   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Sender) Send(ctx context.Context, msg Message) (string, error) {
	ctx, span := s.tracer.Start(ctx, "mail.Sender.Send")
	defer span.End()

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		s.setAvailability(0)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.setAvailability(1)
	s.logger.Debugf("email %s sent", sent.Id)

	return sent.Id, nil
}

func (s *Sender) setAvailability(v float64) {
	if err := s.monitor.SetDependencyAvailability(map[string]string{"component": "email"}, v); err != nil {
		s.logger.Debugf("failed to record email availability: %v", err)
	}
}

// NewSender delivers through Resend, baseURL overrides the API endpoint and is empty in production
func NewSender(apiKey, from, baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Sender, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid email api url: %w", err)
		}
		client.BaseURL = u
	}

	s := new(Sender)
	s.client = client
	s.from = from

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}

var _ SenderInterface = (*NoopSender)(nil)

// NoopSender refuses to send, used when no API key is configured
type NoopSender struct {
	logger logging.LoggerInterface
}

func (s *NoopSender) Send(ctx context.Context, msg Message) (string, error) {
	s.logger.Warnf("email delivery is not configured, dropping %q", msg.Subject)
	return "", ErrMailUnavailable
}

func NewNoopSender(logger logging.LoggerInterface) *NoopSender {
	return &NoopSender{logger: logger}
}
