// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/mail"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/internal/types"
)

const superAdminRole = "super_admin"

var (
	ErrInvalidToken        = errors.New("term link is invalid, expired or already used")
	ErrNoActiveTerm        = errors.New("no active partnership term")
	ErrAmbiguousActiveTerm = errors.New("more than one active partnership term")
	ErrAlreadyAccepted     = errors.New("term already accepted or link invalid")
	ErrTermMismatch        = errors.New("term does not belong to the barber's company")
	ErrCommissionMismatch  = errors.New("agreed commission differs from the barber's current commission")
	ErrBarberIDRequired    = errors.New("barber id is required")
	ErrBarberNotFound      = errors.New("barber not found")
	ErrBarberWithoutEmail  = errors.New("barber has no email address")
	ErrTermNotFound        = errors.New("term not found")
	ErrEmailDelivery       = errors.New("term email could not be delivered")
	ErrTermPending         = errors.New("active term not accepted yet")
	ErrForbidden           = errors.New("caller cannot manage this barber")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxInterface
	mailer  MailerInterface
	siteURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	mailer MailerInterface,
	siteURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		mailer:  mailer,
		siteURL: strings.TrimRight(siteURL, "/"),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// IssueToken stores a fresh acceptance token on the barber, invalidating any earlier link.
func (s *Service) IssueToken(ctx context.Context, barberID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "terms.Service.IssueToken")
	defer span.End()

	token, err := newToken()
	if err != nil {
		return "", err
	}

	if err := s.storage.SetBarberTermToken(ctx, barberID, token); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrBarberNotFound
		}
		return "", fmt.Errorf("failed to store term token: %w", err)
	}

	return token, nil
}

func (s *Service) LookupByToken(ctx context.Context, token string) (*BarberView, error) {
	ctx, span := s.tracer.Start(ctx, "terms.Service.LookupByToken")
	defer span.End()

	barber, err := s.storage.GetBarberByTermToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up term token: %w", err)
	}

	return newBarberView(barber), nil
}

// ActiveTerm returns the single active term of a company.
func (s *Service) ActiveTerm(ctx context.Context, companyID string) (*types.PartnershipTerm, error) {
	ctx, span := s.tracer.Start(ctx, "terms.Service.ActiveTerm")
	defer span.End()

	terms, err := s.storage.ListActiveTerms(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active terms: %w", err)
	}

	switch len(terms) {
	case 0:
		return nil, ErrNoActiveTerm
	case 1:
		return terms[0], nil
	default:
		s.logger.Errorf("company %s has more than one active partnership term", companyID)
		return nil, ErrAmbiguousActiveTerm
	}
}

// LoadAcceptance resolves a token into the barber and the rendered active term of its company.
func (s *Service) LoadAcceptance(ctx context.Context, token string) (*Acceptance, error) {
	ctx, span := s.tracer.Start(ctx, "terms.Service.LoadAcceptance")
	defer span.End()

	barber, err := s.LookupByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	term, err := s.ActiveTerm(ctx, barber.CompanyID)
	if err != nil {
		return nil, err
	}

	rendered := Render(term.Content, &types.Barber{Name: barber.Name, CommissionRate: barber.CommissionRate}, barber.UnitName)

	return &Acceptance{
		Barber: barber,
		Term: &TermView{
			ID:       term.ID,
			Title:    term.Title,
			Version:  term.Version,
			Content:  term.Content,
			Rendered: rendered,
		},
	}, nil
}

// Accept consumes the token and records the acceptance in one transaction. The boolean is false
// when the token was already used, any other failure rolls back and leaves the token live.
func (s *Service) Accept(ctx context.Context, req AcceptRequest) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "terms.Service.Accept")
	defer span.End()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		barber, err := s.storage.ConsumeTermToken(ctx, req.Token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrAlreadyAccepted
			}
			return fmt.Errorf("failed to consume term token: %w", err)
		}

		term, err := s.storage.GetTerm(ctx, req.TermID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrTermNotFound
			}
			return fmt.Errorf("failed to fetch term: %w", err)
		}

		if term.CompanyID != barber.CompanyID {
			return ErrTermMismatch
		}

		// the rate shown to the barber is what gets recorded, a stale page must be reloaded first
		if !req.CommissionRate.Equal(barber.CommissionRate) {
			return ErrCommissionMismatch
		}

		_, err = s.storage.CreateTermAcceptance(ctx, &types.TermAcceptance{
			TermID:          term.ID,
			BarberID:        barber.ID,
			ContentSnapshot: req.ContentSnapshot,
			CommissionRate:  req.CommissionRate,
			IPAddress:       req.IP,
			UserAgent:       req.UserAgent,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return ErrAlreadyAccepted
			}
			return fmt.Errorf("failed to record term acceptance: %w", err)
		}

		return nil
	})

	if err != nil {
		return false, err
	}

	return true, nil
}

// SendByEmail issues a new token for the barber and mails the rendered term with the acceptance
// link. An empty termID picks the active term of the barber's company.
func (s *Service) SendByEmail(ctx context.Context, callerID, barberID, termID string) error {
	ctx, span := s.tracer.Start(ctx, "terms.Service.SendByEmail")
	defer span.End()

	if barberID == "" {
		return ErrBarberIDRequired
	}

	barber, err := s.barber(ctx, callerID, barberID)
	if err != nil {
		return err
	}

	if barber.Email == "" {
		return ErrBarberWithoutEmail
	}

	var term *types.PartnershipTerm
	if termID != "" {
		term, err = s.storage.GetTerm(ctx, termID)
		if errors.Is(err, storage.ErrNotFound) || (err == nil && term.CompanyID != barber.CompanyID) {
			return ErrTermNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to fetch term: %w", err)
		}
	} else {
		term, err = s.ActiveTerm(ctx, barber.CompanyID)
		if err != nil {
			return err
		}
	}

	token, err := s.IssueToken(ctx, barber.ID)
	if err != nil {
		return err
	}

	html, err := renderEmail(emailData{
		Title:      term.Title,
		BarberName: barber.Name,
		Version:    term.Version,
		Commission: FormatRate(barber.CommissionRate),
		AcceptURL:  s.siteURL + "/termo-profissional/" + token,
		Content:    template.HTML(Render(term.Content, barber, barber.UnitName)),
	})
	if err != nil {
		return err
	}

	id, err := s.mailer.Send(ctx, mail.Message{
		To:      barber.Email,
		Subject: term.Title + " - BarberSoft",
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	s.logger.Infof("term %s sent to barber %s (message %s)", term.ID, barber.ID, id)

	return nil
}

// TermStatus reports whether the barber accepted the active term of its company.
func (s *Service) TermStatus(ctx context.Context, callerID, barberID string) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "terms.Service.TermStatus")
	defer span.End()

	barber, err := s.barber(ctx, callerID, barberID)
	if err != nil {
		return nil, err
	}

	return s.status(ctx, barber)
}

// SetBarberActive toggles the barber schedule, activation waits for the active term to be accepted.
func (s *Service) SetBarberActive(ctx context.Context, callerID, barberID string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "terms.Service.SetBarberActive")
	defer span.End()

	barber, err := s.barber(ctx, callerID, barberID)
	if err != nil {
		return err
	}

	if active {
		status, err := s.status(ctx, barber)
		if err != nil {
			return err
		}
		if status.HasActiveTerm && !status.Accepted {
			return ErrTermPending
		}
	}

	if err := s.storage.SetBarberActive(ctx, barber.ID, active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrBarberNotFound
		}
		return fmt.Errorf("failed to update barber: %w", err)
	}

	return nil
}

func (s *Service) status(ctx context.Context, barber *types.Barber) (*Status, error) {
	term, err := s.ActiveTerm(ctx, barber.CompanyID)
	if err != nil {
		if errors.Is(err, ErrNoActiveTerm) {
			return &Status{}, nil
		}
		return nil, err
	}

	st := &Status{HasActiveTerm: true, TermVersion: term.Version}

	acceptance, err := s.storage.GetTermAcceptance(ctx, barber.ID, term.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return st, nil
		}
		return nil, fmt.Errorf("failed to fetch term acceptance: %w", err)
	}

	st.Accepted = true
	st.AcceptedAt = &acceptance.AcceptedAt

	return st, nil
}

// barber loads a barber the caller is allowed to manage: the owner of its company or a super admin.
func (s *Service) barber(ctx context.Context, callerID, barberID string) (*types.Barber, error) {
	barber, err := s.storage.GetBarber(ctx, barberID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, fmt.Errorf("failed to fetch barber: %w", err)
	}

	company, err := s.storage.GetCompanyByID(ctx, barber.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	if company.OwnerUserID == callerID {
		return barber, nil
	}

	admin, err := s.storage.HasRole(ctx, callerID, superAdminRole)
	if err != nil {
		return nil, fmt.Errorf("failed to check role: %w", err)
	}
	if !admin {
		s.logger.Security().AuthzFailure(callerID, "barber:"+barberID)
		return nil, ErrForbidden
	}

	return barber, nil
}
