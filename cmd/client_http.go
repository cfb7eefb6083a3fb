// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/barbersoft/account-service/internal/http/types"
	"github.com/barbersoft/account-service/pkg/account"
	"github.com/barbersoft/account-service/pkg/terms"
)

type httpAccountClient struct {
	endpoint string
	token    string
	client   *http.Client
}

var _ AccountClientInterface = (*httpAccountClient)(nil)

func newHTTPAccountClient(endpoint, token string, client *http.Client) *httpAccountClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	return &httpAccountClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		token:    token,
		client:   client,
	}
}

// do sends in as JSON and decodes the answer into out, error bodies become the returned error
func (c *httpAccountClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var e types.ErrorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

func (c *httpAccountClient) message(ctx context.Context, path string, in any) (string, error) {
	var out types.Response
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *httpAccountClient) DeleteCompany(ctx context.Context, companyID string) (string, error) {
	return c.message(ctx, "/api/v0/admin/companies/delete", account.DeleteCompanyRequest{CompanyID: companyID})
}

func (c *httpAccountClient) DeleteMyAccount(ctx context.Context) (string, error) {
	return c.message(ctx, "/api/v0/account/delete", nil)
}

func (c *httpAccountClient) BillingPortal(ctx context.Context) (string, error) {
	var out account.PortalResponse
	if err := c.do(ctx, http.MethodPost, "/api/v0/billing/portal", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *httpAccountClient) SendTerm(ctx context.Context, barberID, termID string) (string, error) {
	return c.message(ctx, "/api/v0/terms/send", terms.SendTermRequest{BarberID: barberID, TermID: termID})
}

func (c *httpAccountClient) TermStatus(ctx context.Context, barberID string) (*terms.Status, error) {
	out := new(terms.Status)
	if err := c.do(ctx, http.MethodGet, "/api/v0/barbers/"+barberID+"/term-status", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpAccountClient) SetBarberActive(ctx context.Context, barberID string, active bool) (string, error) {
	return c.message(ctx, "/api/v0/barbers/"+barberID+"/active", terms.SetActiveRequest{Active: &active})
}
