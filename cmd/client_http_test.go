// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPAccountClient(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
		auth   string
	}

	var got call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = call{method: r.Method, path: r.URL.Path, body: string(b), auth: r.Header.Get("Authorization")}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v0/billing/portal":
			_, _ = w.Write([]byte(`{"url":"https://billing.example.com/session"}`))
		case "/api/v0/barbers/b-1/term-status":
			_, _ = w.Write([]byte(`{"has_active_term":true,"accepted":false,"accepted_at":null,"term_version":"3"}`))
		case "/api/v0/account/delete":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Could not cancel the subscription"}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"message":"done"}`))
		}
	}))
	defer srv.Close()

	c := newHTTPAccountClient(srv.URL+"/", "tok", srv.Client())
	ctx := context.Background()

	t.Run("delete company", func(t *testing.T) {
		msg, err := c.DeleteCompany(ctx, "c-1")
		if err != nil || msg != "done" {
			t.Fatalf("unexpected result %q, %v", msg, err)
		}
		if got.method != http.MethodPost || got.path != "/api/v0/admin/companies/delete" || got.body != `{"companyId":"c-1"}` {
			t.Errorf("unexpected call %+v", got)
		}
		if got.auth != "Bearer tok" {
			t.Errorf("expected bearer, got %q", got.auth)
		}
	})

	t.Run("api errors carry the message", func(t *testing.T) {
		_, err := c.DeleteMyAccount(ctx)
		if err == nil || !strings.Contains(err.Error(), "status 500") || !strings.Contains(err.Error(), "Could not cancel the subscription") {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("billing portal", func(t *testing.T) {
		url, err := c.BillingPortal(ctx)
		if err != nil || url != "https://billing.example.com/session" {
			t.Fatalf("unexpected result %q, %v", url, err)
		}
	})

	t.Run("send term", func(t *testing.T) {
		if _, err := c.SendTerm(ctx, "b-1", ""); err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		var body map[string]string
		if err := json.Unmarshal([]byte(got.body), &body); err != nil {
			t.Fatalf("invalid body %q", got.body)
		}
		if body["barber_id"] != "b-1" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("term status", func(t *testing.T) {
		status, err := c.TermStatus(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if got.method != http.MethodGet || !status.HasActiveTerm || status.Accepted || status.TermVersion != "3" {
			t.Errorf("unexpected status %+v", status)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		if _, err := c.SetBarberActive(ctx, "b-1", false); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if got.path != "/api/v0/barbers/b-1/active" || got.body != `{"active":false}` {
			t.Errorf("unexpected call %+v", got)
		}
	})
}

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"up"}, false},
		{[]string{"status"}, false},
		{[]string{"check"}, false},
		{[]string{"down", "3"}, false},
		{[]string{"sideways"}, true},
		{[]string{"up", "3"}, true},
		{[]string{"down", "-1"}, true},
		{[]string{"down", "x"}, true},
		{[]string{"down", "1", "2"}, true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			err := migrateArgs(migrateCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
