// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

func TestSender_Send(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedID  string
		expectedErr bool
	}{
		{name: "delivered", status: http.StatusOK, body: `{"id":"email-1"}`, expectedID: "email-1"},
		{name: "rejected", status: http.StatusUnprocessableEntity, body: `{"statusCode":422,"name":"validation_error","message":"invalid"}`, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			var auth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				auth = r.Header.Get("Authorization")
				if r.URL.Path != "/emails" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s, err := NewSender("re_test", "BarberSoft <noreply@barbersoft.com.br>", srv.URL+"/", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			id, err := s.Send(context.Background(), Message{To: "carlos@example.com", Subject: "Termo - BarberSoft", HTML: "<p>oi</p>"})

			if tt.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expectedID {
				t.Errorf("expected id %s, got %s", tt.expectedID, id)
			}
			if auth != "Bearer re_test" {
				t.Errorf("expected the api key as bearer, got %q", auth)
			}
			if got["from"] != "BarberSoft <noreply@barbersoft.com.br>" || got["subject"] != "Termo - BarberSoft" {
				t.Errorf("unexpected payload %v", got)
			}
		})
	}
}

func TestNoopSender(t *testing.T) {
	if _, err := NewNoopSender(logging.NewNoopLogger()).Send(context.Background(), Message{}); !errors.Is(err, ErrMailUnavailable) {
		t.Errorf("expected ErrMailUnavailable, got %v", err)
	}
}
