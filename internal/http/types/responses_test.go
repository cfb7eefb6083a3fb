// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriters(t *testing.T) {
	tests := []struct {
		name           string
		write          func(http.ResponseWriter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "error",
			write:          func(w http.ResponseWriter) { WriteError(w, http.StatusNotFound, "Company not found") },
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Company not found"}` + "\n",
		},
		{
			name:           "success",
			write:          func(w http.ResponseWriter) { WriteSuccess(w, "Account deleted successfully") },
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Account deleted successfully"}` + "\n",
		},
		{
			name:           "failure",
			write:          func(w http.ResponseWriter) { WriteFailure(w, http.StatusUnauthorized, "Unauthorized") },
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"Unauthorized"}` + "\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			test.write(w)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, w.Code)
			}
			if w.Body.String() != test.expectedBody {
				t.Errorf("expected body %q, got %q", test.expectedBody, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %s", ct)
			}
		})
	}
}
