// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestAPI_AcceptancePage(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "renders the term behind the scroll gate",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				"Eu, João, aceito.",
				"Versão 2",
				`name="scrolled_to_end"`,
				`id="accept" disabled`,
				"var threshold =",
			},
		},
		{
			name: "consumed link",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(nil, ErrInvalidToken)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{"Link inválido, expirado ou termo já aceito."},
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{"Erro interno. Tente novamente."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mux := setupAPI(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodGet, "/termo-profissional/tok", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("expected html, got %q", ct)
			}
			for _, want := range tt.expectedBody {
				if !strings.Contains(w.Body.String(), want) {
					t.Errorf("expected page to contain %q", want)
				}
			}
		})
	}
}

func TestAPI_SubmitAcceptance(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "accept without scrolling",
			form: url.Values{"accept": {"on"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Role o termo até o final antes de aceitar.",
		},
		{
			name: "accept without the checkbox",
			form: url.Values{"scrolled_to_end": {"true"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Confirme que leu e concorda com o termo.",
		},
		{
			name: "scrolled and checked",
			form: url.Values{"scrolled_to_end": {"true"}, "accept": {"on"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
				s.EXPECT().Accept(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req AcceptRequest) (bool, error) {
						if req.Token != "tok" || req.TermID != termID {
							t.Errorf("unexpected request %+v", req)
						}
						if req.ContentSnapshot != "Eu, {{nome}}, aceito." {
							t.Errorf("expected the raw term as snapshot, got %q", req.ContentSnapshot)
						}
						if req.IP != "203.0.113.7" {
							t.Errorf("expected submitter ip, got %q", req.IP)
						}
						return true, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Termo Aceito!",
		},
		{
			name: "token consumed in between",
			form: url.Values{"scrolled_to_end": {"true"}, "accept": {"on"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
				s.EXPECT().Accept(gomock.Any(), gomock.Any()).Return(false, ErrAlreadyAccepted)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Termo já foi aceito ou link inválido.",
		},
		{
			name: "commission changed while reading",
			form: url.Values{"scrolled_to_end": {"true"}, "accept": {"on"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
				s.EXPECT().Accept(gomock.Any(), gomock.Any()).Return(false, ErrCommissionMismatch)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "A comissão foi alterada. Recarregue o termo antes de aceitar.",
		},
		{
			name: "already used link",
			form: url.Values{"scrolled_to_end": {"true"}, "accept": {"on"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(nil, ErrInvalidToken)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Link inválido, expirado ou termo já aceito.",
		},
		{
			name: "storage failure on accept",
			form: url.Values{"scrolled_to_end": {"true"}, "accept": {"on"}},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().LoadAcceptance(gomock.Any(), "tok").Return(testAcceptance(), nil)
				s.EXPECT().Accept(gomock.Any(), gomock.Any()).Return(false, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Erro interno. Tente novamente.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mux := setupAPI(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/termo-profissional/tok", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("expected page to contain %q, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}
