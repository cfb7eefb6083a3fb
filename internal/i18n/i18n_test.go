// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	tests := []struct {
		header   string
		expected language.Tag
	}{
		{header: "", expected: language.BrazilianPortuguese},
		{header: "pt-BR,pt;q=0.9", expected: language.BrazilianPortuguese},
		{header: "en-US,en;q=0.9", expected: language.English},
		{header: "fr-FR", expected: language.BrazilianPortuguese},
		{header: "not a header;;", expected: language.BrazilianPortuguese},
	}

	for _, test := range tests {
		t.Run(test.header, func(t *testing.T) {
			if got := ResolveTag(test.header); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for k := range portuguese {
		if _, ok := english[k]; !ok {
			t.Errorf("missing english text for %s", k)
		}
	}
	if len(portuguese) != len(english) {
		t.Errorf("catalog sizes differ: %d pt-BR, %d en", len(portuguese), len(english))
	}
}

func TestT(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if got := T(r, BillingCancelFailed); got != "Não foi possível cancelar a assinatura no Stripe. Por favor, cancele a assinatura antes de excluir a conta." {
		t.Errorf("unexpected default message %q", got)
	}

	r.Header.Set("Accept-Language", "en")
	if got := T(r, DeleteAccountFailed); got != "Failed to delete the account. Please try again." {
		t.Errorf("unexpected english message %q", got)
	}
}
