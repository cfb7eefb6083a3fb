// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/barbersoft/account-service/internal/types"
)

func TestRender(t *testing.T) {
	barber := &types.Barber{Name: "João", CommissionRate: decimal.RequireFromString("12.50")}

	tests := []struct {
		name     string
		content  string
		barber   *types.Barber
		unitName string
		expected string
	}{
		{
			name:     "placeholders and line breaks",
			content:  "Olá {{nome}}\nComissão: {{comissao}}\nUnidade: {{unidade}}",
			barber:   barber,
			unitName: "Centro",
			expected: "Olá João<br/>Comissão: 12.5%<br/>Unidade: Centro",
		},
		{
			name:     "missing unit name",
			content:  "{{unidade}}",
			barber:   barber,
			expected: "Unidade",
		},
		{
			name:     "whole commission",
			content:  "{{comissao}} e {{comissao}}",
			barber:   &types.Barber{Name: "Ana", CommissionRate: decimal.RequireFromString("40.00")},
			expected: "40% e 40%",
		},
		{
			name:     "allowed markup survives without attributes",
			content:  `<p style="color:red"><strong>{{nome}}</strong></p><h2 onclick="x()">Cláusula</h2>`,
			barber:   barber,
			expected: "<p><strong>João</strong></p><h2>Cláusula</h2>",
		},
		{
			name:     "scripts and links are stripped",
			content:  `<script>alert(1)</script><a href="https://evil.example">clique</a>`,
			barber:   barber,
			expected: "clique",
		},
		{
			name:     "substituted values are sanitized too",
			content:  "Sr. {{nome}}",
			barber:   &types.Barber{Name: "<img src=x onerror=alert(1)>Rui", CommissionRate: decimal.NewFromInt(10)},
			expected: "Sr. Rui",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.content, tt.barber, tt.unitName); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRenderNeverKeepsDisallowedTags(t *testing.T) {
	out := Render("<iframe src=x></iframe><table><tr><td>{{nome}}</td></tr></table>", &types.Barber{Name: "Leo"}, "")

	for _, tag := range []string{"<iframe", "<table", "<tr", "<td"} {
		if strings.Contains(out, tag) {
			t.Errorf("%s survived sanitizing: %q", tag, out)
		}
	}
	if !strings.Contains(out, "Leo") {
		t.Errorf("expected text content to survive, got %q", out)
	}
}

func TestFormatRate(t *testing.T) {
	tests := map[string]string{
		"12.50": "12.5%",
		"30.00": "30%",
		"7.25":  "7.25%",
		"0":     "0%",
	}

	for in, expected := range tests {
		if got := FormatRate(decimal.RequireFromString(in)); got != expected {
			t.Errorf("FormatRate(%s) = %s, want %s", in, got, expected)
		}
	}
}
