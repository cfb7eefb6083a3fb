// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"

	"github.com/barbersoft/account-service/internal/types"
)

const defaultUnitName = "Unidade"

var contractPolicy = bluemonday.NewPolicy().AllowElements(
	"br", "b", "i", "u", "strong", "em", "p",
	"ul", "ol", "li", "h1", "h2", "h3", "h4", "h5", "h6",
)

// FormatRate prints a commission rate without trailing zeros, 12.50 becomes "12.5%"
func FormatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// Render fills the placeholders of a term for barber and returns sanitized HTML.
// Placeholders are replaced before sanitizing so substituted values go through the policy too.
func Render(content string, barber *types.Barber, unitName string) string {
	if unitName == "" {
		unitName = defaultUnitName
	}

	filled := strings.NewReplacer(
		"{{nome}}", barber.Name,
		"{{comissao}}", FormatRate(barber.CommissionRate),
		"{{unidade}}", unitName,
	).Replace(content)

	return contractPolicy.Sanitize(strings.ReplaceAll(filled, "\n", "<br/>"))
}
