// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

// Package i18n resolves user facing messages, Brazilian Portuguese first.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	supported = []language.Tag{language.BrazilianPortuguese, language.English}
	matcher   = language.NewMatcher(supported)
	messages  = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))
	for k, v := range portuguese {
		_ = b.SetString(language.BrazilianPortuguese, string(k), v)
	}
	for k, v := range english {
		_ = b.SetString(language.English, string(k), v)
	}
	return b
}

// ResolveTag picks the supported language closest to an Accept-Language header value
func ResolveTag(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Message returns the text of key in tag, falling back to Portuguese
func Message(tag language.Tag, key Key) string {
	p := message.NewPrinter(tag, message.Catalog(messages))
	return p.Sprintf(message.Reference(string(key)))
}

// T resolves key in the language asked for by r
func T(r *http.Request, key Key) string {
	return Message(ResolveTag(r.Header.Get("Accept-Language")), key)
}
