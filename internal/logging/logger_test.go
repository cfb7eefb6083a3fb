// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestLevelParsing(t *testing.T) {
	tests := []struct {
		input   string
		enabled string
	}{
		{input: "debug", enabled: "debug"},
		{input: "INFO", enabled: "info"},
		{input: "warning", enabled: "warn"},
		{input: "garbage", enabled: "error"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			logger := NewLogger(test.input)

			if got := logger.Level().String(); got != test.enabled {
				t.Fatalf("expected level %s, got %s", test.enabled, got)
			}
		})
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	logger := NewNoopLogger()

	logger.Security().SystemStartup()
	logger.Security().AdminAction("user-1", "delete_company", "company:1")
	logger.Security().AuthzFailure("user-1", "company:1")

	if err := logger.Sync(); err != nil {
		t.Fatalf("noop logger sync should not fail: %v", err)
	}
}
