// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"

	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthnFailure   = "authn_fail"
	eventAuthzFailure   = "authz_fail"
	eventAdminAction    = "admin_action"
)

// SecurityLogger emits events loosely following the OWASP logging vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String(securityEventKey, eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String(securityEventKey, eventSystemShutdown))
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String(securityEventKey, eventAuthnFailure),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String(securityEventKey, eventAuthzFailure+":"+user+","+resource),
		zap.String("user", user),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(user, action, resource string) {
	s.l.Warn(
		"administrative action",
		zap.String(securityEventKey, eventAdminAction+":"+user+","+action+","+resource),
		zap.String("user", user),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.With(zap.String("type", "security"))}
}
