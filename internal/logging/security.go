// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityEventKey = "event"

// SecurityLogger emits audit records following the OWASP logging vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String(securityEventKey, "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String(securityEventKey, "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"user not authorized",
		zap.String(securityEventKey, "authz_fail:"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzSuccess(userID, resource string) {
	s.l.Debug(
		"user authorized",
		zap.String(securityEventKey, "authz_success:"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resourceType, resource string) {
	s.l.Info(
		"privileged action",
		zap.String(securityEventKey, "admin_action:"+userID+","+action+","+resourceType),
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource_type", resourceType),
		zap.String("resource", resource),
	)
}
