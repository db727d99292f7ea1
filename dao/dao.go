// dao/dao.go
package dao

import (
	"context"

	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/audit"
	logger "github.com/openmusic-api/openmusic/logging"
)

// logChange records a mutation in the audit trail. Best-effort: an audit
// failure never fails the request that caused it.
func logChange(ctx context.Context, auditSvc audit.Service, userID, action, entity, entityID string) {
	if auditSvc == nil {
		return
	}
	if err := auditSvc.LogChange(ctx, userID, action, entity, entityID); err != nil {
		logger.Warn("Audit log failed",
			zap.Error(err),
			zap.String("action", action),
			zap.String("entity", entity),
			zap.String("entityID", entityID))
	}
}
