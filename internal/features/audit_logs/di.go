package audit_logs

import (
	"spacehub-backend/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}

var auditLogService = &AuditLogService{
	auditLogRepository,
	logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
