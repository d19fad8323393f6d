package audit_logs

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog never fails the calling operation; a lost audit row is
// logged and swallowed.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	spaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:  userID,
		SpaceID: spaceID,
		Message: message,
	}

	if err := s.auditLogRepository.CreateAuditLog(auditLog); err != nil {
		s.logger.Error("Failed to write audit log", "message", message, "error", err)
	}
}

func (s *AuditLogService) GetSpaceAuditLogs(
	spaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	offset := request.Offset
	if offset < 0 {
		offset = 0
	}

	var beforeDate *time.Time
	if request.BeforeDate != nil {
		beforeDate = request.BeforeDate
	}

	logs, total, err := s.auditLogRepository.GetSpaceAuditLogs(spaceID, limit, offset, beforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
