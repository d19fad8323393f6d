package audit_logs

import (
	"time"

	"spacehub-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) CreateAuditLog(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetSpaceAuditLogs(
	spaceID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLogDTO, int64, error) {
	var total int64

	countQuery := storage.GetDb().Model(&AuditLog{}).Where("space_id = ?", spaceID)
	if beforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", *beforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []*AuditLogDTO

	dataQuery := storage.GetDb().
		Table("audit_logs al").
		Select("al.id, al.user_id, al.space_id, al.message, al.created_at, u.email as user_email, u.display_name as user_name").
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Where("al.space_id = ?", spaceID).
		Order("al.created_at DESC").
		Limit(limit).
		Offset(offset)

	if beforeDate != nil {
		dataQuery = dataQuery.Where("al.created_at < ?", *beforeDate)
	}

	if err := dataQuery.Scan(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
