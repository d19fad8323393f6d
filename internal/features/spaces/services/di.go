package spaces_services

import (
	"spacehub-backend/internal/features/audit_logs"
	spaces_repositories "spacehub-backend/internal/features/spaces/repositories"
	"spacehub-backend/internal/util/logger"
)

var spaceService = &SpaceService{
	spaces_repositories.GetSpaceRepository(),
	spaces_repositories.GetMembershipRepository(),
	audit_logs.GetAuditLogService(),
}

var membershipReconcileService = &MembershipReconcileService{
	spaces_repositories.GetMembershipRepository(),
	logger.GetLogger(),
}

func GetSpaceService() *SpaceService {
	return spaceService
}

func GetMembershipReconcileService() *MembershipReconcileService {
	return membershipReconcileService
}
