package users_services

import (
	"spacehub-backend/internal/features/audit_logs"
	"spacehub-backend/internal/features/encryption/secrets"
	users_repositories "spacehub-backend/internal/features/users/repositories"
	"spacehub-backend/internal/util/logger"
)

// spaceCounter stays nil here: the spaces feature implements it and
// injects itself at startup, since users cannot import spaces.
var userService = &UserService{
	users_repositories.GetUserRepository(),
	secrets.GetSecretKeyService(),
	audit_logs.GetAuditLogService(),
	nil,
	logger.GetLogger(),
}

func GetUserService() *UserService {
	return userService
}
