package users_interfaces

import (
	"github.com/google/uuid"
)

type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, spaceID *uuid.UUID)
}

// SpaceCounter reports how many spaces a user owns. Implemented by the
// spaces feature and injected at startup to avoid an import cycle.
type SpaceCounter interface {
	CountSpacesByOwner(ownerID uuid.UUID) (int64, error)
}
