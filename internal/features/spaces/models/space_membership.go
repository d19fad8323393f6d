package spaces_models

import (
	"time"

	users_enums "spacehub-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

// SpaceMembership links a user to a space. The (space_id, user_id) pair
// is unique, so a membership list can never accumulate duplicates; the
// owner's membership row is created together with the space.
type SpaceMembership struct {
	ID        uuid.UUID             `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID             `json:"userId"    gorm:"column:user_id"`
	SpaceID   uuid.UUID             `json:"spaceId"   gorm:"column:space_id"`
	Role      users_enums.SpaceRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time             `json:"createdAt" gorm:"column:created_at"`
}

func (SpaceMembership) TableName() string {
	return "space_memberships"
}
