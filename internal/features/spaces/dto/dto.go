package spaces_dto

import (
	"time"

	spaces_models "spacehub-backend/internal/features/spaces/models"
	users_enums "spacehub-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type CreateSpaceRequestDTO struct {
	Name string `json:"name" binding:"required,max=255"`
}

type SpaceDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type CreateSpaceResponseDTO struct {
	Success bool     `json:"success"`
	Space   SpaceDTO `json:"space"`
}

type ListSpacesResponseDTO struct {
	Spaces []*spaces_models.Space `json:"spaces"`
}

type UpdateSpaceSettingsRequestDTO struct {
	DefaultView   string `json:"defaultView"`
	Notifications bool   `json:"notifications"`
	AccentColor   string `json:"accentColor"`
}

type SpaceMemberResponseDTO struct {
	ID        uuid.UUID             `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID             `json:"userId"    gorm:"column:user_id"`
	Email     string                `json:"email"     gorm:"column:email"`
	Name      string                `json:"name"      gorm:"column:name"`
	Role      users_enums.SpaceRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time             `json:"createdAt" gorm:"column:created_at"`
}

type GetMembersResponseDTO struct {
	Members []*SpaceMemberResponseDTO `json:"members"`
}
