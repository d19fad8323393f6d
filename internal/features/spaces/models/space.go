package spaces_models

import (
	"time"

	"github.com/google/uuid"
)

type Space struct {
	ID        uuid.UUID      `json:"id"                 gorm:"column:id"`
	Name      string         `json:"name"               gorm:"column:name"`
	OwnerID   uuid.UUID      `json:"ownerId"            gorm:"column:owner_id"`
	Settings  *SpaceSettings `json:"settings,omitempty" gorm:"column:settings;type:jsonb;serializer:json"`
	CreatedAt time.Time      `json:"createdAt"          gorm:"column:created_at"`
}

type SpaceSettings struct {
	DefaultView   string `json:"defaultView"`
	Notifications bool   `json:"notifications"`
	AccentColor   string `json:"accentColor"`
}

func (Space) TableName() string {
	return "spaces"
}

func (s *Space) UpdateSettings(settings *SpaceSettings) {
	s.Settings = settings
}
