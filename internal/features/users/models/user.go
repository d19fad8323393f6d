package users_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the persisted profile record keyed by email. It is distinct
// from the session principal: sessions are resolved to a User by email,
// and the record is created lazily on first sight.
type User struct {
	ID                   uuid.UUID   `json:"id"              gorm:"column:id"`
	Email                string      `json:"email"           gorm:"column:email"`
	FirstName            string      `json:"firstName"       gorm:"column:first_name"`
	LastName             string      `json:"lastName"        gorm:"column:last_name"`
	DisplayName          string      `json:"displayName"     gorm:"column:display_name"`
	HashedPassword       *string     `json:"-"               gorm:"column:hashed_password"`
	PasswordCreationTime time.Time   `json:"-"               gorm:"column:password_creation_time"`
	NeedsOnboarding      bool        `json:"needsOnboarding" gorm:"column:needs_onboarding"`
	Preferences          Preferences `json:"preferences"     gorm:"column:preferences;type:jsonb;serializer:json"`
	CreatedAt            time.Time   `json:"createdAt"       gorm:"column:created_at"`
}

type Preferences struct {
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
	AutoSave      bool   `json:"autoSave"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		Language:      "fr",
		AutoSave:      true,
	}
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}

// FullName prefers the first/last name pair over the stored display name.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}

	return u.DisplayName
}

// NeedsOnboardingFlow decides whether the user must be routed through
// first-space creation before reaching the dashboard. It is evaluated
// on every dashboard entry: the space count can change between visits.
func (u *User) NeedsOnboardingFlow(spaceCount int64) bool {
	return spaceCount == 0 || u.NeedsOnboarding
}
