package users_enums

type SpaceRole string

const (
	SpaceRoleOwner  SpaceRole = "SPACE_OWNER"
	SpaceRoleMember SpaceRole = "SPACE_MEMBER"
)

// IsValid validates the SpaceRole
func (r SpaceRole) IsValid() bool {
	switch r {
	case SpaceRoleOwner, SpaceRoleMember:
		return true
	default:
		return false
	}
}
