package spaces_repositories

import (
	"errors"

	spaces_dto "spacehub-backend/internal/features/spaces/dto"
	spaces_models "spacehub-backend/internal/features/spaces/models"
	users_enums "spacehub-backend/internal/features/users/enums"
	"spacehub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) GetSpaceMembers(
	spaceID uuid.UUID,
) ([]*spaces_dto.SpaceMemberResponseDTO, error) {
	var members []*spaces_dto.SpaceMemberResponseDTO

	err := storage.GetDb().
		Table("space_memberships sm").
		Select("sm.id, sm.user_id, u.email, u.display_name as name, sm.role, sm.created_at").
		Joins("JOIN users u ON sm.user_id = u.id").
		Where("sm.space_id = ?", spaceID).
		Order("sm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) GetUserSpaceRole(
	spaceID, userID uuid.UUID,
) (*users_enums.SpaceRole, error) {
	var membership spaces_models.SpaceMembership

	err := storage.GetDb().
		Where("space_id = ? AND user_id = ?", spaceID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership.Role, nil
}

// DeleteOrphanedMemberships removes membership rows whose space no longer
// exists. A repair path for partial states left by older non-transactional
// deletes or manual data edits.
func (r *MembershipRepository) DeleteOrphanedMemberships() (int64, error) {
	result := storage.GetDb().
		Where("space_id NOT IN (?)", storage.GetDb().Model(&spaces_models.Space{}).Select("id")).
		Delete(&spaces_models.SpaceMembership{})

	return result.RowsAffected, result.Error
}
