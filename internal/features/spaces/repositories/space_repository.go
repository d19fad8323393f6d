package spaces_repositories

import (
	"time"

	spaces_models "spacehub-backend/internal/features/spaces/models"
	users_models "spacehub-backend/internal/features/users/models"
	"spacehub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpaceRepository struct{}

// CreateSpaceWithOwner persists the space, its owner membership row and
// the owner's onboarding-flag reset as one transaction. A caller that
// sees success can immediately list the space; there is no window where
// the user record and the space disagree.
func (r *SpaceRepository) CreateSpaceWithOwner(
	space *spaces_models.Space,
	membership *spaces_models.SpaceMembership,
) error {
	if space.ID == uuid.Nil {
		space.ID = uuid.New()
	}
	if space.CreatedAt.IsZero() {
		space.CreatedAt = time.Now().UTC()
	}

	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}
	membership.SpaceID = space.ID

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(space).Error; err != nil {
			return err
		}

		// adding an already-present membership is a no-op, so two
		// concurrent creations by the same user cannot duplicate rows
		if err := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(membership).Error; err != nil {
			return err
		}

		return tx.Model(&users_models.User{}).
			Where("id = ?", space.OwnerID).
			Update("needs_onboarding", false).Error
	})
}

func (r *SpaceRepository) GetSpaceByID(spaceID uuid.UUID) (*spaces_models.Space, error) {
	var space spaces_models.Space

	if err := storage.GetDb().Where("id = ?", spaceID).First(&space).Error; err != nil {
		return nil, err
	}

	return &space, nil
}

func (r *SpaceRepository) GetSpacesByOwner(ownerID uuid.UUID) ([]*spaces_models.Space, error) {
	var spaces []*spaces_models.Space

	err := storage.GetDb().
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&spaces).Error

	return spaces, err
}

func (r *SpaceRepository) CountSpacesByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&spaces_models.Space{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error

	return count, err
}

func (r *SpaceRepository) UpdateSpace(space *spaces_models.Space) error {
	return storage.GetDb().Save(space).Error
}

// DeleteSpaceWithMemberships removes the space and every membership row
// pointing at it in one transaction, so no user's membership list can
// reference the space afterward.
func (r *SpaceRepository) DeleteSpaceWithMemberships(spaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("space_id = ?", spaceID).
			Delete(&spaces_models.SpaceMembership{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", spaceID).Delete(&spaces_models.Space{}).Error
	})
}
