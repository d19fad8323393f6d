package users_repositories

import (
	"time"

	users_models "spacehub-backend/internal/features/users/models"
	"spacehub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().
		Where("email = ?", email).
		Order("created_at ASC").
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

// CountUsersByEmail exists to detect pre-existing duplicate records; the
// unique index prevents new ones.
func (r *UserRepository) CountUsersByEmail(email string) (int64, error) {
	var count int64
	if err := storage.GetDb().
		Model(&users_models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUserPassword(userID uuid.UUID, hashedPassword string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hashed_password":        hashedPassword,
			"password_creation_time": time.Now().UTC(),
		}).Error
}

func (r *UserRepository) UpdateProfile(
	userID uuid.UUID,
	firstName, lastName, displayName string,
) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"first_name":   firstName,
			"last_name":    lastName,
			"display_name": displayName,
		}).Error
}

func (r *UserRepository) UpdatePreferences(
	userID uuid.UUID,
	preferences users_models.Preferences,
) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("preferences", preferences).Error
}
