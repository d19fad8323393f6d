package users_services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spacehub-backend/internal/features/encryption/secrets"
	users_dto "spacehub-backend/internal/features/users/dto"
	users_interfaces "spacehub-backend/internal/features/users/interfaces"
	users_models "spacehub-backend/internal/features/users/models"
	users_repositories "spacehub-backend/internal/features/users/repositories"
)

type UserService struct {
	userRepository   *users_repositories.UserRepository
	secretKeyService *secrets.SecretKeyService
	auditLogWriter   users_interfaces.AuditLogWriter
	spaceCounter     users_interfaces.SpaceCounter
	logger           *slog.Logger
}

func (s *UserService) SetSpaceCounter(counter users_interfaces.SpaceCounter) {
	s.spaceCounter = counter
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_dto.SignInResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                request.Email,
		FirstName:            request.FirstName,
		LastName:             request.LastName,
		DisplayName:          request.FirstName + " " + request.LastName,
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		NeedsOnboarding:      true,
		Preferences:          users_models.DefaultPreferences(),
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("user with this email already exists")
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User registered with email: %s", user.Email),
		&user.ID,
		nil,
	)

	return s.GenerateAccessToken(user)
}

func (s *UserService) SignIn(
	request *users_dto.SignInRequestDTO,
) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, errors.New("user with this email does not exist")
	}

	if !user.HasPassword() {
		return nil, errors.New("user account has no password set")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, errors.New("password is incorrect")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User signed in with email: %s", user.Email),
		&user.ID,
		nil,
	)

	return response, nil
}

// ResolveUserByEmail maps an authenticated principal's email to its user
// record, creating the record on first sight. The unique index on email
// makes concurrent first-sight resolution idempotent: the loser of the
// race re-reads the winner's record.
func (s *UserService) ResolveUserByEmail(
	email string,
	displayName string,
) (*users_models.User, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if user != nil {
		count, err := s.userRepository.CountUsersByEmail(email)
		if err == nil && count > 1 {
			// pre-existing data anomaly: duplicates created before the
			// unique index existed; earliest-created record wins
			s.logger.Warn(
				"Multiple user records share one email, using earliest-created",
				"email", email,
				"count", count,
			)
		}

		return user, nil
	}

	if displayName == "" {
		displayName = "User"
	}

	newUser := &users_models.User{
		ID:              uuid.New(),
		Email:           email,
		DisplayName:     displayName,
		NeedsOnboarding: true,
		Preferences:     users_models.DefaultPreferences(),
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a concurrent find-or-create; the other writer's record
			// is the canonical one
			return s.userRepository.GetUserByEmail(email)
		}

		return nil, fmt.Errorf("failed to create user record: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User record created on first sight for email: %s", email),
		&newUser.ID,
		nil,
	)

	return newUser, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyService.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64); ok {
		tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0)

		tokenTimeSeconds := tokenPasswordTime.Truncate(time.Second)
		userTimeSeconds := user.PasswordCreationTime.Truncate(time.Second)

		if !tokenTimeSeconds.Equal(userTimeSeconds) {
			return nil, errors.New("password has been changed, please sign in again")
		}
	}

	return user, nil
}

// GenerateAccessToken enriches the session token with the principal id,
// email and display name so clients can read user.id / user.email /
// user.name without an extra round-trip.
func (s *UserService) GenerateAccessToken(
	user *users_models.User,
) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyService.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"email":                user.Email,
		"name":                 user.FullName(),
		"exp":                  expiration.Unix(),
		"iat":                  time.Now().UTC().Unix(),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetOnboardingState(
	user *users_models.User,
) (*users_dto.OnboardingStateResponseDTO, error) {
	spaceCount, err := s.spaceCounter.CountSpacesByOwner(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user spaces: %w", err)
	}

	return &users_dto.OnboardingStateResponseDTO{
		NeedsOnboarding: user.NeedsOnboardingFlow(spaceCount),
	}, nil
}

func (s *UserService) GetCurrentUserProfile(
	user *users_models.User,
) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Name:            user.FullName(),
		NeedsOnboarding: user.NeedsOnboarding,
		Preferences:     user.Preferences,
		CreatedAt:       user.CreatedAt,
	}
}

func (s *UserService) UpdateProfile(
	user *users_models.User,
	request *users_dto.UpdateProfileRequestDTO,
) error {
	displayName := request.FirstName + " " + request.LastName

	if err := s.userRepository.UpdateProfile(
		user.ID,
		request.FirstName,
		request.LastName,
		displayName,
	); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.auditLogWriter.WriteAuditLog("Profile updated", &user.ID, nil)
	return nil
}

func (s *UserService) UpdatePreferences(
	user *users_models.User,
	request *users_dto.UpdatePreferencesRequestDTO,
) (*users_models.Preferences, error) {
	preferences := user.Preferences

	if request.Notifications != nil {
		preferences.Notifications = *request.Notifications
	}
	if request.Language != nil {
		preferences.Language = *request.Language
	}
	if request.AutoSave != nil {
		preferences.AutoSave = *request.AutoSave
	}

	if err := s.userRepository.UpdatePreferences(user.ID, preferences); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	s.auditLogWriter.WriteAuditLog("Preferences updated", &user.ID, nil)
	return &preferences, nil
}

func (s *UserService) ChangeUserPassword(userID uuid.UUID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.auditLogWriter.WriteAuditLog("Password changed", &userID, nil)

	return nil
}

func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return errors.New("user with this email does not exist")
	}

	return s.ChangeUserPassword(user.ID, newPassword)
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}
