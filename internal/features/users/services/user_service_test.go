package users_services

import (
	"fmt"
	"sync"
	"testing"

	users_dto "spacehub-backend/internal/features/users/dto"
	users_models "spacehub-backend/internal/features/users/models"
	users_repositories "spacehub-backend/internal/features/users/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uniqueEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
}

func Test_SignUp_WithDuplicateEmail_ReturnsError(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	request := &users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "test-password-123",
		FirstName: "First",
		LastName:  "User",
	}

	_, err := userService.SignUp(request)
	require.NoError(t, err)

	_, err = userService.SignUp(request)
	require.Error(t, err)
	assert.Equal(t, "user with this email already exists", err.Error())
}

func Test_SignIn_WithWrongPassword_ReturnsError(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	_, err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "correct-password-1",
		FirstName: "Sign",
		LastName:  "In",
	})
	require.NoError(t, err)

	_, err = userService.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "wrong-password-99",
	})
	require.Error(t, err)
	assert.Equal(t, "password is incorrect", err.Error())
}

func Test_SignIn_UserDoesNotExist_ReturnsError(t *testing.T) {
	userService := GetUserService()

	_, err := userService.SignIn(&users_dto.SignInRequestDTO{
		Email:    uniqueEmail(),
		Password: "whatever-password",
	})
	require.Error(t, err)
	assert.Equal(t, "user with this email does not exist", err.Error())
}

func Test_ResolveUserByEmail_UserDoesNotExist_CreatesUserNeedingOnboarding(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	user, err := userService.ResolveUserByEmail(email, "Fresh User")
	require.NoError(t, err)

	assert.Equal(t, email, user.Email)
	assert.Equal(t, "Fresh User", user.DisplayName)
	assert.True(t, user.NeedsOnboarding)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func Test_ResolveUserByEmail_ConcurrentFirstSight_CreatesSingleRecord(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	const workers = 8

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			user, err := userService.ResolveUserByEmail(email, "Race User")
			if err == nil {
				ids[i] = user.ID
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	// losers of the insert race must re-read the winner, never error,
	// never produce a second record
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	count, err := users_repositories.GetUserRepository().CountUsersByEmail(email)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func Test_ResolveUserByEmail_LosingInsertHitsUniqueIndex_ConvergesOnWinner(t *testing.T) {
	userService := GetUserService()
	userRepository := users_repositories.GetUserRepository()
	email := uniqueEmail()

	// the recovery path keys off gorm.ErrDuplicatedKey, so the driver
	// must translate a unique index violation into that sentinel
	winner := &users_models.User{
		Email:           email,
		DisplayName:     "Winner",
		NeedsOnboarding: true,
		Preferences:     users_models.DefaultPreferences(),
	}
	require.NoError(t, userRepository.CreateUser(winner))

	loser := &users_models.User{
		Email:           email,
		DisplayName:     "Loser",
		NeedsOnboarding: true,
		Preferences:     users_models.DefaultPreferences(),
	}
	err := userRepository.CreateUser(loser)
	require.Error(t, err)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	resolved, err := userService.ResolveUserByEmail(email, "Loser")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, resolved.ID)
	assert.Equal(t, "Winner", resolved.DisplayName)
}

func Test_ResolveUserByEmail_UserAlreadyExists_ReturnsSameUser(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	first, err := userService.ResolveUserByEmail(email, "Original Name")
	require.NoError(t, err)

	second, err := userService.ResolveUserByEmail(email, "Different Name")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Original Name", second.DisplayName)
}

func Test_GetUserFromToken_ValidToken_ReturnsUser(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	signUpResponse, err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "token-password-1",
		FirstName: "Token",
		LastName:  "Holder",
	})
	require.NoError(t, err)

	user, err := userService.GetUserFromToken(signUpResponse.Token)
	require.NoError(t, err)

	assert.Equal(t, signUpResponse.UserID, user.ID)
	assert.Equal(t, email, user.Email)
}

func Test_GetUserFromToken_AfterPasswordChange_TokenIsRejected(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	signUpResponse, err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "old-password-123",
		FirstName: "Rotated",
		LastName:  "User",
	})
	require.NoError(t, err)

	err = userService.ChangeUserPassword(signUpResponse.UserID, "new-password-456")
	require.NoError(t, err)

	_, err = userService.GetUserFromToken(signUpResponse.Token)
	assert.Error(t, err)
}

func Test_UpdatePreferences_PartialUpdate_OnlyProvidedFieldsChange(t *testing.T) {
	userService := GetUserService()
	email := uniqueEmail()

	signUpResponse, err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "prefs-password-1",
		FirstName: "Pref",
		LastName:  "User",
	})
	require.NoError(t, err)

	user, err := userService.GetUserByID(signUpResponse.UserID)
	require.NoError(t, err)
	require.Equal(t, "fr", user.Preferences.Language)
	require.True(t, user.Preferences.Notifications)

	language := "en"
	preferences, err := userService.UpdatePreferences(user, &users_dto.UpdatePreferencesRequestDTO{
		Language: &language,
	})
	require.NoError(t, err)

	assert.Equal(t, "en", preferences.Language)
	assert.True(t, preferences.Notifications)
	assert.True(t, preferences.AutoSave)
}
