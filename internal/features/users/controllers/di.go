package users_controllers

import (
	"spacehub-backend/internal/config"
	users_services "spacehub-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	users_services.GetUserService(),
	newSignInLimiter(),
}

var settingsController = &SettingsController{
	users_services.GetUserService(),
}

// newSignInLimiter throttles credential endpoints. The limit is lifted
// when running tests, which sign users up far faster than real clients.
func newSignInLimiter() *rate.Limiter {
	if config.GetEnv().IsTesting {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(3), 3) // 3 rps with 3 burst
}

func GetUserController() *UserController {
	return userController
}

func GetSettingsController() *SettingsController {
	return settingsController
}
