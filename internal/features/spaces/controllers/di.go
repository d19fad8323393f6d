package spaces_controllers

import (
	spaces_services "spacehub-backend/internal/features/spaces/services"
)

var spaceController = &SpaceController{
	spaceService: spaces_services.GetSpaceService(),
}

func GetSpaceController() *SpaceController {
	return spaceController
}
