package system

var systemService = &SystemService{}
var systemController = &SystemController{systemService}

func GetSystemService() *SystemService {
	return systemService
}

func GetSystemController() *SystemController {
	return systemController
}
