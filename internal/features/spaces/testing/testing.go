package spaces_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	spaces_dto "spacehub-backend/internal/features/spaces/dto"
	spaces_models "spacehub-backend/internal/features/spaces/models"
	spaces_repositories "spacehub-backend/internal/features/spaces/repositories"
	users_dto "spacehub-backend/internal/features/users/dto"
	users_middleware "spacehub-backend/internal/features/users/middleware"
	users_services "spacehub-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	setupDependencies()

	return router
}

func setupDependencies() {
	users_services.GetUserService().SetSpaceCounter(spaces_repositories.GetSpaceRepository())
}

func CreateTestSpace(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *spaces_models.Space {
	space, _ := CreateTestSpaceViaAPI(name, owner, router)
	return space
}

func CreateTestSpaceViaAPI(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) (*spaces_models.Space, string) {
	request := spaces_dto.CreateSpaceRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/spaces", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(
			fmt.Sprintf(
				"Failed to create space. Status: %d, Body: %s",
				w.Code,
				w.Body.String(),
			),
		)
	}

	var response spaces_dto.CreateSpaceResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	space := &spaces_models.Space{
		ID:      response.Space.ID,
		Name:    response.Space.Name,
		OwnerID: response.Space.OwnerID,
	}

	return space, owner.Token
}

func MakeAPIRequest(
	router *gin.Engine,
	method, url, authToken string,
	body any,
) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}
